package bridge

import (
	"errors"
	"fmt"
)

// ErrorCode classifies bridge errors.
type ErrorCode int

const (
	// ErrCodeEncoding indicates the body could not be serialized. No request was sent.
	ErrCodeEncoding ErrorCode = iota
	// ErrCodeTransport indicates a connection, protocol, timeout or body read failure.
	ErrCodeTransport
	// ErrCodeWrongStatus indicates a response whose status was outside 200..299.
	ErrCodeWrongStatus
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeEncoding:
		return "encoding"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeWrongStatus:
		return "wrong_status_code"
	default:
		return "unknown"
	}
}

var (
	// ErrAlreadySent is returned when a Request value is sent a second time.
	ErrAlreadySent = errors.New("bridge: request already sent")
	// ErrInvalidRequest is returned for a Request not built by Bridge.Request.
	ErrInvalidRequest = errors.New("bridge: request not built by Bridge.Request")
)

// Error is the single failure type produced by Send.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// URL is the resolved target, empty for encoding failures.
	URL string
	// StatusCode is set for ErrCodeWrongStatus only.
	StatusCode int
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Code == ErrCodeWrongStatus:
		return fmt.Sprintf("bridge: %s (HTTP %d) from %s", e.Code, e.StatusCode, e.URL)
	case e.URL != "":
		return fmt.Sprintf("bridge: %s: %s: %s", e.Code, e.URL, e.Message)
	default:
		return fmt.Sprintf("bridge: %s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewEncodingError wraps a serialization failure.
func NewEncodingError(err error) *Error {
	return &Error{Code: ErrCodeEncoding, Message: err.Error(), Err: err}
}

// NewTransportError wraps a transport failure for url.
func NewTransportError(url string, err error) *Error {
	return &Error{Code: ErrCodeTransport, URL: url, Message: err.Error(), Err: err}
}

// NewWrongStatusError reports a non-2xx status received from url.
func NewWrongStatusError(url string, statusCode int) *Error {
	return &Error{
		Code:       ErrCodeWrongStatus,
		URL:        url,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
	}
}

// IsEncoding reports whether err is an encoding error.
func IsEncoding(err error) bool {
	return hasCode(err, ErrCodeEncoding)
}

// IsTransport reports whether err is a transport error.
func IsTransport(err error) bool {
	return hasCode(err, ErrCodeTransport)
}

// IsWrongStatusCode reports whether err is a wrong-status error.
func IsWrongStatusCode(err error) bool {
	return hasCode(err, ErrCodeWrongStatus)
}

// StatusCodeOf returns the HTTP status carried by a wrong-status error, or 0.
func StatusCodeOf(err error) int {
	var be *Error
	if errors.As(err, &be) && be.Code == ErrCodeWrongStatus {
		return be.StatusCode
	}
	return 0
}

func hasCode(err error, code ErrorCode) bool {
	var be *Error
	return errors.As(err, &be) && be.Code == code
}

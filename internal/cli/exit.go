package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/kbukum/gobridge/bridge"
	"github.com/kbukum/gobridge/validation"
)

// Exit codes returned by the gobridge binary.
const (
	ExitOK           = 0
	ExitFailed       = 1
	ExitInvalidInput = 2
	ExitWrongStatus  = 3
	ExitTransport    = 4
	ExitEncoding     = 5
)

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case validation.IsValidationError(err):
		return ExitInvalidInput
	case bridge.IsWrongStatusCode(err):
		return ExitWrongStatus
	case bridge.IsTransport(err):
		return ExitTransport
	case bridge.IsEncoding(err):
		return ExitEncoding
	case errors.Is(err, bridge.ErrInvalidRequest):
		return ExitInvalidInput
	default:
		return ExitFailed
	}
}

// HandleError prints err to w and returns the exit code for it.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(w, "Error:", err.Error())
	return ExitCode(err)
}

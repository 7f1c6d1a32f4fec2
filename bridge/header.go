package bridge

import (
	"encoding/base64"
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Wire header names set on every call.
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "x-request-id"

	contentTypeJSON = "application/json"
)

// Header is one custom header. Duplicates are all transmitted.
type Header struct {
	Name  string
	Value string
}

// NewHeader creates a header pair.
func NewHeader(name, value string) Header {
	return Header{Name: name, Value: value}
}

// BearerAuth creates an Authorization header carrying a bearer token.
func BearerAuth(token string) Header {
	return Header{Name: "Authorization", Value: "Bearer " + token}
}

// BasicAuth creates an Authorization header for HTTP Basic authentication.
func BasicAuth(username, password string) Header {
	cred := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return Header{Name: "Authorization", Value: "Basic " + cred}
}

// APIKeyHeader creates an API key header. An empty name defaults to X-API-Key.
func APIKeyHeader(name, key string) Header {
	if name == "" {
		name = "X-API-Key"
	}
	return Header{Name: name, Value: key}
}

// SignedBearerAuth signs claims with method and key and returns the token as
// a bearer Authorization header.
//
//	h, err := bridge.SignedBearerAuth(jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{Subject: "svc"})
func SignedBearerAuth(method gojwt.SigningMethod, key any, claims gojwt.Claims) (Header, error) {
	signed, err := gojwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		return Header{}, fmt.Errorf("bridge: sign token: %w", err)
	}
	return BearerAuth(signed), nil
}

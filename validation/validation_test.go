package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

type innerConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type testConfig struct {
	Endpoint  string      `mapstructure:"endpoint" validate:"required,url"`
	Transport string      `mapstructure:"transport" validate:"oneof=http resty"`
	Name      string      `yaml:"display_name" validate:"max=5"`
	MaxIdle   int         `validate:"min=1"`
	Inner     innerConfig `mapstructure:"inner"`
}

func TestStruct_Valid(t *testing.T) {
	cfg := testConfig{
		Endpoint:  "https://api.test",
		Transport: "http",
		Name:      "abc",
		MaxIdle:   1,
		Inner:     innerConfig{Timeout: time.Second},
	}
	if err := Struct(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_FieldErrors(t *testing.T) {
	err := Struct(testConfig{Transport: "grpc", Name: "too-long"})
	if err == nil {
		t.Fatal("expected error")
	}

	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *Error, got %T", err)
	}

	tests := []struct {
		field   string
		message string
	}{
		{"endpoint", "is required"},
		{"transport", "must be one of: http resty"},
		{"display_name", "must be at most 5 characters"},
		{"max_idle", "must be at least 1"},
		{"inner.timeout", "must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if !ve.Has(tt.field) {
				t.Fatalf("expected %s in %v", tt.field, ve.Fields)
			}
			if !strings.Contains(err.Error(), tt.field+": "+tt.message) {
				t.Errorf("expected %q in %q", tt.field+": "+tt.message, err.Error())
			}
		})
	}
}

func TestStruct_InvalidURL(t *testing.T) {
	err := Struct(testConfig{Endpoint: "not a url", Transport: "http", MaxIdle: 1, Inner: innerConfig{Timeout: 1}})
	if err == nil || !strings.Contains(err.Error(), "endpoint: must be a valid URL") {
		t.Fatalf("expected url error, got %v", err)
	}
}

func TestStruct_NotAStruct(t *testing.T) {
	err := Struct(42)
	if !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidator(t *testing.T) {
	err := New().
		Required("method", " ").
		OneOf("output", "xml", []string{"raw", "json"}).
		Pattern("header", "bad header", `^[A-Za-z0-9-]+$`).
		Custom(false, "query", "must be key=value").
		Err()

	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if len(ve.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %v", ve.Fields)
	}
	for _, f := range []string{"method", "output", "header", "query"} {
		if !ve.Has(f) {
			t.Errorf("missing %s", f)
		}
	}
}

func TestValidator_NoErrors(t *testing.T) {
	v := New().Required("method", "GET").OneOf("output", "raw", []string{"raw"}).Pattern("h", "X-Id", `^[A-Za-z-]+$`)
	if v.HasErrors() {
		t.Fatalf("unexpected errors %v", v.Errors())
	}
	if err := v.Err(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestIsValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("load: %w", &Error{Fields: []FieldError{{Field: "a", Message: "b"}}})
	if !IsValidationError(err) {
		t.Fatal("expected wrapped validation error to be detected")
	}
	if IsValidationError(errors.New("other")) {
		t.Fatal("plain error is not a validation error")
	}
}

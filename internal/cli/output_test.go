package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestPrinter(t *testing.T) {
	tests := []struct {
		name   string
		format string
		jq     string
		body   string
		want   string
	}{
		{"raw passthrough", outputRaw, "", "plain text", "plain text\n"},
		{"raw keeps newline", outputRaw, "", "line\n", "line\n"},
		{"raw empty", outputRaw, "", "", ""},
		{"json pretty", outputJSON, "", `{"a":1}`, "{\n  \"a\": 1\n}\n"},
		{"json no html escape", outputJSON, "", `{"a":"<b>"}`, "{\n  \"a\": \"<b>\"\n}\n"},
		{"yaml", outputYAML, "", `{"a":[1,2]}`, "a:\n  - 1\n  - 2\n"},
		{"jq raw strings", outputRaw, ".[].name", `[{"name":"a"},{"name":"b"}]`, "a\nb\n"},
		{"jq raw objects", outputRaw, ".[0]", `[{"name":"a"}]`, "{\"name\":\"a\"}\n"},
		{"jq no results", outputRaw, "empty", `{}`, ""},
		{"empty body", outputJSON, "", "  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newPrinter(tt.format, tt.jq)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := p.Print(context.Background(), &buf, tt.body); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestPrinter_NotJSON(t *testing.T) {
	p, err := newPrinter(outputJSON, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Print(context.Background(), &bytes.Buffer{}, "<html>"); !errors.Is(err, errNotJSON) {
		t.Fatalf("expected errNotJSON, got %v", err)
	}
}

func TestPrinter_JQRuntimeError(t *testing.T) {
	p, err := newPrinter(outputRaw, ".a.b")
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Print(context.Background(), &bytes.Buffer{}, `{"a":"str"}`); err == nil {
		t.Fatal("expected jq error")
	}
}

func TestCompileJQ_Invalid(t *testing.T) {
	if _, err := compileJQ(".["); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := compileJQ("undefined_fn(1)"); err == nil {
		t.Fatal("expected compile error")
	}
}

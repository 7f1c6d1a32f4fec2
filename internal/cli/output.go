package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	outputRaw  = "raw"
	outputJSON = "json"
	outputYAML = "yaml"
)

var outputFormats = []string{outputRaw, outputJSON, outputYAML}

const jqTimeout = time.Second

var errNotJSON = errors.New("response body is not JSON")

// printer writes a response body in one of the output formats.
type printer struct {
	format string
	jq     *gojq.Code
}

func newPrinter(format, expression string) (*printer, error) {
	p := &printer{format: format}
	if expression != "" {
		code, err := compileJQ(expression)
		if err != nil {
			return nil, err
		}
		p.jq = code
	}
	return p, nil
}

func compileJQ(expression string) (*gojq.Code, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("compile error: %w", err)
	}
	return code, nil
}

// Print writes body to w. Raw output without a jq filter copies the body
// unchanged; everything else requires a JSON body.
func (p *printer) Print(ctx context.Context, w io.Writer, body string) error {
	if p.format == outputRaw && p.jq == nil {
		return writeLine(w, body)
	}

	var data any
	if strings.TrimSpace(body) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return fmt.Errorf("%w: %v", errNotJSON, err)
	}

	values := []any{data}
	if p.jq != nil {
		var err error
		if values, err = p.filter(ctx, data); err != nil {
			return err
		}
	}

	for _, v := range values {
		if err := p.write(w, v); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) filter(ctx context.Context, data any) ([]any, error) {
	ctx, cancel := context.WithTimeout(ctx, jqTimeout)
	defer cancel()

	var results []any
	iter := p.jq.RunWithContext(ctx, data)
	for {
		v, ok := iter.Next()
		if !ok {
			return results, nil
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("jq: %w", err)
		}
		results = append(results, v)
	}
}

func (p *printer) write(w io.Writer, v any) error {
	switch p.format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	default:
		// Like jq -r: strings unquoted, everything else compact JSON.
		if s, ok := v.(string); ok {
			return writeLine(w, s)
		}
		b, err := gojq.Marshal(v)
		if err != nil {
			return err
		}
		return writeLine(w, string(b))
	}
}

func writeLine(w io.Writer, s string) error {
	if s == "" || strings.HasSuffix(s, "\n") {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}

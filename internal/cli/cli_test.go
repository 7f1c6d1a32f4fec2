package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/gobridge/testutil"
)

// run executes the root command with args against a quiet config file and
// an empty environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gobridge.yml")
	if err := os.WriteFile(path, []byte("logging:\n  level: error\n  format: json\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand(&globalOptions{environ: func() []string { return nil }})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config=" + path}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	if cmd.Use != "gobridge" {
		t.Errorf("expected use 'gobridge', got %q", cmd.Use)
	}
	for _, name := range []string{"config", "endpoint", "to", "header", "query", "output", "jq", "log-level", "otlp-endpoint"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("%s flag not registered", name)
		}
	}
	for _, sub := range []string{"rest", "graphql", "version"} {
		if c, _, err := cmd.Find([]string{sub}); err != nil || c.Name() != sub {
			t.Errorf("%s command not registered", sub)
		}
	}
}

func TestRest_Echo(t *testing.T) {
	srv := testutil.NewEchoServer(t)

	out, err := run(t, "rest", "post",
		"--endpoint", srv.URL+"/api",
		"--to", "widgets",
		"-q", "limit=10",
		"-H", "X-Trace: t1",
		"--data", `{"name":"gear"}`,
		"-o", "json",
	)
	if err != nil {
		t.Fatal(err)
	}

	var echo testutil.Echo
	if err := json.Unmarshal([]byte(out), &echo); err != nil {
		t.Fatalf("expected pretty JSON echo, got %q: %v", out, err)
	}
	if echo.Method != "POST" || echo.Path != "/api/widgets" || echo.RawQuery != "limit=10" {
		t.Errorf("unexpected echo %+v", echo)
	}
	if echo.Body != `{"name":"gear"}` {
		t.Errorf("unexpected body %q", echo.Body)
	}
	if got := echo.Header["X-Trace"]; len(got) != 1 || got[0] != "t1" {
		t.Errorf("expected custom header, got %v", got)
	}
	if !strings.Contains(out, "\n  ") {
		t.Errorf("expected indented output, got %q", out)
	}
}

func TestRest_NoDataSendsEmptyBody(t *testing.T) {
	srv := testutil.NewEchoServer(t)

	out, err := run(t, "rest", "GET", "--endpoint", srv.URL, "--jq", ".body | length")
	if err != nil {
		t.Fatal(err)
	}
	if out != "0\n" {
		t.Errorf("expected empty body, got %q", out)
	}
}

func TestRest_YAMLWithJQ(t *testing.T) {
	srv := testutil.NewEchoServer(t)

	out, err := run(t, "rest", "DELETE", "--endpoint", srv.URL+"/api/", "--to", "widgets/7",
		"--jq", "{method, path}", "-o", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	want := "method: DELETE\npath: /api/widgets/7\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestGraphQL_Echo(t *testing.T) {
	srv := testutil.NewEchoServer(t)

	out, err := run(t, "graphql", "{ widgets { id } }",
		"--endpoint", srv.URL, "--to", "graphql",
		"--variables", `{"id":"7"}`,
		"--jq", ".body",
	)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"query":"{ widgets { id } }","variables":{"id":"7"}}` + "\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRest_WrongStatus(t *testing.T) {
	srv := testutil.NewEchoServer(t)

	out, err := run(t, "rest", "GET", "--endpoint", srv.URL, "-H", testutil.EchoStatusHeader+": 404")
	if err == nil {
		t.Fatal("expected error")
	}
	if code := ExitCode(err); code != ExitWrongStatus {
		t.Errorf("expected exit code %d, got %d (%v)", ExitWrongStatus, code, err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad output", []string{"rest", "GET", "--endpoint", "http://localhost", "-o", "xml"}},
		{"bad header", []string{"rest", "GET", "--endpoint", "http://localhost", "-H", "novalue"}},
		{"bad query", []string{"rest", "GET", "--endpoint", "http://localhost", "-q", "=x"}},
		{"bad jq", []string{"rest", "GET", "--endpoint", "http://localhost", "--jq", ".["}},
		{"bad data", []string{"rest", "POST", "--endpoint", "http://localhost", "--data", "{"}},
		{"bad method", []string{"rest", "G3T", "--endpoint", "http://localhost"}},
		{"bad variables", []string{"graphql", "{ a }", "--endpoint", "http://localhost", "--variables", "[1]"}},
		{"empty query", []string{"graphql", " ", "--endpoint", "http://localhost"}},
		{"missing endpoint", []string{"rest", "GET"}},
		{"relative endpoint", []string{"rest", "GET", "--endpoint", "widgets"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := ExitCode(err); code != ExitInvalidInput {
				t.Errorf("expected exit code %d, got %d (%v)", ExitInvalidInput, code, err)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "gobridge ") || !strings.Contains(out, engineMode) {
		t.Errorf("unexpected version output %q", out)
	}

	out, err = run(t, "version", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatal(err)
	}
	if v["engine"] != engineMode || v["version"] == "" {
		t.Errorf("unexpected version JSON %v", v)
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/gobridge/bridge"
	"github.com/kbukum/gobridge/validation"
)

// globalOptions holds the persistent flags shared by every call command.
type globalOptions struct {
	configFile   string
	endpoint     string
	to           string
	headers      []string
	query        []string
	output       string
	jq           string
	logLevel     string
	otlpEndpoint string

	// environ replaces os.Environ when set.
	environ func() []string
}

// NewRootCommand creates the gobridge root command with all subcommands.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&globalOptions{})
}

func newRootCommand(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gobridge",
		Short: "gobridge - send REST and GraphQL calls through a bridge",
		Long: `gobridge sends a single REST or GraphQL call to a configured endpoint
and prints the response body.

The endpoint, transport and logging are read from gobridge.yml, .env files
and GOBRIDGE_* environment variables; flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.PersistentFlags()
	f.StringVar(&g.configFile, "config", "", "Path to config file (default: ./gobridge.yml)")
	f.StringVar(&g.endpoint, "endpoint", "", "Base URL of the remote service")
	f.StringVar(&g.to, "to", "", "Path suffix appended to the endpoint")
	f.StringArrayVarP(&g.headers, "header", "H", nil, "Custom header as name:value (repeatable)")
	f.StringArrayVarP(&g.query, "query", "q", nil, "Query pair as key=value (repeatable)")
	f.StringVarP(&g.output, "output", "o", outputRaw, "Output format: raw, json or yaml")
	f.StringVar(&g.jq, "jq", "", "jq expression applied to the JSON response body")
	f.StringVar(&g.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	f.StringVar(&g.otlpEndpoint, "otlp-endpoint", "", "OTLP HTTP host:port for traces and metrics")

	cmd.AddCommand(newRestCommand(g))
	cmd.AddCommand(newGraphQLCommand(g))
	cmd.AddCommand(newVersionCommand(g))
	return cmd
}

// validate checks flag values that do not depend on configuration.
func (g *globalOptions) validate() error {
	v := validation.New()
	v.OneOf("output", g.output, outputFormats)
	for _, h := range g.headers {
		name, _, ok := strings.Cut(h, ":")
		v.Custom(ok && strings.TrimSpace(name) != "", "header", fmt.Sprintf("%q must be name:value", h))
	}
	for _, q := range g.query {
		name, _, ok := strings.Cut(q, "=")
		v.Custom(ok && name != "", "query", fmt.Sprintf("%q must be key=value", q))
	}
	if g.jq != "" {
		if _, err := compileJQ(g.jq); err != nil {
			v.AddError("jq", err.Error())
		}
	}
	return v.Err()
}

// customHeaders parses -H flags in the order given.
func (g *globalOptions) customHeaders() []bridge.Header {
	headers := make([]bridge.Header, 0, len(g.headers))
	for _, h := range g.headers {
		name, value, _ := strings.Cut(h, ":")
		headers = append(headers, bridge.NewHeader(strings.TrimSpace(name), strings.TrimSpace(value)))
	}
	return headers
}

// queryPairs parses -q flags in the order given.
func (g *globalOptions) queryPairs() []bridge.QueryPair {
	pairs := make([]bridge.QueryPair, 0, len(g.query))
	for _, q := range g.query {
		name, value, _ := strings.Cut(q, "=")
		pairs = append(pairs, bridge.QueryPair{Name: name, Value: value})
	}
	return pairs
}

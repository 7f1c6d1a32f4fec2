package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/gobridge/version"
)

type versionOutput struct {
	version.Info `yaml:",inline"`
	Engine       string `json:"engine" yaml:"engine"`
}

func newVersionCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := versionOutput{Info: version.Get(), Engine: engineMode}
			w := cmd.OutOrStdout()

			switch g.output {
			case outputJSON:
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal version info: %w", err)
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			case outputYAML:
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(out); err != nil {
					return err
				}
				return enc.Close()
			default:
				_, err := fmt.Fprintf(w, "gobridge %s (%s engine)\n", out.Info, out.Engine)
				return err
			}
		},
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/gobridge/bridge"
	"github.com/kbukum/gobridge/validation"
)

func newRestCommand(g *globalOptions) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "rest METHOD",
		Short: "Send a REST call",
		Long: `Send a REST call with the given HTTP method. The --data value must be
a JSON document; it is re-encoded with the configured codec.`,
		Example: `  gobridge rest GET --endpoint https://api.example.com --to widgets -q limit=10
  gobridge rest POST --to widgets --data '{"name":"gear"}' -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])
			v := validation.New()
			v.Pattern("method", method, `^[A-Z]+$`)
			v.Custom(data == "" || json.Valid([]byte(data)), "data", "must be valid JSON")
			if err := v.Err(); err != nil {
				return err
			}
			return runCall(cmd, g, bridge.Rest(restBody(data), method))
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	return cmd
}

func newGraphQLCommand(g *globalOptions) *cobra.Command {
	var variables string

	cmd := &cobra.Command{
		Use:   "graphql QUERY",
		Short: "Send a GraphQL query",
		Long: `Send a GraphQL query as a POST with a {"query","variables"} JSON body.
The --variables value must be a JSON object.`,
		Example: `  gobridge graphql '{ widgets { id name } }' --to graphql --jq '.data.widgets[].name'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := validation.New()
			v.Required("query", args[0])
			vars, err := graphQLVariables(variables)
			if err != nil {
				v.AddError("variables", err.Error())
			}
			if err := v.Err(); err != nil {
				return err
			}
			return runCall(cmd, g, bridge.GraphQL(args[0], vars))
		},
	}
	cmd.Flags().StringVar(&variables, "variables", "", "JSON object of query variables")
	return cmd
}

// restBody returns nil for an empty body so the call is sent without one.
func restBody(data string) any {
	if data == "" {
		return nil
	}
	return json.RawMessage(data)
}

func graphQLVariables(s string) (any, error) {
	if s == "" {
		return nil, nil
	}
	var vars map[string]any
	if err := json.Unmarshal([]byte(s), &vars); err != nil {
		return nil, fmt.Errorf("must be a JSON object: %v", err)
	}
	return json.RawMessage(s), nil
}

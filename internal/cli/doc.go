// Package cli implements the gobridge command line: one REST or GraphQL
// call through a bridge, printed raw, as JSON or as YAML, optionally
// filtered with a jq expression.
package cli

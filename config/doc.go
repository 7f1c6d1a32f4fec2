// Package config loads configuration from a file, an optional .env file and
// the environment.
//
// # Usage
//
//	var cfg cli.Config
//	err := config.Load("gobridge", &cfg, config.WithConfigFile("gobridge.yml"))
//
// Values are layered: the config file (YAML, JSON or TOML) first, then
// variables from the .env file and the process environment. Only variables
// carrying the prefix (GOBRIDGE_ by default) are considered; the rest of the
// name maps onto nested keys, so GOBRIDGE_BRIDGE_TLS_CA_FILE sets
// bridge.tls.ca_file.
package config

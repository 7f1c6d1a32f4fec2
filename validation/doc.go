// Package validation checks configuration and user input.
//
// Struct tag validation uses go-playground/validator and reports fields by
// their config key:
//
//	type Config struct {
//	    Endpoint string `mapstructure:"endpoint" validate:"required,url"`
//	}
//	err := validation.Struct(cfg)
//
// Programmatic validation collects errors fluently:
//
//	err := validation.New().Required("method", m).OneOf("output", o, formats).Err()
package validation

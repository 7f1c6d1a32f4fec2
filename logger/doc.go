// Package logger provides structured logging for gobridge using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("bridge")
//	log.Debug("request dispatched", logger.Fields(logger.FieldURL, u))
package logger

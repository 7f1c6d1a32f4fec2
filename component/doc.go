// Package component defines lifecycle interfaces for long-lived pieces of
// infrastructure, such as a bridge built from configuration, and a Registry
// that starts them in order and stops them in reverse.
package component

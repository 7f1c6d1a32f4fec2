package logger

import "time"

// Standard field keys used across gobridge.
const (
	FieldComponent  = "component"
	FieldService    = "service"
	FieldRequestID  = "request_id"
	FieldURL        = "url"
	FieldMethod     = "method"
	FieldKind       = "kind"
	FieldStatusCode = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldTransport  = "transport"
)

// Fields builds a field map from alternating key-value pairs.
// Non-string keys and a trailing key without a value are ignored.
//
//	log.Info("sent", logger.Fields("url", u, "status", 200))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a failed operation.
func ErrorFields(err error) map[string]any {
	return map[string]any{FieldError: err.Error()}
}

// DurationFields creates fields for a timed operation.
func DurationFields(d time.Duration) map[string]any {
	return map[string]any{FieldDuration: d.Milliseconds()}
}

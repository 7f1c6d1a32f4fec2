package bridge

import "github.com/google/uuid"

// Kind tells which descriptor variant produced a call.
type Kind int

const (
	KindRest Kind = iota
	KindGraphQL
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRest:
		return "rest"
	case KindGraphQL:
		return "graphql"
	default:
		return "unknown"
	}
}

// Response is the result of a successful call.
type Response struct {
	// URL is the fully resolved address that was requested.
	URL string
	// StatusCode is always within 200..299.
	StatusCode int
	// Body is the complete response body decoded as text.
	Body string
	// RequestID is the correlation id of the originating descriptor.
	RequestID uuid.UUID
	// Kind is the descriptor variant.
	Kind Kind
}

// IsRest reports whether the response came from a REST descriptor.
func (r *Response) IsRest() bool { return r.Kind == KindRest }

// IsGraphQL reports whether the response came from a GraphQL descriptor.
func (r *Response) IsGraphQL() bool { return r.Kind == KindGraphQL }

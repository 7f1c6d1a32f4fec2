package bridge

import (
	"net/http"
	"reflect"

	"github.com/google/uuid"

	"github.com/kbukum/gobridge/codec"
)

// RequestType describes what a call does. It is implemented only by
// *RestRequest and *GraphQLRequest.
type RequestType interface {
	// ID returns the correlation id assigned at construction.
	ID() uuid.UUID
	// Method returns the HTTP method used for the call.
	Method() string
	// Kind returns KindRest or KindGraphQL.
	Kind() Kind
	IsRest() bool
	IsGraphQL() bool
	// BodyAsString serializes the body with c.
	BodyAsString(c codec.Codec) (string, error)

	sealed()
}

// RestRequest is a REST call: an HTTP method and an optional body.
type RestRequest struct {
	id     uuid.UUID
	method string
	body   any
}

// Rest creates a REST descriptor. A nil body, including a typed nil pointer,
// map, slice or interface, is sent as an empty payload; any other body is
// serialized as itself.
func Rest(body any, method string) *RestRequest {
	return &RestRequest{id: uuid.New(), method: method, body: body}
}

// ID returns the correlation id.
func (r *RestRequest) ID() uuid.UUID { return r.id }

// Method returns the declared HTTP method.
func (r *RestRequest) Method() string { return r.method }

// Kind returns KindRest.
func (r *RestRequest) Kind() Kind { return KindRest }

func (r *RestRequest) IsRest() bool    { return true }
func (r *RestRequest) IsGraphQL() bool { return false }

// Body returns the payload given to Rest.
func (r *RestRequest) Body() any { return r.body }

// BodyAsString serializes the body, or returns "" when there is none.
func (r *RestRequest) BodyAsString(c codec.Codec) (string, error) {
	if isAbsent(r.body) {
		return "", nil
	}
	b, err := c.Marshal(r.body)
	if err != nil {
		return "", NewEncodingError(err)
	}
	return string(b), nil
}

func (r *RestRequest) sealed() {}

// GraphQLRequest is a GraphQL query or mutation, always sent with POST.
type GraphQLRequest struct {
	id        uuid.UUID
	query     string
	variables any
}

// graphQLBody is the wire envelope of a GraphQL call.
type graphQLBody struct {
	Query     string `json:"query"`
	Variables any    `json:"variables,omitempty"`
}

// GraphQL creates a GraphQL descriptor. Nil variables, typed or not, omit
// the "variables" key from the body.
func GraphQL(query string, variables any) *GraphQLRequest {
	return &GraphQLRequest{id: uuid.New(), query: query, variables: variables}
}

// ID returns the correlation id.
func (g *GraphQLRequest) ID() uuid.UUID { return g.id }

// Method always returns POST.
func (g *GraphQLRequest) Method() string { return http.MethodPost }

// Kind returns KindGraphQL.
func (g *GraphQLRequest) Kind() Kind { return KindGraphQL }

func (g *GraphQLRequest) IsRest() bool    { return false }
func (g *GraphQLRequest) IsGraphQL() bool { return true }

// Query returns the GraphQL document.
func (g *GraphQLRequest) Query() string { return g.query }

// Variables returns the variables given to GraphQL.
func (g *GraphQLRequest) Variables() any { return g.variables }

// BodyAsString serializes {"query": ..., "variables": ...}.
func (g *GraphQLRequest) BodyAsString(c codec.Codec) (string, error) {
	env := graphQLBody{Query: g.query}
	if !isAbsent(g.variables) {
		env.Variables = g.variables
	}
	b, err := c.Marshal(env)
	if err != nil {
		return "", NewEncodingError(err)
	}
	return string(b), nil
}

func (g *GraphQLRequest) sealed() {}

// isAbsent reports whether v is nil or a nil pointer, map, slice or
// interface. Such values would otherwise encode as JSON null.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

var (
	_ RequestType = (*RestRequest)(nil)
	_ RequestType = (*GraphQLRequest)(nil)
)

package bridge

import (
	"net/url"
	"slices"
	"strings"
	"sync/atomic"
)

// QueryPair is one query string parameter. Duplicates are kept.
type QueryPair struct {
	Name  string
	Value string
}

// Request is an immutable builder for one call. Every With/To method returns
// a new value and leaves the receiver untouched. All values derived from one
// Bridge.Request call share a single sent-guard: once any of them is sent,
// sending it or any value derived from it fails with ErrAlreadySent.
type Request struct {
	bridge      *Bridge
	requestType RequestType
	headers     []Header
	path        string
	hasPath     bool
	query       []QueryPair
	sent        *atomic.Bool
}

func newSentGuard() *atomic.Bool {
	return new(atomic.Bool)
}

// WithCustomHeaders replaces the custom headers. Calling it twice keeps only
// the headers of the last call.
func (r Request) WithCustomHeaders(headers ...Header) Request {
	next := r
	next.headers = slices.Clone(headers)
	return next
}

// To sets the path suffix appended to the endpoint path, replacing any
// previous suffix.
func (r Request) To(path string) Request {
	next := r
	next.path = path
	next.hasPath = true
	return next
}

// WithQueryPair appends one query parameter.
func (r Request) WithQueryPair(name, value string) Request {
	return r.WithQueryPairs(QueryPair{Name: name, Value: value})
}

// WithQueryPairs appends query parameters in order.
func (r Request) WithQueryPairs(pairs ...QueryPair) Request {
	next := r
	next.query = append(slices.Clip(r.query), pairs...)
	return next
}

// RequestType returns the descriptor of the call.
func (r Request) RequestType() RequestType {
	return r.requestType
}

// CustomHeaders returns a copy of the custom headers.
func (r Request) CustomHeaders() []Header {
	return slices.Clone(r.headers)
}

// QueryPairs returns a copy of the accumulated query parameters.
func (r Request) QueryPairs() []QueryPair {
	return slices.Clone(r.query)
}

// Path returns the path suffix and whether one was set.
func (r Request) Path() (string, bool) {
	return r.path, r.hasPath
}

// URL resolves the final URL: the suffix, if any, is joined to the endpoint
// path with a single slash, then the query pairs are appended to whatever
// query the endpoint already carries.
func (r Request) URL() *url.URL {
	return resolveURL(r.bridge.endpoint, r.path, r.hasPath, r.query)
}

func resolveURL(endpoint *url.URL, path string, hasPath bool, query []QueryPair) *url.URL {
	u := *endpoint

	if hasPath {
		// Join escaped segments so encoded separators in the base survive.
		var parts []string
		for _, seg := range strings.Split(u.EscapedPath(), "/") {
			if seg != "" {
				parts = append(parts, seg)
			}
		}
		parts = append(parts, (&url.URL{Path: path}).EscapedPath())
		raw := "/" + strings.Join(parts, "/")
		if decoded, err := url.PathUnescape(raw); err == nil {
			u.Path, u.RawPath = decoded, raw
		} else {
			u.Path, u.RawPath = raw, ""
		}
	}

	if len(query) > 0 {
		var sb strings.Builder
		sb.WriteString(u.RawQuery)
		for _, p := range query {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(url.QueryEscape(p.Name))
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(p.Value))
		}
		u.RawQuery = sb.String()
		u.ForceQuery = false
	}

	return &u
}

// claim marks r as sent. It fails if r was already sent.
func (r Request) claim() error {
	if r.bridge == nil || r.requestType == nil || r.sent == nil {
		return ErrInvalidRequest
	}
	if !r.sent.CompareAndSwap(false, true) {
		return ErrAlreadySent
	}
	return nil
}

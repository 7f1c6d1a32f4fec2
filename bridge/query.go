package bridge

import (
	"fmt"
	"sort"

	"github.com/gorilla/schema"
)

var queryEncoder = func() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.SetAliasTag("schema")
	return enc
}()

// EncodeQuery flattens a struct tagged with `schema:"..."` into query pairs,
// sorted by name. Fields tagged omitempty are skipped when zero.
//
//	type ListParams struct {
//	    Limit  int    `schema:"limit"`
//	    Cursor string `schema:"cursor,omitempty"`
//	}
//	pairs, err := bridge.EncodeQuery(ListParams{Limit: 20})
//	req = req.WithQueryPairs(pairs...)
func EncodeQuery(v any) ([]QueryPair, error) {
	values := map[string][]string{}
	if err := queryEncoder.Encode(v, values); err != nil {
		return nil, fmt.Errorf("bridge: encode query: %w", err)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var pairs []QueryPair
	for _, name := range names {
		for _, value := range values[name] {
			pairs = append(pairs, QueryPair{Name: name, Value: value})
		}
	}
	return pairs, nil
}

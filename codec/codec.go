// Package codec provides the JSON encoders used to serialize request bodies.
package codec

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Names accepted by ByName.
const (
	NameJSON     = "json"
	NameJsoniter = "jsoniter"
)

// Codec serializes a value to its JSON representation.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
}

// JSON is the encoding/json codec. It is the default.
var JSON Codec = stdCodec{}

// Jsoniter is a json-iterator codec configured to match encoding/json output.
var Jsoniter Codec = iterCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary}

// ByName returns the codec registered under name. An empty name selects JSON.
func ByName(name string) (Codec, error) {
	switch name {
	case "", NameJSON:
		return JSON, nil
	case NameJsoniter:
		return Jsoniter, nil
	default:
		return nil, fmt.Errorf("codec: unknown codec %q", name)
	}
}

type stdCodec struct{}

func (stdCodec) Name() string                  { return NameJSON }
func (stdCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

type iterCodec struct {
	api jsoniter.API
}

func (iterCodec) Name() string                    { return NameJsoniter }
func (c iterCodec) Marshal(v any) ([]byte, error) { return c.api.Marshal(v) }

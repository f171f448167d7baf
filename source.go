package dekode

import (
	"io"

	"github.com/corefold/dekode/source"
)

// Source defers production of a raw value from an external payload. The
// payload is deserialized only when a decode entry point consumes the
// Source, so constructing one is free and side-effect free.
type Source func() (any, error)

// RawValue wraps an already-deserialized value as a Source.
func RawValue(v any) Source {
	return func() (any, error) { return v, nil }
}

// JSONBytes returns a Source that deserializes b as JSON. Numbers surface as
// json.Number so precision is preserved until a decoder interprets them.
func JSONBytes(b []byte) Source {
	return func() (any, error) { return source.JSON(b) }
}

// JSONReader returns a Source that deserializes r as JSON.
func JSONReader(r io.Reader) Source {
	return func() (any, error) { return source.JSONReader(r) }
}

// YAMLBytes returns a Source that deserializes b as YAML. Mapping keys are
// normalized to strings.
func YAMLBytes(b []byte) Source {
	return func() (any, error) { return source.YAML(b) }
}

// CBORBytes returns a Source that deserializes b as CBOR.
func CBORBytes(b []byte) Source {
	return func() (any, error) { return source.CBOR(b) }
}

// MsgpackBytes returns a Source that deserializes b as MessagePack.
func MsgpackBytes(b []byte) Source {
	return func() (any, error) { return source.Msgpack(b) }
}

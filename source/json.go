package source

import (
	"bytes"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// JSON deserializes b into a raw value tree. Numbers are kept as
// json.Number (go-json aliases the standard library type) so integer
// precision survives until a decoder interprets the value.
func JSON(b []byte) (any, error) {
	return JSONReader(bytes.NewReader(b))
}

// JSONReader deserializes a single JSON value from r.
func JSONReader(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: malformed JSON payload: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("source: trailing data after JSON payload")
	}
	return v, nil
}

package source

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBOR deserializes b into a raw value tree. CBOR allows arbitrary map key
// types; integer and other scalar keys are rendered to strings by normalize.
func CBOR(b []byte) (any, error) {
	var v any
	if err := cbor.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("source: malformed CBOR payload: %w", err)
	}
	return normalize(v), nil
}

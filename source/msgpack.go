package source

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack deserializes b into a raw value tree.
func Msgpack(b []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("source: malformed MessagePack payload: %w", err)
	}
	return normalize(v), nil
}

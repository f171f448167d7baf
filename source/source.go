// Package source deserializes external payload bytes into the raw value
// trees consumed by decoders: map[string]any for mappings, []any for
// sequences, scalars otherwise. Formats that permit non-string mapping keys
// (YAML, CBOR, MessagePack) are normalized so every mapping key is a string.
package source

import "fmt"

// normalize rewrites v so every mapping is a map[string]any. Scalar keys of
// other types are rendered to strings; nested values are normalized
// recursively.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[keyString(k)] = normalize(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalize(t[i])
		}
		return arr
	default:
		return v
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", k)
}

package dsl

import (
	dekode "github.com/corefold/dekode"
)

// Bool returns the boolean decoder. true/false, "true"/"false", "1"/"0",
// numeric 1/0, and nil all decode; nil and the false-ish forms yield false.
func Bool(p *dekode.Policy) Primitive[bool] {
	return Build(p, Descriptor[bool]{
		Kind:   dekode.KindBoolean,
		Expect: "a boolean",
		Valid: func(raw any) bool {
			_, ok := boolValue(raw)
			return ok
		},
		Convert: func(raw any) bool {
			b, _ := boolValue(raw)
			return b
		},
	})
}

// Number returns the number decoder. Anything numeric-coercible decodes:
// Go numerics, json.Number, numeric strings.
func Number(p *dekode.Policy) Primitive[float64] {
	return Build(p, Descriptor[float64]{
		Kind:   dekode.KindNumber,
		Expect: "a number",
		Valid: func(raw any) bool {
			_, ok := numericValue(raw)
			return ok
		},
		Convert: func(raw any) float64 {
			f, _ := numericValue(raw)
			return f
		},
	})
}

// String returns the string decoder. Strings pass verbatim; booleans and
// numbers stringify; everything else is rejected.
func String(p *dekode.Policy) Primitive[string] {
	return Build(p, Descriptor[string]{
		Kind:   dekode.KindString,
		Expect: "a string",
		Valid: func(raw any) bool {
			_, ok := stringValue(raw)
			return ok
		},
		Convert: func(raw any) string {
			s, _ := stringValue(raw)
			return s
		},
	})
}

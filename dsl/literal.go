package dsl

import (
	"reflect"

	dekode "github.com/corefold/dekode"
)

// LiteralValue constrains literals to the primitive kinds a literal decoder
// can compare raw input against.
type LiteralValue interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Literal returns the decoder accepting exactly the raw values equal to want
// under the matching primitive's coercion rule: a numeric literal matches any
// numeric-coercible raw equal to it, a string literal anything stringifying
// to it, a boolean literal its truth-table row. Valid input decodes to want
// itself, so the output is always the declared literal.
func Literal[T LiteralValue](p *dekode.Policy, want T) Primitive[T] {
	return Build(p, Descriptor[T]{
		Kind:   dekode.KindLiteral,
		Code:   dekode.CodeInvalidLiteral,
		Expect: dekode.RawString(want),
		Valid: func(raw any) bool {
			return literalMatches(raw, want)
		},
		Convert: func(any) T { return want },
	})
}

func literalMatches[T LiteralValue](raw any, want T) bool {
	w := reflect.ValueOf(want)
	switch w.Kind() {
	case reflect.Bool:
		b, ok := boolValue(raw)
		return ok && b == w.Bool()
	case reflect.String:
		s, ok := stringValue(raw)
		return ok && s == w.String()
	case reflect.Float32, reflect.Float64:
		f, ok := numericValue(raw)
		return ok && f == w.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := numericValue(raw)
		return ok && f == float64(w.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, ok := numericValue(raw)
		return ok && f == float64(w.Uint())
	default:
		return false
	}
}

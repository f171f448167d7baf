package dsl

import (
	"context"
	"reflect"

	dekode "github.com/corefold/dekode"
)

// Type returns the pass-through decoder used to re-tag an already-validated
// value with a nominal type, typically as the final stage of a pipe. It
// validates nothing and never reports to the policy. When raw cannot carry T
// at all (no assertion applies and no same-kind conversion exists) it
// returns the zero value with an issue, still without notifying the hook.
func Type[T any](p *dekode.Policy) dekode.Decoder[T] {
	return typeDecoder[T]{policy: p}
}

type typeDecoder[T any] struct {
	policy *dekode.Policy
}

func (t typeDecoder[T]) Decode(ctx context.Context, raw any) (T, error) {
	if v, ok := raw.(T); ok {
		return v, nil
	}
	var zero T
	rt := reflect.TypeOf(zero)
	if rt != nil && raw != nil {
		rv := reflect.ValueOf(raw)
		if rv.Kind() == rt.Kind() && rv.Type().ConvertibleTo(rt) {
			return rv.Convert(rt).Interface().(T), nil
		}
	}
	exp := "convertible to the target type"
	if rt != nil {
		exp = "convertible to " + rt.String()
	}
	return zero, dekode.Expected(dekode.KindType, dekode.CodeInvalidType, exp, raw)
}

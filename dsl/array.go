package dsl

import (
	"context"
	"reflect"

	dekode "github.com/corefold/dekode"
)

// ArrayDecoder lifts an item decoder over sequences. Order and length are
// preserved; the first failing item aborts the decode.
type ArrayDecoder[E any] struct {
	policy *dekode.Policy
	item   dekode.Decoder[E]
	fb     dekode.Fallback[[]E]
}

// Array returns the sequence decoder applying item to every element.
func Array[E any](p *dekode.Policy, item dekode.Decoder[E]) ArrayDecoder[E] {
	return ArrayDecoder[E]{policy: p, item: item}
}

// WithDefault returns a copy yielding v when raw is not a sequence. Item
// failures are not covered: those wrap and propagate regardless, unless the
// item decoder itself defaults.
func (a ArrayDecoder[E]) WithDefault(v []E) ArrayDecoder[E] {
	a.fb = dekode.Default(v)
	return a
}

// Decode implements dekode.Decoder[[]E]. Each item failure is framed with
// its zero-based index before propagating.
func (a ArrayDecoder[E]) Decode(ctx context.Context, raw any) ([]E, error) {
	items, ok := sequence(raw)
	if !ok {
		return dekode.Resolve(ctx, a.policy, a.fb, dekode.Expected(dekode.KindArray, dekode.CodeInvalidType, "an array", raw))
	}
	out := make([]E, 0, len(items))
	for i, it := range items {
		ev, err := a.item.Decode(ctx, it)
		if err != nil {
			return dekode.Resolve(ctx, a.policy, dekode.Strict[[]E](), dekode.ItemFailed(i, err))
		}
		out = append(out, ev)
	}
	return out, nil
}

// sequence widens raw into []any. Any slice or array counts except []byte,
// which payload formats treat as a scalar.
func sequence(raw any) ([]any, bool) {
	switch s := raw.(type) {
	case []any:
		return s, true
	case []byte, nil:
		return nil, false
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

package dsl

import (
	"context"
	"sort"

	dekode "github.com/corefold/dekode"
)

// Field couples the raw-source key with the decoder for one output
// property. Build one with Prop.
type Field struct {
	From string
	dec  func(ctx context.Context, raw any) (any, error)
}

// Prop declares that an output property reads raw key from and decodes it
// with d. The typed decoder is erased here so a FieldMap can mix value
// types.
func Prop[T any](from string, d dekode.Decoder[T]) Field {
	return Field{
		From: from,
		dec: func(ctx context.Context, raw any) (any, error) {
			return d.Decode(ctx, raw)
		},
	}
}

// FieldMap maps output property names to their source fields. Output names
// and raw keys are independent namespaces and may differ arbitrarily.
type FieldMap map[string]Field

// ObjectDecoder decodes a keyed raw structure into a map holding exactly
// the FieldMap's output keys. Properties decode in sorted output-key order,
// keeping runs deterministic for a fixed mapping.
type ObjectDecoder struct {
	policy *dekode.Policy
	fields FieldMap
	keys   []string
	fb     dekode.Fallback[map[string]any]
}

// Object returns the record decoder for fields.
func Object(p *dekode.Policy, fields FieldMap) ObjectDecoder {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return ObjectDecoder{policy: p, fields: fields, keys: keys}
}

// WithDefault returns a copy yielding v when raw is not an object. Field
// failures are not covered: those wrap and propagate regardless, unless the
// field decoder itself defaults.
func (o ObjectDecoder) WithDefault(v map[string]any) ObjectDecoder {
	o.fb = dekode.Default(v)
	return o
}

// Decode implements dekode.Decoder[map[string]any]. Raw keys absent from
// the mapping are ignored; mapped keys absent from raw decode from nil.
// A field failure is framed with the property name and raw key before
// propagating.
func (o ObjectDecoder) Decode(ctx context.Context, raw any) (map[string]any, error) {
	src, ok := raw.(map[string]any)
	if !ok {
		return dekode.Resolve(ctx, o.policy, o.fb, dekode.Expected(dekode.KindObject, dekode.CodeInvalidType, "an object", raw))
	}
	out := make(map[string]any, len(o.keys))
	for _, name := range o.keys {
		f := o.fields[name]
		v, err := f.dec(ctx, src[f.From])
		if err != nil {
			return dekode.Resolve(ctx, o.policy, dekode.Strict[map[string]any](), dekode.PropertyFailed(name, f.From, err))
		}
		out[name] = v
	}
	return out, nil
}

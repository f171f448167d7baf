package dsl

import (
	"context"

	dekode "github.com/corefold/dekode"
)

// Descriptor bundles what the generic factory needs to mint a leaf decoder:
// a validity predicate, a conversion applied only to valid input, and the
// message parts for the failure issue. Every built-in primitive is a thin
// instantiation of this; custom leaf decoders plug in the same way.
type Descriptor[T any] struct {
	Kind    string               // Message kind, e.g. "Number".
	Code    string               // Issue code; empty means invalid_type.
	Expect  string               // Expectation clause, e.g. "a number".
	Valid   func(raw any) bool   // Validity predicate over the raw value.
	Convert func(raw any) T      // Applied only when Valid(raw) holds.
	Message func(raw any) string // Optional full-message override.
}

func (d Descriptor[T]) issue(raw any) *dekode.Issue {
	code := d.Code
	if code == "" {
		code = dekode.CodeInvalidType
	}
	if d.Message != nil {
		return &dekode.Issue{Kind: d.Kind, Code: code, Raw: raw, Message: d.Message(raw)}
	}
	return dekode.Expected(d.Kind, code, d.Expect, raw)
}

// Primitive is a leaf decoder minted by Build. The zero fallback keeps it
// strict; WithDefault derives a defaulting copy.
type Primitive[T any] struct {
	policy *dekode.Policy
	desc   Descriptor[T]
	fb     dekode.Fallback[T]
}

// Build turns a Descriptor and an error policy into a strict leaf decoder.
func Build[T any](p *dekode.Policy, desc Descriptor[T]) Primitive[T] {
	return Primitive[T]{policy: p, desc: desc}
}

// WithDefault returns a copy of d that yields v on invalid input instead of
// failing. Declaring a default is what selects the behavior, so a zero v
// still defaults. Valid input parses normally.
func (d Primitive[T]) WithDefault(v T) Primitive[T] {
	d.fb = dekode.Default(v)
	return d
}

// Decode implements dekode.Decoder[T].
func (d Primitive[T]) Decode(ctx context.Context, raw any) (T, error) {
	if !d.desc.Valid(raw) {
		return dekode.Resolve(ctx, d.policy, d.fb, d.desc.issue(raw))
	}
	return d.desc.Convert(raw), nil
}

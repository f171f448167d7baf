// Package bind lifts object decoders into struct-typed decoders.
package bind

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	dekode "github.com/corefold/dekode"
)

// Struct returns a decoder that runs obj and binds its map output onto T.
// Field matching follows mapstructure rules: `mapstructure:"name"` tags
// first, then case-insensitive field names. Object-level failures propagate
// as-is; a binding mismatch is reported as a Struct issue.
func Struct[T any](p *dekode.Policy, obj dekode.Decoder[map[string]any]) dekode.Decoder[T] {
	return structDecoder[T]{policy: p, obj: obj}
}

type structDecoder[T any] struct {
	policy *dekode.Policy
	obj    dekode.Decoder[map[string]any]
}

func (s structDecoder[T]) Decode(ctx context.Context, raw any) (T, error) {
	var out T
	m, err := s.obj.Decode(ctx, raw)
	if err != nil {
		return out, err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &out})
	if err != nil {
		return out, &dekode.Issue{
			Kind:    dekode.KindStruct,
			Code:    dekode.CodeBindFailed,
			Message: fmt.Sprintf("Struct Decoder: cannot bind into %T: %v", out, err),
			Cause:   err,
		}
	}
	if err := dec.Decode(m); err != nil {
		iss := &dekode.Issue{
			Kind:    dekode.KindStruct,
			Code:    dekode.CodeBindFailed,
			Raw:     m,
			Cause:   err,
			Message: fmt.Sprintf("Struct Decoder: failed to bind decoded object into %T: %v", out, err),
		}
		return dekode.Resolve(ctx, s.policy, dekode.Strict[T](), iss)
	}
	return out, nil
}

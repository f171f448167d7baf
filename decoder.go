package dekode

import "context"

// Decoder converts an untrusted raw value into a typed value of T.
//
// Implementations are pure: they hold no mutable state, perform no I/O, and
// produce identical results for identical input, so a single decoder may be
// shared freely across goroutines. The only side effect a decoder performs
// is reporting a strict failure through its captured Policy.
type Decoder[T any] interface {
	Decode(ctx context.Context, raw any) (T, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc[T any] func(ctx context.Context, raw any) (T, error)

func (f DecoderFunc[T]) Decode(ctx context.Context, raw any) (T, error) { return f(ctx, raw) }

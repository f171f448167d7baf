package dsl

import (
	"context"

	dekode "github.com/corefold/dekode"
)

// Pipe composes two decoders sequentially: the first stage's output becomes
// the next stage's raw input, and the result type is the last stage's. A
// stage failure propagates unchanged; pipe adds no context of its own and
// never reports to the policy.
func Pipe[A, B any](first dekode.Decoder[A], next dekode.Decoder[B]) dekode.Decoder[B] {
	return dekode.DecoderFunc[B](func(ctx context.Context, raw any) (B, error) {
		a, err := first.Decode(ctx, raw)
		if err != nil {
			var zero B
			return zero, err
		}
		return next.Decode(ctx, a)
	})
}

// Pipe3 chains three stages.
func Pipe3[A, B, C any](first dekode.Decoder[A], second dekode.Decoder[B], third dekode.Decoder[C]) dekode.Decoder[C] {
	return Pipe(Pipe(first, second), third)
}

// Pipe4 chains four stages.
func Pipe4[A, B, C, D any](first dekode.Decoder[A], second dekode.Decoder[B], third dekode.Decoder[C], fourth dekode.Decoder[D]) dekode.Decoder[D] {
	return Pipe(Pipe3(first, second, third), fourth)
}

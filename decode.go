package dekode

import "context"

// DecodeFrom is the primary entry point. It materializes the Source's raw
// value and decodes it with d. Deserialization failures surface as
// parse_error issues; decode failures follow d's own policy.
func DecodeFrom[T any](ctx context.Context, d Decoder[T], src Source) (T, error) {
	var zero T
	if d == nil {
		return zero, &Issue{Code: CodeParseError, Message: "dekode: nil decoder"}
	}
	if src == nil {
		return zero, &Issue{Code: CodeParseError, Message: "dekode: nil source"}
	}
	raw, err := src()
	if err != nil {
		return zero, (&Issue{
			Code:    CodeParseError,
			Message: "dekode: source failed: " + err.Error(),
		}).WithCause(err)
	}
	return d.Decode(ctx, raw)
}

// Safe decodes raw with d, reporting success via the second return instead
// of an error.
func Safe[T any](ctx context.Context, d Decoder[T], raw any) (T, bool) {
	v, err := d.Decode(ctx, raw)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// Is reports whether raw decodes cleanly under d.
func Is[T any](ctx context.Context, d Decoder[T], raw any) bool {
	_, err := d.Decode(ctx, raw)
	return err == nil
}

package dekode

// Package dekode provides:
//
// - Typed decoders from untrusted raw values via Decoder[T] (Decode/DecodeFrom/Safe/Is)
// - A stable error model via Issue (kind, code, exact message grammar)
// - An immutable failure Policy threaded through every decoder (hook, logger)
// - Payload ingestion through Source (JSON, YAML, CBOR, MessagePack)
//
// Design policy:
// - Keep only public APIs in the root package; combinators live under dsl/,
//   payload readers under source/, struct binding under bind/.
// - Decoders are pure values: build once, share across goroutines.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	p := dekode.Configure()
//	user := dsl.Object(p, dsl.FieldMap{
//		"id":   dsl.Prop("ID", dsl.Number(p)),
//		"name": dsl.Prop("Name", dsl.String(p)),
//	})
//	v, err := dekode.DecodeFrom(ctx, user, dekode.JSONBytes(data))

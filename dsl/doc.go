// Package dsl provides the decoder combinators for dekode.
//
// Overview
//   - Primitives: Bool/Number/String/Date/Literal/Type, all built through the
//     generic factory Build from a Descriptor.
//   - Combinators: Array(p, item), Object(p, FieldMap{...}), Pipe/Pipe3/Pipe4.
//   - Defaults: every concrete decoder offers WithDefault(v), deriving a copy
//     that yields v instead of failing; declaring the default, not its value,
//     selects the behavior.
//   - Policy: every constructor takes the *dekode.Policy it reports strict
//     failures through; one policy fans out to a whole decoder family.
//
// Entry points
//   - Build(p, desc): mint a custom leaf decoder from a Descriptor.
//   - Object(p, fields): map raw keys onto output properties, renaming freely.
//   - Array(p, item): element-wise decoding with index-framed failures.
//   - Pipe(first, next): feed one decoder's output to the next as raw input.
//
// File layout (roles)
//   - descriptor.go: Descriptor, Primitive, Build, WithDefault semantics.
//   - coerce.go: the shared coercion tables (numeric, boolean, string).
//   - primitives.go / date.go / literal.go / typed.go: the built-in leaves.
//   - array.go / object.go / pipe.go: the combinators.
//
// Example (quickstart)
//
//	p := dekode.Configure()
//	user := dsl.Object(p, dsl.FieldMap{
//		"id":     dsl.Prop("ID", dsl.Number(p)),
//		"name":   dsl.Prop("Name", dsl.String(p)),
//		"active": dsl.Prop("Active", dsl.Bool(p).WithDefault(false)),
//	})
//	v, err := dekode.DecodeFrom(ctx, user, dekode.JSONBytes(data))
//
// Example (nominal types via pipe)
//
//	type UserID string
//	id := dsl.Pipe(dsl.String(p), dsl.Type[UserID](p))
package dsl

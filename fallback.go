package dekode

// Fallback records whether a decoder was constructed with a default value.
// The zero value means strict. Declaring a default, not the default's value,
// is what selects defaulting behavior: Default of a zero (or nil) value
// still yields a defaulting decoder.
type Fallback[T any] struct {
	value T
	ok    bool
}

// Default declares v as a construction-time fallback.
func Default[T any](v T) Fallback[T] { return Fallback[T]{value: v, ok: true} }

// Strict is the no-fallback state, spelled out. Equivalent to the zero value.
func Strict[T any]() Fallback[T] { return Fallback[T]{} }

// Declared reports whether a fallback value was declared.
func (f Fallback[T]) Declared() bool { return f.ok }

// Value returns the declared fallback and whether one was declared.
func (f Fallback[T]) Value() (T, bool) { return f.value, f.ok }

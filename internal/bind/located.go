package bind

import language "github.com/gqlbind/gqlbind/internal/language"

// Located pairs a resolved value with the source position of the syntax
// node it was derived from. Positions are threaded through every level of
// the resolved tree so a diagnostic can always point at the exact token,
// not just the enclosing statement.
type Located[T any] struct {
	Value T
	Pos   *language.Position
}

// At wraps v with the given source position.
func At[T any](v T, pos *language.Position) Located[T] {
	return Located[T]{Value: v, Pos: pos}
}

package union

// Transformations are provided as functions because Go methods cannot have
// type parameters. A right instance passed to a left transformation (and
// vice versa) is relabeled with the new type parameter; its payload is
// carried over untouched.

// MapLeft applies f to the left value if present and wraps the result as a
// new left. A right instance passes through with its payload unchanged.
func MapLeft[T, U, R any](u Union[T, U], f func(T) R) Union[R, U] {
	if u.isLeft {
		return OfLeft[R, U](f(u.left))
	}
	return Union[R, U]{right: u.right}
}

// MapRight applies f to the right value if present and wraps the result as a
// new right. A left instance passes through with its payload unchanged.
func MapRight[T, U, R any](u Union[T, U], f func(U) R) Union[T, R] {
	if !u.isLeft {
		return OfRight[T, R](f(u.right))
	}
	return Union[T, R]{left: u.left, isLeft: true}
}

// FlatMapLeft applies f to the left value if present and returns its result
// directly, flattening one level of nesting. A right instance passes through
// with its payload unchanged.
func FlatMapLeft[T, U, R any](u Union[T, U], f func(T) Union[R, U]) Union[R, U] {
	if u.isLeft {
		return f(u.left)
	}
	return Union[R, U]{right: u.right}
}

// FlatMapRight applies f to the right value if present and returns its
// result directly, flattening one level of nesting. A left instance passes
// through with its payload unchanged.
func FlatMapRight[T, U, R any](u Union[T, U], f func(U) Union[T, R]) Union[T, R] {
	if !u.isLeft {
		return f(u.right)
	}
	return Union[T, R]{left: u.left, isLeft: true}
}

// Fold reduces the union to a single value by applying exactly one of the
// two functions, depending on the side held. This is the exhaustive
// alternative to the panicking accessors.
func Fold[T, U, R any](u Union[T, U], onLeft func(T) R, onRight func(U) R) R {
	if u.isLeft {
		return onLeft(u.left)
	}
	return onRight(u.right)
}

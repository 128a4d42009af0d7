package union

type Unapply interface {
	Unapply(v any) bool
}

type Copyable[T any] interface {
	Copy() T
}

type Equatable[T any] interface {
	Equal(other T) bool
}

type Hashable interface {
	Hash() uint64
}

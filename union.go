// Package union provides a generic container holding exactly one value of
// one of two possible types, tagged as either "left" or "right". The labels
// are purely positional and carry no success/failure meaning.
package union

import (
	"fmt"
	"hash/maphash"
	"reflect"

	"martianoff/union/unionerr"
)

var seed = maphash.MakeSeed()

// Union holds either a left value of type T or a right value of type U,
// never both and never neither. Instances are immutable value types and can
// be shared between goroutines without synchronization; every transformation
// produces a new instance.
type Union[T, U any] struct {
	left   T
	right  U
	isLeft bool
}

// OfLeft constructs a Union holding a left value.
// Panics with a unionerr.NilValueError if the value is a nil pointer,
// interface, map, slice, channel or function.
func OfLeft[T, U any](value T) Union[T, U] {
	requirePresent(value, "left")
	return Union[T, U]{left: value, isLeft: true}
}

// OfRight constructs a Union holding a right value.
// Panics with a unionerr.NilValueError if the value is a nil pointer,
// interface, map, slice, channel or function.
func OfRight[T, U any](value U) Union[T, U] {
	requirePresent(value, "right")
	return Union[T, U]{right: value}
}

func requirePresent(value any, side string) {
	if value == nil {
		panic(unionerr.NewNilValueError(side))
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if v.IsNil() {
			panic(unionerr.NewNilValueError(side))
		}
	}
}

// IsLeft reports whether this instance holds a left value.
func (u Union[T, U]) IsLeft() bool {
	return u.isLeft
}

// IsRight reports whether this instance holds a right value.
func (u Union[T, U]) IsRight() bool {
	return !u.isLeft
}

// Left returns the left value and true if present, or the zero value of T
// and false otherwise. Prefer this (or Fold) over GetLeft.
func (u Union[T, U]) Left() (T, bool) {
	return u.left, u.isLeft
}

// Right returns the right value and true if present, or the zero value of U
// and false otherwise. Prefer this (or Fold) over GetRight.
func (u Union[T, U]) Right() (U, bool) {
	return u.right, !u.isLeft
}

// GetLeft returns the left value.
// Panics with a unionerr.WrongSideError if this instance holds a right value.
func (u Union[T, U]) GetLeft() T {
	if !u.isLeft {
		panic(unionerr.NewWrongSideError("right", "left"))
	}
	return u.left
}

// GetRight returns the right value.
// Panics with a unionerr.WrongSideError if this instance holds a left value.
func (u Union[T, U]) GetRight() U {
	if u.isLeft {
		panic(unionerr.NewWrongSideError("left", "right"))
	}
	return u.right
}

// IfLeft invokes action with the left value if present.
func (u Union[T, U]) IfLeft(action func(T)) {
	if u.isLeft {
		action(u.left)
	}
}

// IfRight invokes action with the right value if present.
func (u Union[T, U]) IfRight(action func(U)) {
	if !u.isLeft {
		action(u.right)
	}
}

// GetLeftOrElse returns the left value if present, otherwise other.
func (u Union[T, U]) GetLeftOrElse(other T) T {
	if u.isLeft {
		return u.left
	}
	return other
}

// GetRightOrElse returns the right value if present, otherwise other.
func (u Union[T, U]) GetRightOrElse(other U) U {
	if !u.isLeft {
		return u.right
	}
	return other
}

// GetLeftOrElseGet returns the left value if present, otherwise the result
// of supplier. The supplier is only invoked when this instance is right.
func (u Union[T, U]) GetLeftOrElseGet(supplier func() T) T {
	if u.isLeft {
		return u.left
	}
	return supplier()
}

// GetRightOrElseGet returns the right value if present, otherwise the result
// of supplier. The supplier is only invoked when this instance is left.
func (u Union[T, U]) GetRightOrElseGet(supplier func() U) U {
	if !u.isLeft {
		return u.right
	}
	return supplier()
}

// GetLeftOrElseThrow returns the left value if present, otherwise the zero
// value of T and the error produced by errSupplier, returned unmodified.
func (u Union[T, U]) GetLeftOrElseThrow(errSupplier func() error) (T, error) {
	if u.isLeft {
		return u.left, nil
	}
	var zero T
	return zero, errSupplier()
}

// GetRightOrElseThrow returns the right value if present, otherwise the zero
// value of U and the error produced by errSupplier, returned unmodified.
func (u Union[T, U]) GetRightOrElseThrow(errSupplier func() error) (U, error) {
	if !u.isLeft {
		return u.right, nil
	}
	var zero U
	return zero, errSupplier()
}

func (u Union[T, U]) payload() any {
	if u.isLeft {
		return u.left
	}
	return u.right
}

// Equal reports whether both instances hold equal payloads. The discriminant
// is not compared: when T and U coincide, a left and a right holding equal
// values are equal, matching Hash.
func (u Union[T, U]) Equal(other Union[T, U]) bool {
	return valueEqual(u.payload(), other.payload())
}

// Unapply reports whether the payload equals the bare value v, whichever
// side it belongs to. This comparison is asymmetric: v knows nothing about
// Union, so the reverse direction never holds.
func (u Union[T, U]) Unapply(v any) bool {
	return valueEqual(u.payload(), v)
}

// Copy returns a copy of this instance, deep-copying the payload when it
// implements Copyable.
func (u Union[T, U]) Copy() Union[T, U] {
	if u.isLeft {
		return Union[T, U]{left: copyValue(u.left), isLeft: true}
	}
	return Union[T, U]{right: copyValue(u.right)}
}

// Hash returns a hash derived solely from the payload, independent of the
// discriminant. Equal instances hash equal: pointer payloads are hashed by
// their pointee, and a payload may implement Hashable to supply a hash
// matching a custom Equal. Payloads whose Equal is coarser than their value
// (or that bury pointers inside struct fields) must implement Hashable to
// keep the contract. Values are stable within a single process only.
func (u Union[T, U]) Hash() uint64 {
	return hashValue(u.payload())
}

func (u Union[T, U]) String() string {
	if u.isLeft {
		return fmt.Sprintf("Left(%v)", u.left)
	}
	return fmt.Sprintf("Right(%v)", u.right)
}

func hashValue(v any) uint64 {
	if h, ok := v.(Hashable); ok {
		return h.Hash()
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.IsValid() {
		v = rv.Interface()
	}
	return maphash.String(seed, fmt.Sprintf("%#v", v))
}

func valueEqual(a, b any) bool {
	av := reflect.ValueOf(a)
	if av.IsValid() {
		// Equatable is generic, so look the method up via reflection.
		m := av.MethodByName("Equal")
		if m.IsValid() && m.Type().NumIn() == 1 && m.Type().NumOut() == 1 && m.Type().Out(0).Kind() == reflect.Bool {
			bv := reflect.ValueOf(b)
			if bv.IsValid() && bv.Type().AssignableTo(m.Type().In(0)) {
				return m.Call([]reflect.Value{bv})[0].Bool()
			}
		}
	}
	return reflect.DeepEqual(a, b)
}

func copyValue[V any](v V) V {
	if c, ok := any(v).(Copyable[V]); ok {
		return c.Copy()
	}
	return v
}

var _ Unapply = Union[int, string]{}
var _ Copyable[Union[int, string]] = Union[int, string]{}
var _ Equatable[Union[int, string]] = Union[int, string]{}
var _ Hashable = Union[int, string]{}
var _ fmt.Stringer = Union[int, string]{}

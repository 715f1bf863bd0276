package vec3

import (
	"errors"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is the set of component types a Vector3 can hold.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// ErrIndexOutOfRange is matched (errors.Is) by every IndexError.
var ErrIndexOutOfRange = errors.New("vec3: index out of range")

// IndexError reports an index outside 0..2.
//
// At and Ptr panic with it; Get returns it.
type IndexError struct{ Index int }

// Error implements the error interface.
func (e IndexError) Error() string {
	// Example: vec3: index 3 out of range [0, 3)
	return "vec3: index " + strconv.Itoa(e.Index) + " out of range [0, 3)"
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Vector3 is a three-component value.
//
// Any combination of component values is valid. The zero value is the zero
// vector.
type Vector3[T Number] struct {
	X, Y, Z T
}

// New builds a vector from its components.
func New[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Zero returns the all-zero vector.
func Zero[T Number]() Vector3[T] { return Vector3[T]{} }

// Splat returns a vector with all three components set to s.
func Splat[T Number](s T) Vector3[T] {
	return Vector3[T]{X: s, Y: s, Z: s}
}

// FromArray builds a vector from a [x, y, z] array.
func FromArray[T Number](a [3]T) Vector3[T] {
	return Vector3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components as [x, y, z].
func (v Vector3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// At returns component i (0 = X, 1 = Y, 2 = Z).
//
// It panics with an IndexError for any other index.
func (v Vector3[T]) At(i int) T {
	return *v.Ptr(i)
}

// Ptr returns a pointer to component i so it can be modified in place.
//
// It panics with an IndexError for any index outside 0..2.
func (v *Vector3[T]) Ptr(i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	default:
		panic(IndexError{Index: i})
	}
}

// Get is the checked form of At.
func (v Vector3[T]) Get(i int) (T, error) {
	if i < 0 || i > 2 {
		var zero T
		return zero, IndexError{Index: i}
	}
	return v.At(i), nil
}

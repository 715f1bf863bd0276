package vec3

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Add returns v + o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul returns the componentwise product of v and o.
func (v Vector3[T]) Mul(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Div returns the componentwise quotient of v and o.
//
// Integer division by a zero component panics like any Go integer division.
func (v Vector3[T]) Div(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z}
}

// MulScalar multiplies every component by s.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vector3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DivScalar divides every component by s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v *Vector3[T]) AddAssign(o Vector3[T]) { *v = v.Add(o) }
func (v *Vector3[T]) SubAssign(o Vector3[T]) { *v = v.Sub(o) }
func (v *Vector3[T]) MulAssign(o Vector3[T]) { *v = v.Mul(o) }
func (v *Vector3[T]) DivAssign(o Vector3[T]) { *v = v.Div(o) }
func (v *Vector3[T]) MulScalarAssign(s T)    { *v = v.MulScalar(s) }
func (v *Vector3[T]) DivScalarAssign(s T)    { *v = v.DivScalar(s) }
func (v *Vector3[T]) NegAssign()             { *v = v.Neg() }

//
// Integer-only operations.
//

// Rem returns the componentwise remainder a % b.
func Rem[T constraints.Integer](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{X: a.X % b.X, Y: a.Y % b.Y, Z: a.Z % b.Z}
}

// RemScalar returns every component of v modulo s.
func RemScalar[T constraints.Integer](v Vector3[T], s T) Vector3[T] {
	return Vector3[T]{X: v.X % s, Y: v.Y % s, Z: v.Z % s}
}

// Not returns the bitwise complement of each component.
func Not[T constraints.Integer](v Vector3[T]) Vector3[T] {
	return Vector3[T]{X: ^v.X, Y: ^v.Y, Z: ^v.Z}
}

// Shl shifts every component left by n.
func Shl[T constraints.Integer](v Vector3[T], n uint) Vector3[T] {
	return Vector3[T]{X: v.X << n, Y: v.Y << n, Z: v.Z << n}
}

// Shr shifts every component right by n, arithmetic for signed types.
func Shr[T constraints.Integer](v Vector3[T], n uint) Vector3[T] {
	return Vector3[T]{X: v.X >> n, Y: v.Y >> n, Z: v.Z >> n}
}

// And returns the componentwise a & b.
func And[T constraints.Integer](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{X: a.X & b.X, Y: a.Y & b.Y, Z: a.Z & b.Z}
}

// Or returns the componentwise a | b.
func Or[T constraints.Integer](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{X: a.X | b.X, Y: a.Y | b.Y, Z: a.Z | b.Z}
}

// Xor returns the componentwise a ^ b.
func Xor[T constraints.Integer](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{X: a.X ^ b.X, Y: a.Y ^ b.Y, Z: a.Z ^ b.Z}
}

// AndNot returns the componentwise a &^ b.
func AndNot[T constraints.Integer](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{X: a.X &^ b.X, Y: a.Y &^ b.Y, Z: a.Z &^ b.Z}
}

func RemAssign[T constraints.Integer](v *Vector3[T], o Vector3[T])    { *v = Rem(*v, o) }
func RemScalarAssign[T constraints.Integer](v *Vector3[T], s T)       { *v = RemScalar(*v, s) }
func NotAssign[T constraints.Integer](v *Vector3[T])                  { *v = Not(*v) }
func ShlAssign[T constraints.Integer](v *Vector3[T], n uint)          { *v = Shl(*v, n) }
func ShrAssign[T constraints.Integer](v *Vector3[T], n uint)          { *v = Shr(*v, n) }
func AndAssign[T constraints.Integer](v *Vector3[T], o Vector3[T])    { *v = And(*v, o) }
func OrAssign[T constraints.Integer](v *Vector3[T], o Vector3[T])     { *v = Or(*v, o) }
func XorAssign[T constraints.Integer](v *Vector3[T], o Vector3[T])    { *v = Xor(*v, o) }
func AndNotAssign[T constraints.Integer](v *Vector3[T], o Vector3[T]) { *v = AndNot(*v, o) }

//
// Float remainder. Go floats have no % operator; math.Mod has the same
// truncated semantics (result takes the sign of the dividend).
//

// Mod returns the componentwise floating-point remainder of a / b.
func Mod[T constraints.Float](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{X: mod(a.X, b.X), Y: mod(a.Y, b.Y), Z: mod(a.Z, b.Z)}
}

// ModScalar returns every component of v modulo s.
func ModScalar[T constraints.Float](v Vector3[T], s T) Vector3[T] {
	return Vector3[T]{X: mod(v.X, s), Y: mod(v.Y, s), Z: mod(v.Z, s)}
}

func ModAssign[T constraints.Float](v *Vector3[T], o Vector3[T]) { *v = Mod(*v, o) }
func ModScalarAssign[T constraints.Float](v *Vector3[T], s T)    { *v = ModScalar(*v, s) }

func mod[T constraints.Float](a, b T) T {
	return T(math.Mod(float64(a), float64(b)))
}

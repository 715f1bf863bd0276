package vec3

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// NearZeroThreshold is the per-component bound used by NearZero, for both
// float32 and float64 vectors.
const NearZeroThreshold = 1e-8

// Dot returns v.X*o.X + v.Y*o.Y + v.Z*o.Z.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LengthSquared returns v.Dot(v).
func (v Vector3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Cross returns the right-handed cross product v × o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// ElementwiseMul returns (v.X*o.X, v.Y*o.Y, v.Z*o.Z). Same as Mul.
func (v Vector3[T]) ElementwiseMul(o Vector3[T]) Vector3[T] {
	return v.Mul(o)
}

// Map applies f to X, Y and Z, in that order.
func Map[T, U Number](v Vector3[T], f func(T) U) Vector3[U] {
	return Vector3[U]{X: f(v.X), Y: f(v.Y), Z: f(v.Z)}
}

// Length returns the Euclidean length of v.
func Length[T constraints.Float](v Vector3[T]) T {
	return sqrt(v.LengthSquared())
}

// Normalized returns v scaled to unit length.
//
// A zero vector produces NaN components (0/0).
func Normalized[T constraints.Float](v Vector3[T]) Vector3[T] {
	return v.DivScalar(Length(v))
}

// NearZero reports whether every component is within NearZeroThreshold of 0.
func NearZero[T constraints.Float](v Vector3[T]) bool {
	const s = NearZeroThreshold
	return abs(v.X) < s && abs(v.Y) < s && abs(v.Z) < s
}

// Reflect mirrors v about the plane with the given normal: v - 2(v·n)n.
// The normal must already be unit length.
func Reflect[T constraints.Float](v, normal Vector3[T]) Vector3[T] {
	return v.Sub(normal.MulScalar(v.Dot(normal) * 2))
}

// ApproxEqual reports whether each component of a and b differs by at most eps.
func ApproxEqual[T constraints.Float](a, b Vector3[T], eps T) bool {
	return abs(a.X-b.X) <= eps && abs(a.Y-b.Y) <= eps && abs(a.Z-b.Z) <= eps
}

func sqrt[T constraints.Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

func abs[T constraints.Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Abs(f))
	}
	return T(math.Abs(float64(x)))
}

// Package convert moves vec3 vectors in and out of the vector types used by
// gonum (spatial/r3) and golang.org/x/image (math/f32).
package convert

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sghaida/vec3/vec3"
)

// Real is the set of component types that convert to and from float64/float32
// without going through complex parts.
type Real interface {
	constraints.Integer | constraints.Float
}

// ToR3 converts v to a gonum r3.Vec.
func ToR3[T Real](v vec3.Vector3[T]) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR3 converts a gonum r3.Vec to a Vector3[T]. Conversion to an integer
// type truncates toward zero, as a Go conversion does.
func FromR3[T Real](v r3.Vec) vec3.Vector3[T] {
	return vec3.New(T(v.X), T(v.Y), T(v.Z))
}

// ToF32 converts v to an x/image f32.Vec3.
func ToF32[T Real](v vec3.Vector3[T]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// FromF32 converts an x/image f32.Vec3 to a Vector3[T].
func FromF32[T Real](v f32.Vec3) vec3.Vector3[T] {
	return vec3.New(T(v[0]), T(v[1]), T(v[2]))
}

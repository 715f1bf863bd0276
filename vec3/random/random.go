// Package random samples vec3 vectors by rejection.
//
// It is kept out of package vec3 so that callers who never sample do not
// depend on a generator. The generator is always injected: any value with a
// Float64() float64 method returning draws in [0, 1) works, which includes
// *math/rand.Rand and *math/rand/v2.Rand. Sharing one Source between
// goroutines is the caller's business.
//
// The rejection loops have no iteration cap. Each candidate in the unit cube
// is rejected with probability about 0.476 (0.215 for the disk), so a long run
// is astronomically unlikely but not impossible; wrap the Source with
// WithLogger to be told about one.
package random

import (
	"golang.org/x/exp/constraints"

	"github.com/sghaida/vec3/vec3"
)

// Source supplies uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// Shape names the region a sampler draws from.
type Shape int

const (
	Sphere Shape = iota
	Disk
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case Sphere:
		return "sphere"
	case Disk:
		return "disk"
	default:
		return "unknown"
	}
}

// Observer is an optional extension of Source. When the Source passed to a
// sampler implements it, ObserveRejections is called once per sample with the
// number of candidates that were thrown away before one was accepted.
type Observer interface {
	ObserveRejections(shape Shape, rejected int)
}

// Unit returns a uniformly distributed unit-length vector.
func Unit[T constraints.Float](src Source) vec3.Vector3[T] {
	return vec3.Normalized(InUnitSphere[T](src))
}

// InUnitSphere returns a point drawn uniformly from inside the unit ball.
// The result is not normalized.
func InUnitSphere[T constraints.Float](src Source) vec3.Vector3[T] {
	rejected := 0
	for {
		p := vec3.New(uniform[T](src), uniform[T](src), uniform[T](src))
		if p.LengthSquared() < 1 {
			observe(src, Sphere, rejected)
			return p
		}
		rejected++
	}
}

// InUnitDisk returns a point drawn uniformly from inside the unit disk in the
// xy-plane. Z is always 0.
func InUnitDisk[T constraints.Float](src Source) vec3.Vector3[T] {
	rejected := 0
	for {
		p := vec3.New(uniform[T](src), uniform[T](src), 0)
		if p.LengthSquared() < 1 {
			observe(src, Disk, rejected)
			return p
		}
		rejected++
	}
}

// uniform maps a [0, 1) draw onto [-1, 1).
func uniform[T constraints.Float](src Source) T {
	return T(2*src.Float64() - 1)
}

func observe(src Source, shape Shape, rejected int) {
	if o, ok := src.(Observer); ok {
		o.ObserveRejections(shape, rejected)
	}
}

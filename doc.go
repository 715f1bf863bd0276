// Package vec3 is the root of a small generic 3D vector module.
//
// The repository is organised as:
//
//   - vec3: the Vector3[T] value type with componentwise arithmetic, bitwise
//     operations for integer components, dot/cross products, length,
//     normalization, reflection and fmt.Formatter support.
//   - vec3/random: optional rejection samplers (unit sphere, unit disk, unit
//     vector) driven by an injected generator.
//   - vec3/convert: conversion to and from gonum r3.Vec and x/image f32.Vec3.
//   - cmd/vec3: a command line calculator over the library.
//   - examples/scatter: diffuse and mirror bounce directions, path tracer style.
//
// Import
//
//	"github.com/sghaida/vec3/vec3"
package vec3

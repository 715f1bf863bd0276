// Package vec3 provides Vector3[T], a small generic three-component value type.
//
// A Vector3 is a plain value: three public fields of the same numeric type,
// compared with == and defaulting to the zero vector. It is meant as a
// building block for geometry, graphics and physics code (ray tracers,
// simulations) and deliberately stops there: no matrices, no rays, no
// transforms.
//
// Go has no operator overloading and no per-method type constraints, so the
// operations are split by what the component type supports:
//
//   - Methods on Vector3[T] cover everything every Number supports:
//     Add, Sub, Mul, Div, MulScalar, DivScalar, Neg, Dot, Cross,
//     LengthSquared, ElementwiseMul and their *Assign variants.
//   - Integer-only free functions: Rem, RemScalar, Not, Shl, Shr, And, Or,
//     Xor, AndNot (plus *Assign variants).
//   - Float-only free functions: Length, Normalized, NearZero, Reflect,
//     Mod, ModScalar, ApproxEqual.
//
// Every operation is componentwise and forwards to the component type's own
// operator, so overflow, rounding and IEEE-754 behavior are inherited as is.
// Normalizing a zero vector yields NaN components; it does not fail.
//
// # Indexing
//
// At and Ptr panic with an IndexError for any index outside 0..2. Get is the
// checked variant and returns the IndexError instead.
//
// # Formatting
//
// Vector3 implements fmt.Formatter. The verb and flags are applied to each
// component and the result is rendered as "[x, y, z]":
//
//	fmt.Sprintf("%v", vec3.New(1, 2, 3))   // [1, 2, 3]
//	fmt.Sprintf("%x", vec3.New(255, 0, 0)) // [ff, 0, 0]
//
// Random sampling lives in the vec3/random subpackage so that importing vec3
// never pulls in a generator.
//
// Import
//
//	"github.com/sghaida/vec3/vec3"
package vec3

package vec3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

//
// -----------------------------------------------------------------------------
// Componentwise arithmetic
// -----------------------------------------------------------------------------

// TestArithmetic_Componentwise checks each binary op against a hand-computed result.
func TestArithmetic_Componentwise(t *testing.T) {
	t.Parallel()

	a := New(8, 9, 10)
	b := New(2, 3, 4)

	tests := []struct {
		name string
		got  Vector3[int]
		want Vector3[int]
	}{
		{"add", a.Add(b), New(10, 12, 14)},
		{"sub", a.Sub(b), New(6, 6, 6)},
		{"mul", a.Mul(b), New(16, 27, 40)},
		{"div", a.Div(b), New(4, 3, 2)},
		{"rem", Rem(a, b), New(0, 0, 2)},
		{"mul scalar", a.MulScalar(2), New(16, 18, 20)},
		{"div scalar", a.DivScalar(2), New(4, 4, 5)},
		{"rem scalar", RemScalar(a, 4), New(0, 1, 2)},
		{"neg", a.Neg(), New(-8, -9, -10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

// TestAddSub_Inverse verifies a + b - b == a.
func TestAddSub_Inverse(t *testing.T) {
	t.Parallel()

	a := New(1.25, -3.5, 1e6)
	b := New(0.5, 7.0, -2.0)
	assert.Equal(t, a, a.Add(b).Sub(b))

	c := New(1.1, 2.2, 3.3)
	assert.True(t, ApproxEqual(c, c.MulScalar(2).DivScalar(2), 1e-12))
}

// TestInheritsComponentSemantics verifies overflow wraps like the component type.
func TestInheritsComponentSemantics(t *testing.T) {
	t.Parallel()

	v := New[uint8](250, 1, 0)
	assert.Equal(t, New[uint8](4, 11, 10), v.Add(Splat[uint8](10)))
	assert.Equal(t, New[uint8](6, 255, 0), New[uint8](6, 0, 0).Sub(New[uint8](0, 1, 0)))
}

// TestComplexComponents verifies complex numbers are accepted and forwarded.
func TestComplexComponents(t *testing.T) {
	t.Parallel()

	v := New[complex128](1i, 2, 0)
	assert.Equal(t, New[complex128](-1, 2i, 0), v.MulScalar(1i))
	assert.Equal(t, complex128(5), v.Dot(New[complex128](-1i, 2, 0)))
}

//
// -----------------------------------------------------------------------------
// Compound assignment
// -----------------------------------------------------------------------------

// TestAssign_MatchesBinaryOps verifies every *Assign variant equals its binary op.
func TestAssign_MatchesBinaryOps(t *testing.T) {
	t.Parallel()

	a := New(12, 7, 5)
	b := New(3, 2, 1)

	v := a
	v.AddAssign(b)
	assert.Equal(t, a.Add(b), v)

	v = a
	v.SubAssign(b)
	assert.Equal(t, a.Sub(b), v)

	v = a
	v.MulAssign(b)
	assert.Equal(t, a.Mul(b), v)

	v = a
	v.DivAssign(b)
	assert.Equal(t, a.Div(b), v)

	v = a
	v.MulScalarAssign(3)
	assert.Equal(t, a.MulScalar(3), v)

	v = a
	v.DivScalarAssign(3)
	assert.Equal(t, a.DivScalar(3), v)

	v = a
	v.NegAssign()
	assert.Equal(t, a.Neg(), v)

	v = a
	RemAssign(&v, b)
	assert.Equal(t, Rem(a, b), v)

	v = a
	RemScalarAssign(&v, 5)
	assert.Equal(t, RemScalar(a, 5), v)

	v = a
	NotAssign(&v)
	assert.Equal(t, Not(a), v)

	v = a
	ShlAssign(&v, 2)
	assert.Equal(t, Shl(a, 2), v)

	v = a
	ShrAssign(&v, 1)
	assert.Equal(t, Shr(a, 1), v)

	v = a
	AndAssign(&v, b)
	assert.Equal(t, And(a, b), v)

	v = a
	OrAssign(&v, b)
	assert.Equal(t, Or(a, b), v)

	v = a
	XorAssign(&v, b)
	assert.Equal(t, Xor(a, b), v)

	v = a
	AndNotAssign(&v, b)
	assert.Equal(t, AndNot(a, b), v)
}

//
// -----------------------------------------------------------------------------
// Bitwise
// -----------------------------------------------------------------------------

// TestBitwise_Componentwise checks bitwise ops on unsigned and signed components.
func TestBitwise_Componentwise(t *testing.T) {
	t.Parallel()

	a := New[uint8](0b1100, 0b1010, 0xff)
	b := New[uint8](0b1010, 0b0110, 0x0f)

	assert.Equal(t, New[uint8](0b1000, 0b0010, 0x0f), And(a, b))
	assert.Equal(t, New[uint8](0b1110, 0b1110, 0xff), Or(a, b))
	assert.Equal(t, New[uint8](0b0110, 0b1100, 0xf0), Xor(a, b))
	assert.Equal(t, New[uint8](0b0100, 0b1000, 0xf0), AndNot(a, b))
	assert.Equal(t, New[uint8](0xf3, 0xf5, 0x00), Not(a))

	assert.Equal(t, New[uint8](0b11000, 0b10100, 0xfe), Shl(a, 1))
	assert.Equal(t, New[uint8](0b110, 0b101, 0x7f), Shr(a, 1))

	// Signed right shift is arithmetic, inherited from the component type.
	assert.Equal(t, New(-4, 4, -1), Shr(New(-8, 8, -1), 1))
	assert.Equal(t, New(-1, 0, 0), Not(New(0, -1, -1)))
}

//
// -----------------------------------------------------------------------------
// Float remainder
// -----------------------------------------------------------------------------

// TestMod_Float verifies Mod/ModScalar follow math.Mod per component.
func TestMod_Float(t *testing.T) {
	t.Parallel()

	a := New(5.5, -5.5, 7.0)
	b := New(2.0, 2.0, 7.0)
	assert.Equal(t, New(1.5, -1.5, 0.0), Mod(a, b))
	assert.Equal(t, New[float32](1, 0.5, 0), ModScalar(New[float32](4, 3.5, 3), 1.5))

	v := a
	ModAssign(&v, b)
	assert.Equal(t, Mod(a, b), v)

	v = a
	ModScalarAssign(&v, 2)
	assert.Equal(t, ModScalar(a, 2), v)

	assert.True(t, math.IsNaN(ModScalar(a, 0).X))
}

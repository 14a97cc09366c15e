package game

import (
	"math"
	"math/big"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/assert"
)

// RoundToFloat rounds x to the nearest value representable as a float32, ties to even, keeping the
// sign of zero. It behaves like a C++ cast to float.
func RoundToFloat(x float64) float64 {
	assert.Precondition(!math.IsNaN(x), ErrorRoundingOverflow, x)
	f := float32(x)
	assert.Precondition(!math32.IsInf(f, 0) || math.IsInf(x, 0), ErrorRoundingOverflow, x)
	return float64(f)
}

// RoundVec3 applies RoundToFloat to every component of v.
func RoundVec3(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{RoundToFloat(v[0]), RoundToFloat(v[1]), RoundToFloat(v[2])}
}

// IsFloat reports whether x is exactly representable as a float32.
func IsFloat(x float64) bool {
	return float64(float32(x)) == x
}

// SimpleSpline is SimpleSpline from mathlib: 3x^2 - 2x^3.
func SimpleSpline(x float64) float64 {
	return float64(3*square(x)) - float64(2*cube(x))
}

func square(x float64) float64 {
	return x * x
}

// cube returns x^3 rounded once, matching a correctly rounded pow(x, 3).
func cube(x float64) float64 {
	sq := x * x
	lo := math.FMA(x, x, -sq)
	return math.FMA(sq, x, float64(lo*x))
}

// sinCosPrec is the working precision of SinCos. The Taylor series of an argument within one turn
// loses at most 10 bits to cancellation.
const sinCosPrec = 256

// SinCos returns sin(x) and cos(x) correctly rounded, as the C library does. math.Sin and math.Cos
// can be one ulp off, which moves the muzzle of a rocket. x must lie within one turn of zero.
func SinCos(x float64) (sin, cos float64) {
	assert.Precondition(math.Abs(x) <= 2*math.Pi, ErrorAngleOutOfRange, x)
	bx := new(big.Float).SetPrec(sinCosPrec).SetFloat64(x)
	x2 := new(big.Float).SetPrec(sinCosPrec).Mul(bx, bx)

	sin, _ = taylor(new(big.Float).SetPrec(sinCosPrec).Set(bx), x2, 1).Float64()
	cos, _ = taylor(new(big.Float).SetPrec(sinCosPrec).SetInt64(1), x2, 0).Float64()
	return sin, cos
}

// taylor sums the alternating series whose first term is term x^n/n!, each next term being the
// previous one times -x2/((n+1)(n+2)). It stops once a term no longer changes the sum at the working
// precision.
func taylor(term, x2 *big.Float, n int64) *big.Float {
	sum := new(big.Float).SetPrec(sinCosPrec)
	div := new(big.Float).SetPrec(sinCosPrec)
	for term.Sign() != 0 {
		if sum.Sign() != 0 && term.MantExp(nil) < sum.MantExp(nil)-sinCosPrec-2 {
			break
		}
		sum.Add(sum, term)
		term.Mul(term, x2)
		term.Neg(term)
		term.Quo(term, div.SetInt64((n+1)*(n+2)))
		n += 2
	}
	return sum
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	if max < num {
		return max
	}
	return num
}

// Len returns the length of v. The products are converted explicitly so that they are never fused
// into a multiply-add, which would change the last bit on some architectures.
func Len(v mgl64.Vec3) float64 {
	return math.Sqrt(float64(v[0]*v[0]) + float64(v[1]*v[1]) + float64(v[2]*v[2]))
}

// HzLen returns the horizontal length of v.
func HzLen(v mgl64.Vec3) float64 {
	return math.Sqrt(float64(v[0]*v[0]) + float64(v[1]*v[1]))
}

// Len2 returns the length of a 2D vector.
func Len2(v mgl64.Vec2) float64 {
	return math.Sqrt(float64(v[0]*v[0]) + float64(v[1]*v[1]))
}

// HzDot returns the dot product of the horizontal part of v with d.
func HzDot(v mgl64.Vec3, d mgl64.Vec2) float64 {
	return float64(v[0]*d[0]) + float64(v[1]*d[1])
}

// Scale multiplies every component of v by s. Unlike mgl64.Vec3.Mul it is written out so the
// multiplication order is explicit.
func Scale(v mgl64.Vec3, s float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Normalize returns v divided by its length. It panics if v has zero length.
func Normalize(v mgl64.Vec3, what string) mgl64.Vec3 {
	l := Len(v)
	assert.Precondition(l != 0, ErrorZeroLengthDirection, what)
	return mgl64.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

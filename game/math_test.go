package game

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundToFloatIdempotent(t *testing.T) {
	for _, x := range []float64{0, 0.1, 1.0 / 3.0, -283.7, 3500.123456789, 1e30, -1e-42, 0.03125} {
		once := RoundToFloat(x)
		require.True(t, IsFloat(once), "%v rounded to %v", x, once)
		assert.Equal(t, once, RoundToFloat(once), "rounding %v twice changed it", x)
	}
}

func TestRoundToFloatTiesToEven(t *testing.T) {
	next := float64(math32.Nextafter(1, 2))
	mid := (1 + next) / 2
	require.False(t, IsFloat(mid))
	assert.Equal(t, 1.0, RoundToFloat(mid))

	// The midpoint above next rounds up to the even neighbour.
	after := float64(math32.Nextafter(float32(next), 2))
	assert.Equal(t, after, RoundToFloat((next+after)/2))
}

func TestRoundToFloatKeepsSignOfZero(t *testing.T) {
	assert.True(t, math.Signbit(RoundToFloat(math.Copysign(0, -1))))
	assert.False(t, math.Signbit(RoundToFloat(0)))
}

func TestRoundToFloatPanics(t *testing.T) {
	assert.Panics(t, func() { RoundToFloat(math.NaN()) })
	assert.Panics(t, func() { RoundToFloat(1e39) })
	assert.NotPanics(t, func() { RoundToFloat(math.Inf(1)) })
}

func TestSimpleSpline(t *testing.T) {
	assert.Equal(t, 0.0, SimpleSpline(0))
	assert.Equal(t, 0.5, SimpleSpline(0.5))
	assert.Equal(t, 1.0, SimpleSpline(1))
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		s := SimpleSpline(x)
		assert.True(t, s >= 0 && s <= 1, "spline(%v) = %v", x, s)
	}

	// Both products are rounded before the subtraction.
	for x, want := range map[float64]float64{
		0.075: 0x1.06a7ef9db22d1p-6,
		0.15:  0x1.f1a9fbe76c8b5p-5,
		0.35:  0x1.2083126e978d4p-2,
		0.7:   0x1.916872b020c49p-1,
		0.85:  0x1.e0e5604189372p-1,
	} {
		assert.Equal(t, want, SimpleSpline(x), "spline(%v)", x)
	}
}

func TestVectorHelpers(t *testing.T) {
	v := mgl64.Vec3{3, 4, 12}
	assert.Equal(t, 13.0, Len(v))
	assert.Equal(t, 5.0, HzLen(v))
	assert.Equal(t, 5.0, Len2(mgl64.Vec2{3, 4}))
	assert.Equal(t, 3.0, HzDot(v, mgl64.Vec2{1, 0}))
	assert.Equal(t, mgl64.Vec3{6, 8, 24}, Scale(v, 2))
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, Normalize(mgl64.Vec3{0, 0, 7}, "test"))
	assert.Panics(t, func() { Normalize(mgl64.Vec3{}, "test") })
	assert.Equal(t, 2.0, ClampFloat(5, -2, 2))
	assert.Equal(t, -2.0, ClampFloat(-5, -2, 2))
}

func TestHalfGravityIsExact(t *testing.T) {
	assert.Equal(t, 6.0, SvGravity*0.5*TickDuration)
}

func TestSinCosIsCorrectlyRounded(t *testing.T) {
	for _, c := range []struct {
		deg      float64
		sin, cos float64
	}{
		{-89.0, -0x1.ffec097f5af8ap-1, 0x1.1df0b2b89dd37p-6},
		// math.Cos returns 0x1.65547c4694e13p-5 here.
		{-87.5, -0x1.ff833f9da45f7p-1, 0x1.65547c4694e12p-5},
		{-45.0, -0x1.6a09e667f3bccp-1, 0x1.6a09e667f3bcdp-1},
		{-30.0, -0x1.fffffffffffffp-2, 0x1.bb67ae8584cabp-1},
		{60.0, 0x1.bb67ae8584caap-1, 0x1.0000000000001p-1},
	} {
		sin, cos := SinCos(c.deg / 360 * (2 * math.Pi))
		assert.Equal(t, c.sin, sin, "sin %v°", c.deg)
		assert.Equal(t, c.cos, cos, "cos %v°", c.deg)
	}

	sin, cos := SinCos(0)
	assert.Zero(t, sin)
	assert.Equal(t, 1.0, cos)

	for deg := -360.0; deg <= 360.0; deg += 7.25 {
		theta := deg / 360 * (2 * math.Pi)
		sin, cos := SinCos(theta)
		assert.InDelta(t, math.Sin(theta), sin, 1e-15, "sin %v°", deg)
		assert.InDelta(t, math.Cos(theta), cos, 1e-15, "cos %v°", deg)
	}
	assert.Panics(t, func() { SinCos(7) })
}

package omath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/game"
	"github.com/stretchr/testify/assert"
)

func TestAABBVectorDistance(t *testing.T) {
	b := BoxAround(mgl64.Vec3{0, 0, 41}, [3]float64{48, 48, 82})
	assert.Equal(t, mgl64.Vec3{-24, -24, 0}, b.Min())
	assert.Equal(t, mgl64.Vec3{24, 24, 82}, b.Max())

	assert.Zero(t, AABBVectorDistance(b, mgl64.Vec3{10, -5, 30}))
	assert.Equal(t, 18.0, AABBVectorDistance(b, mgl64.Vec3{0, 0, 100}))
	assert.Equal(t, 5.0, AABBVectorDistance(b, mgl64.Vec3{27, 28, 50}))
	assert.Equal(t, 5.0, AABBVectorDistance(b, mgl64.Vec3{-27, -28, 50}))
}

func TestAABBVectorDistanceMatchesClosestPoint(t *testing.T) {
	b := BoxAround(mgl64.Vec3{0.1, -3.7, 31.03125}, [3]float64{48, 48, 62})
	points := []mgl64.Vec3{
		{101.3, -57.25, -9.96875},
		{-33.3, 0.7, 12},
		{3.1, 90.01, 150.5},
		{-24.2, -28.3, 62.03126},
	}
	for _, v := range points {
		closest := mgl64.Vec3{
			game.ClampFloat(v[0], b.Min()[0], b.Max()[0]),
			game.ClampFloat(v[1], b.Min()[1], b.Max()[1]),
			game.ClampFloat(v[2], b.Min()[2], b.Max()[2]),
		}
		assert.Equal(t, Distance(closest, v), AABBVectorDistance(b, v), "point %v", v)
	}
}

package omath

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/game"
)

// BoxAround returns a box of the given dimensions centred on center.
func BoxAround(center mgl64.Vec3, size [3]float64) cube.BBox {
	return cube.Box(
		center[0]-size[0]/2, center[1]-size[1]/2, center[2]-size[2]/2,
		center[0]+size[0]/2, center[1]+size[1]/2, center[2]+size[2]/2,
	)
}

// AABBVectorDistance calculates the distance between an AABB and a vector.
func AABBVectorDistance(a cube.BBox, v mgl64.Vec3) float64 {
	x, y, z := math.Max(a.Min().X()-v.X(), math.Max(0, v.X()-a.Max().X())),
		math.Max(a.Min().Y()-v.Y(), math.Max(0, v.Y()-a.Max().Y())),
		math.Max(a.Min().Z()-v.Z(), math.Max(0, v.Z()-a.Max().Z()))
	return game.Len(mgl64.Vec3{x, y, z})
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b mgl64.Vec3) float64 {
	return game.Len(mgl64.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]})
}

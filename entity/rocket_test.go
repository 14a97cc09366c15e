package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/simulation"
	"github.com/oomph-ac/jumpsim/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	NopRocketHandler
	created, before, after int
	explosions             []mgl64.Vec3
}

func (h *recordingHandler) HandleRocketCreation(*Rocket)   { h.created++ }
func (h *recordingHandler) HandleRocketBeforeTick(*Rocket) { h.before++ }
func (h *recordingHandler) HandleRocketAfterTick(*Rocket)  { h.after++ }
func (h *recordingHandler) HandleRocketExploded(_ *Rocket, pos mgl64.Vec3) {
	h.explosions = append(h.explosions, pos)
}

func TestRocketFlies(t *testing.T) {
	h := &recordingHandler{}
	r := NewRocket(simulation.Default(), StandardRocket, mgl64.Vec3{0, 0, 100}, mgl64.Vec3{1100, 0, -1100}, world.NewFloor(0), h)
	require.Equal(t, 1, h.created)

	exploded, _ := r.Tick()
	assert.False(t, exploded)
	assert.Equal(t, mgl64.Vec3{16.5, 0, 83.5}, r.Pos)
	assert.Equal(t, 1, h.before)
	assert.Equal(t, 1, h.after)
	assert.Empty(t, h.explosions)
}

func TestRocketExplodesBeforeFloor(t *testing.T) {
	h := &recordingHandler{}
	start := mgl64.Vec3{0, 0, 10}
	r := NewRocket(simulation.Default(), StandardRocket, start, mgl64.Vec3{0, 0, -1100}, world.NewFloor(0), h)

	exploded, pos := r.Tick()
	require.True(t, exploded)
	require.Len(t, h.explosions, 1)
	assert.Equal(t, pos, h.explosions[0])
	assert.Equal(t, 0, h.after)

	// One coordinate unit above the floor, plus the normal offset.
	assert.Equal(t, 0.0, pos[0])
	assert.Equal(t, 0.0, pos[1])
	assert.InDelta(t, 1.03125, pos[2], 1e-9)
	assert.Equal(t, start, r.Pos)
}

func TestRocketBacksOffAlongItsPath(t *testing.T) {
	start := mgl64.Vec3{0, 0, 100}
	vel := mgl64.Vec3{600, 0, -800}
	r := NewRocket(simulation.Default(), StandardRocket, start, vel, world.NewFloor(90), nil)

	exploded, pos := r.Tick()
	require.True(t, exploded)

	// The floor is reached after 0.0125s. The explosion is moved back one coordinate unit along
	// the path, then one unit up along the floor normal.
	impact := mgl64.Vec3{7.5, 0, 90}
	backed := mgl64.Vec3{pos[0], pos[1], pos[2] - 1}
	assert.InDelta(t, 0.03125, impact.Sub(backed).Len(), 1e-9)
	assert.InDelta(t, vel[0]/vel[2], (impact[0]-backed[0])/(impact[2]-backed[2]), 1e-9)
	assert.InDelta(t, 7.48125, pos[0], 1e-9)
	assert.InDelta(t, 91.025, pos[2], 1e-9)
}

func TestRocketIgnoresFloorBehindIt(t *testing.T) {
	r := NewRocket(simulation.Default(), StandardRocket, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 1100}, world.NewFloor(0), nil)
	exploded, _ := r.Tick()
	assert.False(t, exploded)
	assert.Equal(t, 26.5, r.Pos[2])
}

func TestRocketIDs(t *testing.T) {
	sim := simulation.Default()
	floor := world.NewFloor(0)
	a := NewRocket(sim, StandardRocket, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}, floor, nil)
	b := NewRocket(sim, StandardRocket, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}, floor, nil)
	assert.Equal(t, uint64(0), a.ID())
	assert.Equal(t, uint64(1), b.ID())
}

func TestRocketPreconditions(t *testing.T) {
	sim := simulation.Default()
	assert.Panics(t, func() {
		NewRocket(sim, StandardRocket, mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, nil, nil)
	})
	r := NewRocket(sim, StandardRocket, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{1100, 0, 0}, world.NewFloor(0), nil)
	assert.Panics(t, func() { r.Tick() })
}

func TestLauncherByName(t *testing.T) {
	l, err := LauncherByName("STOCK")
	require.NoError(t, err)
	assert.Equal(t, Stock, l)
	assert.Equal(t, 12.0, l.OffsetRight)
	assert.Equal(t, 8.0, l.OffsetUp(true))
	assert.Equal(t, -3.0, l.OffsetUp(false))

	_, err = LauncherByName("cow mangler")
	assert.Error(t, err)
}

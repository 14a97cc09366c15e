package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/assert"
	"github.com/oomph-ac/jumpsim/game"
	"github.com/oomph-ac/jumpsim/simulation"
	"github.com/oomph-ac/jumpsim/world"
)

// Rocket is a projectile that flies in a straight line until it reaches its floor. Collision is
// only checked against the floor plane.
type Rocket struct {
	id   uint64
	sim  *simulation.Simulation
	h    RocketHandler
	Type RocketType

	// Pos is the current position of the rocket.
	Pos mgl64.Vec3
	// Vel is the velocity of the rocket in units per second.
	Vel mgl64.Vec3
	// Floor is the plane the rocket explodes on.
	Floor *world.Floor
}

// NewRocket creates a rocket and fires HandleRocketCreation on h. A nil handler is allowed.
func NewRocket(sim *simulation.Simulation, typ RocketType, pos, vel mgl64.Vec3, floor *world.Floor, h RocketHandler) *Rocket {
	assert.IsTrue(floor != nil, game.ErrorNilFloor)
	if h == nil {
		h = NopRocketHandler{}
	}
	r := &Rocket{
		id:    sim.NextRocketID(),
		sim:   sim,
		h:     h,
		Type:  typ,
		Pos:   pos,
		Vel:   vel,
		Floor: floor,
	}
	r.h.HandleRocketCreation(r)
	return r
}

// ID returns the id of the rocket, unique within its Simulation.
func (r *Rocket) ID() uint64 {
	return r.id
}

// Tick moves the rocket forward one tick. If the rocket reaches its floor during the tick, it
// explodes instead of moving and the explosion point is returned. An exploded rocket must not be
// ticked again.
func (r *Rocket) Tick() (exploded bool, explosion mgl64.Vec3) {
	r.h.HandleRocketBeforeTick(r)

	assert.Precondition(r.Vel[2] != 0, game.ErrorRocketParallel, r.id)
	t := (r.Floor.Z() - r.Pos[2]) / r.Vel[2]
	speed := game.Len(r.Vel)

	if 0 < t && t <= game.TickDuration {
		// Register the hit one coordinate unit before the plane.
		t = math.Max(0.0, t-game.CoordResolution/speed)
		for i := 0; i < 3; i++ {
			explosion[i] = r.Pos[i] + float64(r.Vel[i]*t)
		}
		// CTFBaseRocket::Explode moves one unit out along the plane normal.
		explosion[2] += game.ExplosionNormalOffset

		r.sim.Notify(simulation.DebugModeRockets, true, "rocket %d exploded at %v (t=%v)", r.id, explosion, t)
		r.h.HandleRocketExploded(r, explosion)
		return true, explosion
	}

	for i := 0; i < 3; i++ {
		r.Pos[i] += float64(r.Vel[i] * game.TickDuration)
	}
	r.Pos = r.sim.Round(r.Pos)
	r.sim.Notify(simulation.DebugModeRockets, true, "rocket %d moved to %v", r.id, r.Pos)
	r.h.HandleRocketAfterTick(r)
	return false, mgl64.Vec3{}
}

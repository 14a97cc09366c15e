package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/game"
	"github.com/oomph-ac/jumpsim/omath"
	"github.com/oomph-ac/jumpsim/simulation"
)

// Hit describes an explosion that pushes the player.
type Hit struct {
	// Dir is the unit direction of the push.
	Dir mgl64.Vec3
	// Magnitude is the speed added along Dir. It is derived from damage but is not damage.
	Magnitude float64
	// Pos is the explosion point, already lowered by the sink distance.
	Pos mgl64.Vec3
}

// Miss describes an explosion whose radius does not reach the hull of the player.
type Miss struct {
	Pos    mgl64.Vec3
	Damage float64
	Radius float64
	// Distance is the distance from the explosion to the closest point of the hull.
	Distance float64
}

// hull returns the centre and size of the hull used for explosion checks.
func (p *Player) hull() (mgl64.Vec3, [3]float64) {
	center := p.Pos
	if p.Ducked {
		center[2] += game.HullCenterDucked
		return center, game.DuckedHull
	}
	center[2] += game.HullCenterStanding
	if p.sim.DuckedHitboxOnly() {
		return center, game.DuckedHull
	}
	return center, game.StandingHull
}

// Knockback applies the push of an explosion at pos with the given damage and radius. The explosion
// reaches the player when the closest point of its hull lies within radius.
func (p *Player) Knockback(pos mgl64.Vec3, damage, radius float64) {
	h := p.handler()
	center, size := p.hull()

	toBox := omath.AABBVectorDistance(omath.BoxAround(center, size), pos)
	if toBox > radius {
		p.sim.Notify(simulation.DebugModeKnockback, true, "explosion at %v missed (dist=%v)", pos, toBox)
		h.HandleOutsideExplosion(p, Miss{Pos: pos, Damage: damage, Radius: radius, Distance: toBox})
		return
	}

	// Damage falls off with the distance to the centre or to the feet, whichever is closer.
	d := math.Min(omath.Distance(center, pos), omath.Distance(p.Pos, pos))
	magnitude := damage * (1.0 - float64(0.5*math.Min(d/radius, 1.0)))
	if p.OnGround {
		magnitude *= game.KnockbackGroundScale
	} else {
		magnitude *= game.KnockbackAirScale
	}
	if p.Ducked {
		magnitude *= game.KnockbackDuckedScale
	}
	magnitude = math.Min(magnitude, game.KnockbackMax)

	pos[2] -= game.ExplosionSinkDistance
	hit := Hit{
		Dir:       game.Normalize(center.Sub(pos), "explosion direction"),
		Magnitude: magnitude,
		Pos:       pos,
	}

	vzBefore, hzBefore := p.Vel[2], p.HzSpeed()
	h.HandleBeforeHit(p, &hit)
	for i := 0; i < 3; i++ {
		p.Vel[i] += float64(hit.Dir[i] * hit.Magnitude)
	}
	p.sim.Notify(simulation.DebugModeKnockback, true, "hit: dir=%v magnitude=%v vel=%v", hit.Dir, hit.Magnitude, p.Vel)
	h.HandleAfterHit(p, hit)

	if p.OnGround && p.Ducked && p.Vel[2] > 0.0 && vzBefore == 0.0 && hzBefore > game.SpeedShotFactor*p.MaxSpeed {
		h.HandleSpeedShot(p, hit)
	}
	if p.OnGround && inBounceBand(p.FloorDistance()) && p.Vel[2] > 0.0 {
		if p.Ducked {
			h.HandleCrouchedBounce(p, hit)
		} else {
			h.HandleStandingBounce(p, hit)
		}
	}
}

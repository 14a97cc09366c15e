package player

import (
	"github.com/oomph-ac/jumpsim/game"
	"github.com/oomph-ac/jumpsim/simulation"
)

// setOnGround updates the ground state, firing a transition event only when the state flips.
func (p *Player) setOnGround(onGround bool) {
	if onGround == p.OnGround {
		return
	}
	h := p.handler()
	if onGround {
		h.HandleAirToGround(p)
	} else {
		h.HandleGroundToAir(p)
	}
	p.OnGround = onGround
	p.sim.Notify(simulation.DebugModeMovement, true, "onGround=%v at pos=%v vel=%v", onGround, p.Pos, p.Vel)
}

// categorizePosition runs CTFGameMovement::CategorizePosition against the floor of the player.
func (p *Player) categorizePosition() {
	p.Grip = 1.0
	if p.Vel[2] > game.VerticalLaunchSpeed {
		p.setOnGround(false)
		return
	}

	dist := p.FloorDistance()
	switch {
	case p.OnGround:
		if dist < game.LandingDistance+game.SvStepSize {
			traced := p.Pos[2] - (p.Floor.Z() + game.CoordResolution)
			if traced > 0.5*game.CoordResolution {
				h := p.handler()
				h.HandleBeforeTeleportToGround(p)
				p.Pos[2] = p.Floor.Z() + game.CoordResolution
				h.HandleAfterTeleportToGround(p)
			}
		}
		p.setOnGround(true)
	case dist < game.LandingDistance:
		p.setOnGround(true)
	default:
		p.setOnGround(false)
		if p.Vel[2] > 0.0 {
			p.Grip = 0.25
		}
	}
}

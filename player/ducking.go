package player

import (
	"math"

	"github.com/oomph-ac/jumpsim/assert"
	"github.com/oomph-ac/jumpsim/game"
	"github.com/oomph-ac/jumpsim/input"
	"github.com/oomph-ac/jumpsim/simulation"
)

// handleDucking runs CGameMovement::ReduceTimers, CTFGameMovement::DuckOverrides and
// CTFGameMovement::Duck.
func (p *Player) handleDucking() {
	p.DuckAnimation += game.TickDuration
	p.ReduckTimer += game.TickDuration

	pressed := p.input.Pressed(input.Duck)
	if p.ReduckTimer < game.ReduckTime && p.OnGround {
		pressed = false
	}
	if p.Ducked && p.Ducking {
		pressed = false
	}
	if !p.OnGround && p.AirduckCounter >= game.AirDuckLimit {
		pressed = false
	}

	justPressed := pressed && !p.PrevDuckPressed
	justReleased := !pressed && p.PrevDuckPressed
	p.PrevDuckPressed = pressed

	// CGameMovement::HandleDuckingSpeedCrop
	p.CropSpeedDucking = p.Ducked && p.OnGround

	if pressed {
		p.onDuck(justPressed)
	} else if p.Ducked || p.Ducking {
		p.onUnduck(justReleased)
	}
}

// onDuck runs CTFGameMovement::OnDuck.
func (p *Player) onDuck(justPressed bool) {
	if justPressed && !p.Ducked {
		p.DuckAnimation = 0.0
		p.Ducking = true
		p.handler().HandleDucking(p)
	}
	if !p.Ducking {
		return
	}
	if p.DuckAnimation > game.DuckingTime || p.Ducked || !p.OnGround {
		p.finishDuck()
		return
	}
	p.setDuckedEyeOffset(game.SimpleSpline(p.DuckAnimation / game.DuckingTime))
}

// finishDuck runs CGameMovement::FinishDuck.
func (p *Player) finishDuck() {
	if p.Ducked {
		return
	}
	h := p.handler()
	h.HandleBeforeDucked(p)
	p.Ducked = true
	p.Ducking = false
	p.setDuckedEyeOffset(1.0)

	// The engine moves the origin up when the hull shrinks in the air and leaves a grounded player
	// where it is.
	if !p.OnGround {
		p.Pos[2] += game.DuckJumpHeightAdjustment
	}
	p.sim.Notify(simulation.DebugModeDucking, true, "finished duck (onGround=%v, pos=%v)", p.OnGround, p.Pos)
	h.HandleAfterDucked(p)
	p.categorizePosition()
}

// onUnduck runs CTFGameMovement::OnUnDuck.
func (p *Player) onUnduck(justReleased bool) {
	if justReleased {
		p.ReduckTimer = 0.0
		if !p.OnGround {
			p.AirduckCounter++
			p.handler().HandleAirduckCounterIncrease(p)
		}
	}

	// OnUnDuck guards everything below with a condition that always holds. It is kept so that the
	// structure lines up with the engine code.
	alwaysTrue := true
	if !(alwaysTrue || !p.OnGround || p.Ducking) {
		return
	}

	if justReleased {
		if p.Ducked {
			p.DuckAnimation = 0.0
		} else if p.Ducking && !p.Ducked {
			// Play the duck animation backwards from where it stopped.
			p.DuckAnimation = math.Max(0.0, game.DuckingTime-p.DuckAnimation) * game.UnduckingTime / game.DuckingTime
		}
	}

	if !p.canUnduck() {
		if p.DuckAnimation > 0.0 {
			p.DuckAnimation = 0.0
			p.Ducked = true
			p.Ducking = false
			p.setDuckedEyeOffset(1.0)
		}
		return
	}
	if !p.Ducking && !p.Ducked {
		return
	}
	if p.DuckAnimation > game.UnduckingTime || !p.OnGround {
		p.finishUnduck()
		return
	}
	p.Ducking = true
	p.setDuckedEyeOffset(game.SimpleSpline(1.0 - p.DuckAnimation/game.UnduckingTime))
}

// finishUnduck runs CGameMovement::FinishUnDuck. Standing up in the air while still ducking is a
// ctap: the player drops 20 units.
func (p *Player) finishUnduck() {
	h := p.handler()
	if p.Ducked {
		h.HandleBeforeUnduck(p)
	}
	wasDucked := p.Ducked

	// TODO: FinishUnDuck also traces the standing hull on the ground; this model leaves a grounded
	// player in place.
	if !p.OnGround {
		if !p.Ducked {
			h.HandleBeforeCtap(p)
		}
		p.Pos[2] -= game.DuckJumpHeightAdjustment
		if !p.Ducked {
			h.HandleAfterCtap(p)
		}
	}

	p.Ducked = false
	p.Ducking = false
	p.DuckAnimation = game.DefaultDuckTimer
	p.setDuckedEyeOffset(0.0)
	p.sim.Notify(simulation.DebugModeDucking, true, "finished unduck (wasDucked=%v, pos=%v)", wasDucked, p.Pos)

	if wasDucked {
		h.HandleAfterUnduck(p)
	}
	p.categorizePosition()
}

// canUnduck returns whether there is room to stand up.
func (p *Player) canUnduck() bool {
	if p.OnGround {
		return true
	}
	return p.FloorDistance() >= game.DuckJumpHeightAdjustment
}

// setDuckedEyeOffset runs CGameMovement::SetDuckedEyeOffset. fraction 0 is standing, 1 is ducked.
func (p *Player) setDuckedEyeOffset(fraction float64) {
	assert.Precondition(0.0 <= fraction && fraction <= 1.0, game.ErrorEyeOffsetFraction, fraction)
	p.EyeOffset = float64(fraction*game.ViewHeightDucked) + float64((1.0-fraction)*game.ViewHeightStanding)
}

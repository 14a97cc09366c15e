package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/game"
	"github.com/oomph-ac/jumpsim/input"
	"github.com/oomph-ac/jumpsim/simulation"
)

// halfGravity is applied once before and once after movement in every tick.
const halfGravity = game.SvGravity * 0.5 * game.TickDuration

// move runs CGameMovement::PlayerMove with CTFGameMovement::FullWalkMove.
func (p *Player) move() {
	h := p.handler()
	h.HandleBeforeTick(p)

	if p.Vel[2] > game.VerticalLaunchSpeed {
		p.setOnGround(false)
	}
	if d := p.FloorDistance() - game.DuckJumpHeightAdjustment; inBounceBand(d) && p.Ducked && p.Vel[2] <= 0 {
		h.HandleJumpbugPossible(p)
	}

	duckedInAir := p.Ducked && !p.OnGround
	p.handleDucking()

	// CGameMovement::StartGravity and CGameMovement::CheckVelocity
	p.Vel[2] = game.ClampFloat(p.Vel[2]-halfGravity, -game.MaxVelocity, game.MaxVelocity)
	p.clampHzVelocity()

	if p.OnGround && inBounceBand(p.FloorDistance()) {
		if p.Ducked {
			h.HandleCrouchedBouncePossible(p)
		} else {
			h.HandleStandingBouncePossible(p)
		}
	}

	jumpPressed := p.input.Pressed(input.Jump)
	jumpJustPressed := jumpPressed && !p.PrevJumpPressed
	p.PrevJumpPressed = jumpPressed
	if jumpJustPressed && !p.Ducked && p.OnGround {
		p.jump(duckedInAir)
	}

	if p.OnGround {
		p.Vel[2] = 0
		h.HandleBeforeFriction(p)
		p.friction()
		h.HandleAfterFriction(p)
		h.HandleBeforeWalkMove(p)
		p.walkMove()
		h.HandleAfterWalkMove(p)
	} else {
		h.HandleBeforeAirMove(p)
		p.airMove()
		h.HandleAfterAirMove(p)
	}

	p.categorizePosition()

	// CGameMovement::FinishGravity
	p.Vel[2] = game.ClampFloat(p.Vel[2]-halfGravity, -game.MaxVelocity, game.MaxVelocity)
	if p.OnGround {
		p.Vel[2] = 0
	}
	// Air strafing can push the horizontal speed past the limit.
	p.clampHzVelocity()

	p.sim.Notify(simulation.DebugModeMovement, true, "end of move: pos=%v vel=%v onGround=%v", p.Pos, p.Vel, p.OnGround)
	h.HandleAfterTick(p)
}

func (p *Player) clampHzVelocity() {
	p.Vel[0] = game.ClampFloat(p.Vel[0], -game.MaxVelocity, game.MaxVelocity)
	p.Vel[1] = game.ClampFloat(p.Vel[1], -game.MaxVelocity, game.MaxVelocity)
}

// jump runs CTFGameMovement::CheckJumpButton for a grounded, standing player.
func (p *Player) jump(duckedInAir bool) {
	h := p.handler()
	h.HandleBeforeJump(p)

	// CTFGameMovement::PreventBunnyJumping
	if speed := game.Len(p.Vel); speed >= game.BunnyJumpMaxSpeedFactor*p.MaxSpeed {
		h.HandleBeforeBunnyhop(p)
		scale := game.BunnyJumpMaxSpeedFactor * p.MaxSpeed / speed
		p.Vel = game.Scale(p.Vel, scale)
		h.HandleAfterBunnyhop(p)
	}

	p.setOnGround(false)

	// A ducking player loses its vertical speed entirely.
	if p.Ducked || p.Ducking {
		p.Vel[2] = game.ClampFloat(game.JumpSpeed-halfGravity, -game.MaxVelocity, game.MaxVelocity)
	} else {
		p.Vel[2] = game.ClampFloat(p.Vel[2]+game.JumpSpeed-halfGravity, -game.MaxVelocity, game.MaxVelocity)
	}
	p.sim.Notify(simulation.DebugModeMovement, true, "jump applied (ducking=%v): %v", p.Ducking, p.Vel)
	h.HandleAfterJump(p)

	if duckedInAir {
		h.HandleJumpbugDetected(p)
	}
	if inBounceBand(p.FloorDistance()) {
		h.HandleBhopDetected(p)
	}
}

// wish returns the wished horizontal speed and direction from the keys, following
// CInput::ComputeForwardMove, CInput::ComputeSideMove and CInput::ComputeUpwardMove.
func (p *Player) wish() (float64, mgl64.Vec2) {
	in := p.input
	forward := float64(game.ClForwardSpeed*in.Value(input.Forward)) - float64(game.ClBackSpeed*in.Value(input.Backward))
	side := float64(game.ClSideSpeed*in.Value(input.MoveRight)) - float64(game.ClSideSpeed*in.Value(input.MoveLeft))
	up := float64(game.ClUpSpeed*in.Value(input.MoveUp)) - float64(game.ClUpSpeed*in.Value(input.MoveDown))

	// The upward move only counts toward the magnitude limit.
	total := game.Len(mgl64.Vec3{forward, side, up})
	if total > p.MaxSpeed {
		scale := p.MaxSpeed / total
		forward *= scale
		side *= scale
	}
	// CGameMovement::HandleDuckingSpeedCrop
	if p.CropSpeedDucking {
		forward *= game.DuckSpeedCrop
		side *= game.DuckSpeedCrop
	}

	var wishVel mgl64.Vec2
	for i := 0; i < 2; i++ {
		wishVel[i] += float64(p.Forward2D[i]*forward) + float64(p.Right2D[i]*side)
	}
	wishSpeed := game.Len2(wishVel)
	var wishDir mgl64.Vec2
	if wishSpeed != 0 {
		wishDir = mgl64.Vec2{wishVel[0] / wishSpeed, wishVel[1] / wishSpeed}
	}
	return wishSpeed, wishDir
}

// friction runs CGameMovement::Friction.
func (p *Player) friction() {
	speed := game.Len(p.Vel)
	if speed < 0.1 {
		return
	}
	drop := float64(game.SvFriction * p.Grip * game.TickDuration * math.Max(speed, game.SvStopSpeed))
	newSpeed := math.Max(0.0, speed-drop)
	for i := 0; i < 3; i++ {
		p.Vel[i] = p.Vel[i] * newSpeed / speed
	}
}

// accelerate runs CGameMovement::Accelerate on the horizontal velocity. limit is the speed the
// player may reach along wishDir and wishSpeed scales the acceleration.
func (p *Player) accelerate(wishDir mgl64.Vec2, limit, wishSpeed, accel float64) {
	curSpeed := game.HzDot(p.Vel, wishDir)
	if limit <= curSpeed {
		return
	}
	diff := math.Min(limit-curSpeed, float64(accel*wishSpeed*game.TickDuration*p.Grip))
	p.Vel[0] += float64(diff * wishDir[0])
	p.Vel[1] += float64(diff * wishDir[1])
}

// walkMove runs CTFGameMovement::WalkMove.
func (p *Player) walkMove() {
	wishSpeed, wishDir := p.wish()
	speed := game.Len(p.Vel)

	accel := game.SvAccelerate
	if 0 < wishSpeed && wishSpeed < game.WishSpeedThreshold {
		accel = math.Max(speed, game.SvStopSpeed)*game.SvFriction/wishSpeed + 1.0
	}
	p.accelerate(wishDir, wishSpeed, wishSpeed, accel)

	if newSpeed := game.Len(p.Vel); newSpeed > p.MaxSpeed {
		p.Vel = game.Scale(p.Vel, p.MaxSpeed/newSpeed)
	}

	// Walking backwards is limited to 90% of walking speed.
	if speed = game.Len(p.Vel); speed > game.BackSpeedClampMin {
		dot := game.HzDot(p.Vel, p.Forward2D)
		if dot < 0 {
			newDot := math.Max(dot, -p.MaxSpeed*game.BackSpeedClampFactor)
			for i := 0; i < 2; i++ {
				p.Vel[i] += float64(p.Forward2D[i] * (newDot - dot))
			}
		}
	}

	if speed = game.Len(p.Vel); speed < 1.0 {
		p.Vel = mgl64.Vec3{}
		return
	}

	p.Vel = p.sim.Round(p.Vel)
	p.integrate()
	p.Pos = p.sim.Round(p.Pos)
}

// airMove runs CTFGameMovement::AirMove with CGameMovement::AirAccelerate.
func (p *Player) airMove() {
	if p.Grip != 1.0 {
		p.handler().HandleDeadstrafe(p)
	}

	wishSpeed, wishDir := p.wish()
	// The air speed cap is effectively always the smaller one.
	p.accelerate(wishDir, math.Min(game.AirSpeedCap, wishSpeed), wishSpeed, game.SvAirAccelerate)

	p.Vel = p.sim.Round(p.Vel)

	// CGameMovement::TryPlayerMove
	p.integrate()
	if p.Pos[2] < p.Floor.Z() {
		p.Pos[2] = p.Floor.Z() + game.CoordResolution
	}
	p.Pos = p.sim.Round(p.Pos)
}

func (p *Player) integrate() {
	for i := 0; i < 3; i++ {
		p.Pos[i] += float64(p.Vel[i] * game.TickDuration)
	}
}

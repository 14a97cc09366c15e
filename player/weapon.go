package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/entity"
	"github.com/oomph-ac/jumpsim/game"
	"github.com/oomph-ac/jumpsim/input"
	"github.com/oomph-ac/jumpsim/simulation"
)

// Weapon is the rocket launcher of a player and the rockets it has in flight.
type Weapon struct {
	Launcher entity.Launcher
	// Rockets are the rockets in flight, oldest first.
	Rockets []*entity.Rocket
	// FireCooldown is the time left until the next rocket may be fired.
	FireCooldown float64
	FireRate     float64
	DeploySpeed  float64

	// Explosions are the rockets that exploded during the last tick, in the order they exploded.
	Explosions []Explosion
}

// Explosion is a rocket explosion reported by a tick.
type Explosion struct {
	RocketID uint64
	Pos      mgl64.Vec3
}

// NewWeapon returns a ready to fire weapon using the given launcher.
func NewWeapon(l entity.Launcher) *Weapon {
	return &Weapon{
		Launcher:    l,
		FireRate:    game.SoldierFireRate,
		DeploySpeed: game.SoldierDeploySpeed,
	}
}

// tickWeapon moves every rocket, applies the knockback of those that explode, then handles the
// weapon switch and firing. Rockets fired this tick are not moved until the next tick.
func (p *Player) tickWeapon() {
	h := p.handler()
	h.HandleSoldierBeforeTick(p)

	w := p.Weapon
	w.Explosions = nil
	alive := make([]*entity.Rocket, 0, len(w.Rockets))
	for _, r := range w.Rockets {
		exploded, pos := r.Tick()
		if !exploded {
			alive = append(alive, r)
			continue
		}
		w.Explosions = append(w.Explosions, Explosion{RocketID: r.ID(), Pos: pos})
		p.Knockback(pos, r.Type.Damage, r.Type.Radius)
	}
	w.Rockets = alive

	// CTFWeaponBase::Deploy
	w.FireCooldown -= game.TickDuration
	if p.input.Pressed(input.Shotgun) {
		h.HandleBeforeWeaponSwitch(p)
		w.FireCooldown = math.Max(w.DeploySpeed, w.FireCooldown)
		h.HandleAfterWeaponSwitch(p)
	}

	// CTFWeaponBaseGun::PrimaryAttack
	if p.input.Pressed(input.Attack) && w.FireCooldown <= 0 {
		w.FireCooldown = w.FireRate
		w.Rockets = append(w.Rockets, p.shoot())
	}

	h.HandleSoldierAfterTick(p)
}

// shoot fires a rocket from the muzzle toward the point the player looks at on its floor.
func (p *Player) shoot() *entity.Rocket {
	h := p.handler()
	h.HandleBeforeShot(p)

	floor := p.Floor
	l := p.Weapon.Launcher
	theta := p.Angle / 360 * (2 * math.Pi)
	sin, cos := game.SinCos(theta)

	forward := mgl64.Vec3{p.Forward2D[0] * cos, p.Forward2D[1] * cos, sin}
	right := mgl64.Vec3{p.Right2D[0], p.Right2D[1], 0}
	up := mgl64.Vec3{-p.Forward2D[0] * sin, -p.Forward2D[1] * sin, cos}
	eye := p.EyePos()

	dist := game.MaxAimDistance
	if theta != 0.0 {
		dist = (floor.Z() - eye[2]) / sin
	}
	if dist < game.MinAimDistance || dist > game.MaxAimDistance {
		dist = game.MaxAimDistance
	}

	var aimAt mgl64.Vec3
	for i := 0; i < 3; i++ {
		aimAt[i] = eye[i] + float64(forward[i]*dist)
	}
	h.HandleAimingRocket(p, aimAt)

	upOffset := l.OffsetUp(p.Ducked)
	muzzle := eye
	for i := 0; i < 3; i++ {
		muzzle[i] += float64(forward[i]*l.OffsetForward) + float64(right[i]*l.OffsetRight) + float64(up[i]*upOffset)
	}

	vel := aimAt.Sub(muzzle)
	vel = game.Scale(vel, l.Rocket.Speed/game.Len(vel))
	p.sim.Notify(simulation.DebugModeRockets, true, "shot from %v toward %v (vel=%v)", muzzle, aimAt, vel)
	h.HandleAfterShot(p)

	return entity.NewRocket(p.sim, l.Rocket, muzzle, vel, floor, h)
}

package player

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/assert"
	"github.com/oomph-ac/jumpsim/entity"
	"github.com/oomph-ac/jumpsim/game"
	"github.com/oomph-ac/jumpsim/input"
	"github.com/oomph-ac/jumpsim/simulation"
	"github.com/oomph-ac/jumpsim/world"
)

// Player is a character moving over a single floor. It reproduces TF2 ground and air movement,
// ducking, jumping and, when it carries a Weapon, rocket firing and explosion knockback.
//
// All fields are exported so handlers can inspect and change them mid-tick.
type Player struct {
	sim   *simulation.Simulation
	input *input.State
	h     Handler

	// Pos is the position of the feet of the player.
	Pos mgl64.Vec3
	// Vel is the velocity in units per second.
	Vel mgl64.Vec3
	// Angle is the pitch in degrees. Negative values look down. Yaw is always along Forward2D.
	Angle float64

	Ducked   bool
	Ducking  bool
	OnGround bool

	// Floor is the plane the player stands on or falls towards.
	Floor *world.Floor

	Forward2D mgl64.Vec2
	Right2D   mgl64.Vec2
	// Grip multiplies friction and acceleration. It drops to 0.25 when the player moves up in the
	// air away from the floor.
	Grip float64

	// CropSpeedDucking is set while the player is ducked on the ground.
	CropSpeedDucking bool
	DuckAnimation    float64
	ReduckTimer      float64
	PrevDuckPressed  bool
	AirduckCounter   int
	PrevJumpPressed  bool

	// EyeOffset is the height of the eyes above Pos.
	EyeOffset float64
	// MaxSpeed is the walking speed of the class.
	MaxSpeed float64

	// Weapon is the rocket launcher of the player, or nil for a player that only moves.
	Weapon *Weapon
}

// Option configures a Player during New. Any func(*Player) is an Option, so scenarios can preset
// any field, such as the duck timers.
type Option func(p *Player)

// WithPos sets the starting position.
func WithPos(pos mgl64.Vec3) Option {
	return func(p *Player) { p.Pos = pos }
}

// WithVel sets the starting velocity.
func WithVel(vel mgl64.Vec3) Option {
	return func(p *Player) { p.Vel = vel }
}

// WithAngle sets the starting pitch in degrees.
func WithAngle(angle float64) Option {
	return func(p *Player) { p.Angle = angle }
}

// WithDucked sets whether the player starts ducked.
func WithDucked(ducked bool) Option {
	return func(p *Player) { p.Ducked = ducked }
}

// WithDucking sets whether the player starts in the duck animation.
func WithDucking(ducking bool) Option {
	return func(p *Player) { p.Ducking = ducking }
}

// WithOnGround sets whether the player starts on the ground.
func WithOnGround(onGround bool) Option {
	return func(p *Player) { p.OnGround = onGround }
}

// WithFloor sets the floor. Without it, a floor is created at the starting height.
func WithFloor(f *world.Floor) Option {
	return func(p *Player) { p.Floor = f }
}

// WithHandler attaches h before any creation event fires.
func WithHandler(h Handler) Option {
	return func(p *Player) { p.h = h }
}

// WithWeapon gives the player a rocket launcher.
func WithWeapon(l entity.Launcher) Option {
	return func(p *Player) { p.Weapon = NewWeapon(l) }
}

// New creates a player reading its keys from in. By default the player stands one coordinate unit
// above the origin on a floor at that height, looks straight down and is not on the ground.
func New(sim *simulation.Simulation, in *input.State, opts ...Option) *Player {
	p := &Player{
		sim:   sim,
		input: in,

		Pos:   mgl64.Vec3{0, 0, game.CoordResolution},
		Angle: -89.0,

		Forward2D: mgl64.Vec2{1, 0},
		Right2D:   mgl64.Vec2{0, -1},
		Grip:      1.0,

		DuckAnimation: game.DefaultDuckTimer,
		ReduckTimer:   game.DefaultDuckTimer,
		MaxSpeed:      game.SoldierMaxSpeed,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.Floor == nil {
		p.Floor = world.NewFloor(p.Pos[2])
	}
	if p.Ducked {
		p.EyeOffset = game.ViewHeightDucked
	} else {
		p.EyeOffset = game.ViewHeightStanding
	}

	h := p.handler()
	h.HandlePlayerCreated(p)
	if p.Weapon != nil {
		h.HandleSoldierCreated(p)
	}
	return p
}

// Handle sets the handler of the player. Rockets already in flight keep their old handler.
func (p *Player) Handle(h Handler) {
	p.h = h
}

// handler returns the handler of the player.
func (p *Player) handler() Handler {
	if p.h == nil {
		return NopHandler{}
	}
	return p.h
}

// Simulation returns the simulation the player belongs to.
func (p *Player) Simulation() *simulation.Simulation {
	return p.sim
}

// Input returns the key state the player reads.
func (p *Player) Input() *input.State {
	return p.input
}

// EyePos returns the position of the eyes.
func (p *Player) EyePos() mgl64.Vec3 {
	eye := p.Pos
	eye[2] += p.EyeOffset
	return eye
}

// HzSpeed returns the horizontal speed.
func (p *Player) HzSpeed() float64 {
	return game.HzLen(p.Vel)
}

// FloorDistance returns the height of the feet above the floor.
func (p *Player) FloorDistance() float64 {
	return p.Pos[2] - p.Floor.Z()
}

// Tick simulates one tick: movement first, then the weapon.
func (p *Player) Tick() {
	assert.IsTrue(p.Floor != nil, game.ErrorNilFloor)
	p.move()
	if p.Weapon != nil {
		p.tickWeapon()
	}
}

// inBounceBand returns whether a height above the floor lies in (1, 2].
func inBounceBand(d float64) bool {
	return game.GroundBandMin < d && d <= game.GroundBandMax
}

package simulation

import (
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/game"
	"github.com/sirupsen/logrus"
)

// Options configure a Simulation.
type Options struct {
	// FloatMode rounds every position and velocity mutation to single precision, reproducing the
	// engine's float storage. With it off, full double precision is kept.
	FloatMode bool
	// DuckedHitboxOnly uses the ducked hull for explosion checks even while standing.
	DuckedHitboxOnly bool
	// Log receives debug traces. A nil logger discards everything.
	Log *logrus.Logger
	// Debug lists the debug modes enabled from the start.
	Debug []DebugMode
}

// Simulation holds the state shared by every entity of a single run: precision mode, the rocket id
// allocator and logging. Independent runs use independent Simulations.
type Simulation struct {
	opts  Options
	log   *logrus.Logger
	debug uint32

	nextRocketID uint64
}

// New creates a Simulation from the given options.
func New(opts Options) *Simulation {
	s := &Simulation{opts: opts, log: opts.Log}
	if s.log == nil {
		s.log = logrus.New()
		s.log.SetOutput(io.Discard)
	}
	for _, m := range opts.Debug {
		s.debug |= 1 << m
	}
	return s
}

// Default returns a Simulation with float-accurate mode enabled and logging discarded.
func Default() *Simulation {
	return New(Options{FloatMode: true})
}

// FloatMode returns whether float-accurate mode is enabled.
func (s *Simulation) FloatMode() bool {
	return s.opts.FloatMode
}

// DuckedHitboxOnly returns whether explosions always test against the ducked hull.
func (s *Simulation) DuckedHitboxOnly() bool {
	return s.opts.DuckedHitboxOnly
}

// Log returns the logger of the simulation.
func (s *Simulation) Log() *logrus.Logger {
	return s.log
}

// Round rounds v to single precision if float-accurate mode is on.
func (s *Simulation) Round(v mgl64.Vec3) mgl64.Vec3 {
	if !s.opts.FloatMode {
		return v
	}
	return game.RoundVec3(v)
}

// NextRocketID allocates a new rocket id. Ids start at 0 and are never reused within a Simulation.
func (s *Simulation) NextRocketID() uint64 {
	id := s.nextRocketID
	s.nextRocketID++
	return id
}

package session

import (
	"github.com/oomph-ac/jumpsim/input"
	"github.com/oomph-ac/jumpsim/player"
	"github.com/oomph-ac/jumpsim/simulation"
)

// Session drives a single player through a run, one tick at a time, and records the trajectories of
// the player and its rockets.
type Session struct {
	sim *simulation.Simulation
	in  *input.State
	p   *player.Player

	tick int
	rec  *Recording
}

// New creates a session with a fresh input state and a player built from opts.
func New(sim *simulation.Simulation, opts ...player.Option) *Session {
	in := input.NewState()
	p := player.New(sim, in, opts...)
	return &Session{
		sim: sim,
		in:  in,
		p:   p,
		rec: newRecording(p.Pos),
	}
}

// Player returns the simulated player.
func (s *Session) Player() *player.Player {
	return s.p
}

// Input returns the key state read by the player. Changes apply from the next Step.
func (s *Session) Input() *input.State {
	return s.in
}

// Simulation returns the simulation the session runs in.
func (s *Session) Simulation() *simulation.Simulation {
	return s.sim
}

// Tick returns the amount of ticks simulated so far.
func (s *Session) Tick() int {
	return s.tick
}

// Step simulates one tick and records its result.
func (s *Session) Step() {
	s.p.Tick()
	s.rec.record(s.tick, s.p)
	s.tick++
}

// Run simulates n ticks. If before is not nil, it is called with the index of each tick right
// before that tick runs, so it can press keys or change the player.
func (s *Session) Run(n int, before func(tick int)) {
	for i := 0; i < n; i++ {
		if before != nil {
			before(s.tick)
		}
		s.Step()
	}
}

// Recording returns the trajectories recorded so far.
func (s *Session) Recording() *Recording {
	return s.rec
}

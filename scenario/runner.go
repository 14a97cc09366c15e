package scenario

import (
	"github.com/oomph-ac/jumpsim/player"
	"github.com/oomph-ac/jumpsim/session"
	"github.com/oomph-ac/jumpsim/simulation"
)

// Run plays sc in a new session of sim. Events are logged through a Reporter using the logger of sim.
func Run(sim *simulation.Simulation, sc *Scenario) (*session.Session, *Reporter, error) {
	opts, err := sc.Player.Options()
	if err != nil {
		return nil, nil, err
	}
	rep := NewReporter(sim.Log().WithField("scenario", sc.Name))
	s := session.New(sim, append(opts, player.WithHandler(rep))...)

	next := 0
	s.Run(sc.Ticks, func(tick int) {
		for ; next < len(sc.Steps) && sc.Steps[next].Tick == tick; next++ {
			sc.Steps[next].apply(s.Input(), s.Player())
		}
	})
	rep.Summary(s)
	return s, rep, nil
}

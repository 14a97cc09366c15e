package simulation

import (
	"strings"

	"github.com/oomph-ac/jumpsim/oerror"
)

// DebugMode selects a family of trace messages.
type DebugMode uint8

const (
	DebugModeMovement DebugMode = iota
	DebugModeDucking
	DebugModeRockets
	DebugModeKnockback
	debugModeCount
)

var debugModeNames = [debugModeCount]string{"movement", "ducking", "rockets", "knockback"}

func (m DebugMode) String() string {
	if m < debugModeCount {
		return debugModeNames[m]
	}
	return "unknown"
}

// ParseDebugMode looks up a debug mode by name.
func ParseDebugMode(name string) (DebugMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range debugModeNames {
		if n == name {
			return DebugMode(i), nil
		}
	}
	return 0, oerror.New("unknown debug mode %q", name)
}

// Enabled returns whether the given debug mode is on.
func (s *Simulation) Enabled(mode DebugMode) bool {
	return s.debug&(1<<mode) != 0
}

// Toggle flips the given debug mode.
func (s *Simulation) Toggle(mode DebugMode) {
	s.debug ^= 1 << mode
}

// Notify logs a debug message for mode when the mode is enabled and cond is true.
func (s *Simulation) Notify(mode DebugMode, cond bool, format string, args ...any) {
	if !cond || !s.Enabled(mode) {
		return
	}
	s.log.WithField("mode", mode.String()).Debugf(format, args...)
}

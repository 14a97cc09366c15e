package entity

import (
	"strings"

	"github.com/oomph-ac/jumpsim/oerror"
)

// RocketType holds the per-type constants of a rocket.
type RocketType struct {
	Name   string
	Speed  float64
	Damage float64
	Radius float64
}

// StandardRocket is fired by every supported launcher.
var StandardRocket = RocketType{Name: "standard", Speed: 1100.0, Damage: 90.0, Radius: 121.0}

// Launcher describes where rockets leave the weapon relative to the eye and which rocket is fired.
// Charge shots are not supported.
type Launcher struct {
	Name string

	OffsetForward    float64
	OffsetRight      float64
	OffsetUpStanding float64
	OffsetUpDucked   float64

	Rocket RocketType
}

var (
	// Original fires from the centre of the view.
	Original = newLauncher("original", 0.0)
	// Stock is the default rocket launcher.
	Stock = newLauncher("stock", 12.0)
	// Mangler is the Cow Mangler 5000, without charge shots.
	Mangler = newLauncher("mangler", 8.0)
)

var launchers = []Launcher{Original, Stock, Mangler}

func newLauncher(name string, right float64) Launcher {
	return Launcher{
		Name:             name,
		OffsetForward:    23.5,
		OffsetRight:      right,
		OffsetUpStanding: -3.0,
		OffsetUpDucked:   8.0,
		Rocket:           StandardRocket,
	}
}

// OffsetUp returns the vertical muzzle offset for the given stance.
func (l Launcher) OffsetUp(ducked bool) float64 {
	if ducked {
		return l.OffsetUpDucked
	}
	return l.OffsetUpStanding
}

// LauncherByName returns the launcher preset with the given name, ignoring case.
func LauncherByName(name string) (Launcher, error) {
	for _, l := range launchers {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return Launcher{}, oerror.New("unknown launcher %q", name)
}

package input

import (
	"github.com/oomph-ac/jumpsim/assert"
	"github.com/oomph-ac/jumpsim/game"
	"github.com/oomph-ac/jumpsim/oerror"
)

// Key is one of the recognised control axes.
type Key uint8

const (
	Forward Key = iota
	Backward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Jump
	Duck
	Attack
	// Shotgun pretends to switch weapons, delaying the next shot by the deploy time.
	Shotgun
	keyCount
)

var keyNames = [keyCount]string{
	"+forward", "+backward",
	"+move_left", "+move_right",
	"+moveup", "+movedown",
	"+jump", "+duck",
	"+attack", "shotgun",
}

// Keys returns every recognised key.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// String returns the console name of the key, such as "+forward".
func (k Key) String() string {
	if k.Valid() {
		return keyNames[k]
	}
	return "invalid"
}

// Valid returns whether k is a recognised key.
func (k Key) Valid() bool {
	return k < keyCount
}

// ParseKey returns the key with the given console name.
func ParseKey(name string) (Key, error) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), nil
		}
	}
	return 0, oerror.New(game.ErrorInvalidKey, name)
}

// State holds the intensity of every key for the tick being simulated. An intensity is usually one
// of 0 (released), 0.25 (tick tapped), 0.5 (just pressed) or 1 (held), but any value in [0, 1] is
// accepted. The intensity only matters for the movement keys.
type State struct {
	mem [keyCount]float64
}

// NewState returns a State with every key released.
func NewState() *State {
	return &State{}
}

// Press sets the key to the given intensity.
func (s *State) Press(key Key, value float64) {
	assert.IsTrue(key.Valid(), game.ErrorInvalidKey, key.String())
	assert.IsTrue(value >= 0 && value <= 1, game.ErrorInvalidIntensity, value, key.String())
	s.mem[key] = value
}

// PressKeys holds all the given keys.
func (s *State) PressKeys(keys ...Key) {
	for _, k := range keys {
		s.Press(k, 1)
	}
}

// Release sets the key to zero.
func (s *State) Release(key Key) {
	s.Press(key, 0)
}

// ReleaseKeys releases all the given keys.
func (s *State) ReleaseKeys(keys ...Key) {
	for _, k := range keys {
		s.Release(k)
	}
}

// Value returns the intensity of the key.
func (s *State) Value(key Key) float64 {
	assert.IsTrue(key.Valid(), game.ErrorInvalidKey, key.String())
	return s.mem[key]
}

// Pressed returns whether the key has a non-zero intensity.
func (s *State) Pressed(key Key) bool {
	return s.Value(key) > 0
}

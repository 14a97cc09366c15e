package world

import "fmt"

// Floor is an infinitely large horizontal plane at a fixed height. A Floor never changes after it
// is created, so one Floor may be shared by a player and every rocket it fires. Floors are compared
// by identity: two distinct floors at the same height are different floors.
type Floor struct {
	z float64
}

// NewFloor returns a new floor at height z.
func NewFloor(z float64) *Floor {
	return &Floor{z: z}
}

// Z returns the height of the floor.
func (f *Floor) Z() float64 {
	return f.z
}

// String ...
func (f *Floor) String() string {
	return fmt.Sprintf("Floor(z=%v)", f.z)
}

package entity

import "github.com/go-gl/mathgl/mgl64"

// RocketHandler receives rocket events. Handlers run synchronously at the point of the event and may
// change the rocket, for example to swap its floor; the change applies to the rest of the tick.
type RocketHandler interface {
	// HandleRocketCreation is called once the rocket is created and initialised.
	HandleRocketCreation(r *Rocket)
	// HandleRocketBeforeTick is called before the rocket is moved.
	HandleRocketBeforeTick(r *Rocket)
	// HandleRocketExploded is called when the rocket reaches its floor during the tick.
	HandleRocketExploded(r *Rocket, pos mgl64.Vec3)
	// HandleRocketAfterTick is called after a tick in which the rocket did not explode.
	HandleRocketAfterTick(r *Rocket)
}

// NopRocketHandler implements RocketHandler without doing anything. Embed it to implement only
// some of the methods.
type NopRocketHandler struct{}

var _ RocketHandler = NopRocketHandler{}

func (NopRocketHandler) HandleRocketCreation(*Rocket)             {}
func (NopRocketHandler) HandleRocketBeforeTick(*Rocket)           {}
func (NopRocketHandler) HandleRocketExploded(*Rocket, mgl64.Vec3) {}
func (NopRocketHandler) HandleRocketAfterTick(*Rocket)            {}

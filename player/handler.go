package player

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/entity"
)

// Handler receives every event of a player and of the rockets it fires. Exactly one Handler is
// attached to a player; its rockets inherit it.
//
// Handlers are a scripting seam, not just observers: every method runs synchronously at the exact
// point of the event and may read or change the player (swap its floor, nudge its velocity, change
// its look angle), and the change applies to the rest of the tick. A panicking handler aborts the
// run.
type Handler interface {
	entity.RocketHandler

	// HandlePlayerCreated is called once the player is constructed. HandleSoldierCreated follows if
	// the player carries a weapon.
	HandlePlayerCreated(p *Player)
	// HandleAirToGround is called when the player lands.
	HandleAirToGround(p *Player)
	// HandleGroundToAir is called when the player leaves the ground.
	HandleGroundToAir(p *Player)
	// HandleBeforeTeleportToGround is called before the player is snapped down to one coordinate
	// unit above the floor.
	HandleBeforeTeleportToGround(p *Player)
	// HandleAfterTeleportToGround is called after the snap.
	HandleAfterTeleportToGround(p *Player)
	// HandleDeadstrafe is called when air movement runs with reduced grip.
	HandleDeadstrafe(p *Player)
	// HandleDucking is called when the duck animation starts.
	HandleDucking(p *Player)
	// HandleBeforeDucked is called right before the player becomes fully ducked.
	HandleBeforeDucked(p *Player)
	// HandleAfterDucked is called right after the player became fully ducked.
	HandleAfterDucked(p *Player)
	// HandleAirduckCounterIncrease is called when the duck key is released in the air.
	HandleAirduckCounterIncrease(p *Player)
	// HandleBeforeUnduck is called before a fully ducked player stands up.
	HandleBeforeUnduck(p *Player)
	// HandleAfterUnduck is called after a fully ducked player stood up.
	HandleAfterUnduck(p *Player)
	// HandleBeforeCtap is called before a player that is still ducking is moved down 20 units in
	// the air.
	HandleBeforeCtap(p *Player)
	// HandleAfterCtap is called after the ctap.
	HandleAfterCtap(p *Player)
	// HandleBeforeTick is called at the very start of a tick.
	HandleBeforeTick(p *Player)
	// HandleAfterTick is called at the end of the movement part of a tick, before the weapon update.
	HandleAfterTick(p *Player)
	// HandleBeforeJump is called before the jump is applied.
	HandleBeforeJump(p *Player)
	// HandleAfterJump is called after the jump speed and the half gravity step are applied.
	HandleAfterJump(p *Player)
	// HandleBeforeBunnyhop is called before the jump slows the player down to 1.2 times walking
	// speed. This can make the player jump higher, since the half gravity step counts toward the
	// speed being capped.
	HandleBeforeBunnyhop(p *Player)
	// HandleAfterBunnyhop is called after the speed cap.
	HandleAfterBunnyhop(p *Player)
	// HandleBeforeFriction and HandleAfterFriction surround ground friction.
	HandleBeforeFriction(p *Player)
	HandleAfterFriction(p *Player)
	// HandleBeforeWalkMove and HandleAfterWalkMove surround ground movement.
	HandleBeforeWalkMove(p *Player)
	HandleAfterWalkMove(p *Player)
	// HandleBeforeAirMove and HandleAfterAirMove surround air movement.
	HandleBeforeAirMove(p *Player)
	HandleAfterAirMove(p *Player)
	// HandleJumpbugPossible is called when a ducked, falling player is in jump bug range.
	HandleJumpbugPossible(p *Player)
	// HandleCrouchedBouncePossible is called when a grounded, ducked player is 1 to 2 units above
	// the floor.
	HandleCrouchedBouncePossible(p *Player)
	// HandleStandingBouncePossible is the standing variant of HandleCrouchedBouncePossible.
	HandleStandingBouncePossible(p *Player)
	// HandleJumpbugDetected is called when a player that started the tick ducked in the air jumps.
	HandleJumpbugDetected(p *Player)
	// HandleBhopDetected is called when a jump happens 1 to 2 units above the floor.
	HandleBhopDetected(p *Player)

	// HandleSoldierCreated is called after HandlePlayerCreated for players with a weapon.
	HandleSoldierCreated(p *Player)
	// HandleSoldierBeforeTick and HandleSoldierAfterTick surround the weapon update, which runs
	// after movement.
	HandleSoldierBeforeTick(p *Player)
	HandleSoldierAfterTick(p *Player)
	// HandleBeforeShot is called before a rocket is fired. It is the place to change the look
	// angle, launcher or floor of the shot.
	HandleBeforeShot(p *Player)
	// HandleAfterShot is called after the rocket velocity is computed, before the rocket exists.
	HandleAfterShot(p *Player)
	// HandleAimingRocket is called with the point the rocket is aimed at.
	HandleAimingRocket(p *Player, aimAt mgl64.Vec3)
	// HandleBeforeWeaponSwitch and HandleAfterWeaponSwitch surround the pretend weapon switch.
	// No weapon is switched, but the next shot is delayed by the deploy time.
	HandleBeforeWeaponSwitch(p *Player)
	HandleAfterWeaponSwitch(p *Player)
	// HandleOutsideExplosion is called when an explosion does not reach the player.
	HandleOutsideExplosion(p *Player, miss Miss)
	// HandleBeforeHit is called before the explosion push is added to the velocity. Changes to the
	// direction or magnitude of hit change the push.
	HandleBeforeHit(p *Player, hit *Hit)
	// HandleAfterHit is called after the explosion push is added.
	HandleAfterHit(p *Player, hit Hit)
	// HandleSpeedShot is called when a ducked, grounded player moving fast is launched upward.
	HandleSpeedShot(p *Player, hit Hit)
	// HandleCrouchedBounce is called when a ducked, grounded player 1 to 2 units above the floor is
	// launched upward.
	HandleCrouchedBounce(p *Player, hit Hit)
	// HandleStandingBounce is the standing variant of HandleCrouchedBounce.
	HandleStandingBounce(p *Player, hit Hit)
}

// NopHandler implements Handler without doing anything. Embed it to implement only some of the
// methods.
type NopHandler struct {
	entity.NopRocketHandler
}

// Compile time check to make sure NopHandler implements Handler.
var _ Handler = NopHandler{}

func (NopHandler) HandlePlayerCreated(*Player)            {}
func (NopHandler) HandleAirToGround(*Player)              {}
func (NopHandler) HandleGroundToAir(*Player)              {}
func (NopHandler) HandleBeforeTeleportToGround(*Player)   {}
func (NopHandler) HandleAfterTeleportToGround(*Player)    {}
func (NopHandler) HandleDeadstrafe(*Player)               {}
func (NopHandler) HandleDucking(*Player)                  {}
func (NopHandler) HandleBeforeDucked(*Player)             {}
func (NopHandler) HandleAfterDucked(*Player)              {}
func (NopHandler) HandleAirduckCounterIncrease(*Player)   {}
func (NopHandler) HandleBeforeUnduck(*Player)             {}
func (NopHandler) HandleAfterUnduck(*Player)              {}
func (NopHandler) HandleBeforeCtap(*Player)               {}
func (NopHandler) HandleAfterCtap(*Player)                {}
func (NopHandler) HandleBeforeTick(*Player)               {}
func (NopHandler) HandleAfterTick(*Player)                {}
func (NopHandler) HandleBeforeJump(*Player)               {}
func (NopHandler) HandleAfterJump(*Player)                {}
func (NopHandler) HandleBeforeBunnyhop(*Player)           {}
func (NopHandler) HandleAfterBunnyhop(*Player)            {}
func (NopHandler) HandleBeforeFriction(*Player)           {}
func (NopHandler) HandleAfterFriction(*Player)            {}
func (NopHandler) HandleBeforeWalkMove(*Player)           {}
func (NopHandler) HandleAfterWalkMove(*Player)            {}
func (NopHandler) HandleBeforeAirMove(*Player)            {}
func (NopHandler) HandleAfterAirMove(*Player)             {}
func (NopHandler) HandleJumpbugPossible(*Player)          {}
func (NopHandler) HandleCrouchedBouncePossible(*Player)   {}
func (NopHandler) HandleStandingBouncePossible(*Player)   {}
func (NopHandler) HandleJumpbugDetected(*Player)          {}
func (NopHandler) HandleBhopDetected(*Player)             {}
func (NopHandler) HandleSoldierCreated(*Player)           {}
func (NopHandler) HandleSoldierBeforeTick(*Player)        {}
func (NopHandler) HandleSoldierAfterTick(*Player)         {}
func (NopHandler) HandleBeforeShot(*Player)               {}
func (NopHandler) HandleAfterShot(*Player)                {}
func (NopHandler) HandleAimingRocket(*Player, mgl64.Vec3) {}
func (NopHandler) HandleBeforeWeaponSwitch(*Player)       {}
func (NopHandler) HandleAfterWeaponSwitch(*Player)        {}
func (NopHandler) HandleOutsideExplosion(*Player, Miss)   {}
func (NopHandler) HandleBeforeHit(*Player, *Hit)          {}
func (NopHandler) HandleAfterHit(*Player, Hit)            {}
func (NopHandler) HandleSpeedShot(*Player, Hit)           {}
func (NopHandler) HandleCrouchedBounce(*Player, Hit)      {}
func (NopHandler) HandleStandingBounce(*Player, Hit)      {}

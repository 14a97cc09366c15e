package scenario

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/entity"
	"github.com/oomph-ac/jumpsim/player"
	"github.com/oomph-ac/jumpsim/session"
	"github.com/sirupsen/logrus"
)

// Reporter is a player handler that logs the notable events of a run and counts them by name.
type Reporter struct {
	player.NopHandler

	log    *logrus.Entry
	tick   int
	counts *orderedmap.OrderedMap[string, int]

	// MaxHeight is the highest the feet of the player got above the floor.
	MaxHeight float64
}

// NewReporter returns a Reporter logging to log.
func NewReporter(log *logrus.Entry) *Reporter {
	return &Reporter{
		log:    log,
		tick:   -1,
		counts: orderedmap.NewOrderedMap[string, int](),
	}
}

// Count returns how often the named event happened.
func (r *Reporter) Count(event string) int {
	n, _ := r.counts.Get(event)
	return n
}

// Counts returns the counters in the order the events first happened.
func (r *Reporter) Counts() *orderedmap.OrderedMap[string, int] {
	return r.counts
}

// Summary logs the counters and the peak height of a finished session.
func (r *Reporter) Summary(s *session.Session) {
	fields := logrus.Fields{
		"ticks":      s.Tick(),
		"max_height": r.MaxHeight,
		"digest":     s.Recording().Digest(),
	}
	for el := r.counts.Front(); el != nil; el = el.Next() {
		fields[el.Key] = el.Value
	}
	r.log.WithFields(fields).Info("scenario finished")
}

// event counts the event and, when msg is not empty, logs it.
func (r *Reporter) event(name string, p *player.Player, msg string, fields logrus.Fields) {
	n, _ := r.counts.Get(name)
	r.counts.Set(name, n+1)
	if msg == "" {
		return
	}
	r.log.WithFields(fields).WithFields(logrus.Fields{"tick": r.tick, "pos": p.Pos, "vel": p.Vel}).Info(msg)
}

func (r *Reporter) HandleBeforeTick(*player.Player) {
	r.tick++
}

func (r *Reporter) HandleAfterTick(p *player.Player) {
	if d := p.FloorDistance(); d > r.MaxHeight {
		r.MaxHeight = d
	}
}

func (r *Reporter) HandleAirToGround(p *player.Player) {
	r.event("land", p, "landed", nil)
}

func (r *Reporter) HandleGroundToAir(p *player.Player) {
	r.event("leave_ground", p, "left the ground", nil)
}

func (r *Reporter) HandleDeadstrafe(p *player.Player) {
	r.event("deadstrafe", p, "", nil)
}

func (r *Reporter) HandleAfterDucked(p *player.Player) {
	r.event("duck", p, "ducked", nil)
}

func (r *Reporter) HandleAfterUnduck(p *player.Player) {
	r.event("unduck", p, "unducked", nil)
}

func (r *Reporter) HandleAfterCtap(p *player.Player) {
	r.event("ctap", p, "ctap", nil)
}

func (r *Reporter) HandleAfterJump(p *player.Player) {
	r.event("jump", p, "jumped", nil)
}

func (r *Reporter) HandleBeforeBunnyhop(p *player.Player) {
	r.event("bunnyhop_cap", p, "bunnyhop speed cap", logrus.Fields{"speed": p.Vel.Len()})
}

func (r *Reporter) HandleJumpbugDetected(p *player.Player) {
	r.event("jumpbug", p, "jumpbug", nil)
}

func (r *Reporter) HandleBhopDetected(p *player.Player) {
	r.event("bhop", p, "bhop", nil)
}

func (r *Reporter) HandleAfterShot(p *player.Player) {
	r.event("shot", p, "", nil)
}

func (r *Reporter) HandleAfterWeaponSwitch(p *player.Player) {
	r.event("weapon_switch", p, "", nil)
}

func (r *Reporter) HandleOutsideExplosion(p *player.Player, miss player.Miss) {
	r.event("miss", p, "explosion missed", logrus.Fields{"distance": miss.Distance})
}

func (r *Reporter) HandleAfterHit(p *player.Player, hit player.Hit) {
	r.event("hit", p, "hit by explosion", logrus.Fields{"magnitude": hit.Magnitude, "dir": hit.Dir})
}

func (r *Reporter) HandleSpeedShot(p *player.Player, hit player.Hit) {
	r.event("speedshot", p, "speedshot", logrus.Fields{"magnitude": hit.Magnitude})
}

func (r *Reporter) HandleCrouchedBounce(p *player.Player, hit player.Hit) {
	r.event("crouched_bounce", p, "crouched bounce", logrus.Fields{"magnitude": hit.Magnitude})
}

func (r *Reporter) HandleStandingBounce(p *player.Player, hit player.Hit) {
	r.event("standing_bounce", p, "standing bounce", logrus.Fields{"magnitude": hit.Magnitude})
}

func (r *Reporter) HandleRocketExploded(rocket *entity.Rocket, pos mgl64.Vec3) {
	r.counts.Set("explosion", r.Count("explosion")+1)
	r.log.WithFields(logrus.Fields{"tick": r.tick, "rocket": rocket.ID(), "pos": pos}).Info("rocket exploded")
}

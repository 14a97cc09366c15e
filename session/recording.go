package session

import (
	"encoding/binary"
	"math"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/player"
	"github.com/zeebo/xxh3"
)

// RocketTrack is the recorded flight of one rocket.
type RocketTrack struct {
	ID uint64
	// CreatedTick is the index of the tick that fired the rocket.
	CreatedTick int
	// Positions starts with the muzzle position and, if the rocket exploded, ends with the explosion
	// point.
	Positions []mgl64.Vec3
	Exploded  bool
	Explosion mgl64.Vec3
}

// Recording holds the position of the player after every tick and the tracks of every rocket, in the
// order they were fired. It also keeps a running hash of everything recorded, so two runs can be
// compared bit for bit through Digest.
type Recording struct {
	ticks  int
	player []mgl64.Vec3
	tracks *orderedmap.OrderedMap[uint64, *RocketTrack]

	hash *xxh3.Hasher
	buf  [8]byte
}

// newRecording starts a recording whose player track begins at start.
func newRecording(start mgl64.Vec3) *Recording {
	r := &Recording{
		tracks: orderedmap.NewOrderedMap[uint64, *RocketTrack](),
		hash:   xxh3.New(),
	}
	r.addPlayer(start)
	return r
}

// record adds the state of p after the tick with the given index.
func (r *Recording) record(tick int, p *player.Player) {
	r.ticks++
	r.addPlayer(p.Pos)
	r.write(p.Vel)
	if p.Weapon == nil {
		return
	}
	for _, ex := range p.Weapon.Explosions {
		t, ok := r.tracks.Get(ex.RocketID)
		if !ok {
			continue
		}
		t.Exploded, t.Explosion = true, ex.Pos
		t.Positions = append(t.Positions, ex.Pos)
		r.write(ex.Pos)
	}
	for _, rocket := range p.Weapon.Rockets {
		t, ok := r.tracks.Get(rocket.ID())
		if !ok {
			t = &RocketTrack{ID: rocket.ID(), CreatedTick: tick}
			r.tracks.Set(rocket.ID(), t)
		}
		t.Positions = append(t.Positions, rocket.Pos)
		r.write(rocket.Pos)
	}
}

func (r *Recording) addPlayer(pos mgl64.Vec3) {
	r.player = append(r.player, pos)
	r.write(pos)
}

// write feeds the exact bits of v to the digest.
func (r *Recording) write(v mgl64.Vec3) {
	for _, f := range v {
		binary.LittleEndian.PutUint64(r.buf[:], math.Float64bits(f))
		_, _ = r.hash.Write(r.buf[:])
	}
}

// Ticks returns the amount of recorded ticks.
func (r *Recording) Ticks() int {
	return r.ticks
}

// Player returns the player positions: the starting position followed by one entry per tick.
func (r *Recording) Player() []mgl64.Vec3 {
	return r.player
}

// Track returns the track of the rocket with the given id.
func (r *Recording) Track(id uint64) (*RocketTrack, bool) {
	return r.tracks.Get(id)
}

// Tracks returns every rocket track in firing order.
func (r *Recording) Tracks() []*RocketTrack {
	tracks := make([]*RocketTrack, 0, r.tracks.Len())
	for el := r.tracks.Front(); el != nil; el = el.Next() {
		tracks = append(tracks, el.Value)
	}
	return tracks
}

// Digest returns a hash of every position recorded so far, along with the player velocity after every
// tick. Runs with the same inputs and settings always produce the same digest.
func (r *Recording) Digest() uint64 {
	return r.hash.Sum64()
}

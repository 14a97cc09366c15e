package player

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/entity"
	"github.com/oomph-ac/jumpsim/input"
	"github.com/oomph-ac/jumpsim/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script changes the keys right after the given tick ran.
type script map[int]func(in *input.State)

// runScript ticks p and returns its starting position followed by its position after every tick.
func runScript(p *Player, in *input.State, ticks int, s script) []mgl64.Vec3 {
	positions := []mgl64.Vec3{p.Pos}
	for tick := 0; tick < ticks; tick++ {
		p.Tick()
		positions = append(positions, p.Pos)
		if f, ok := s[tick]; ok {
			f(in)
		}
	}
	return positions
}

func press(keys ...input.Key) func(in *input.State) {
	return func(in *input.State) { in.PressKeys(keys...) }
}

func release(keys ...input.Key) func(in *input.State) {
	return func(in *input.State) { in.ReleaseKeys(keys...) }
}

func swap(releaseKey, pressKey input.Key) func(in *input.State) {
	return func(in *input.State) {
		in.ReleaseKeys(releaseKey)
		in.PressKeys(pressKey)
	}
}

func assertPositions(t *testing.T, got []mgl64.Vec3, want map[int]mgl64.Vec3) {
	t.Helper()
	for tick, pos := range want {
		require.Greater(t, len(got), tick)
		assert.Equal(t, pos, got[tick], "position after %d ticks", tick)
	}
}

func TestTrajectoryJumpIntoJumpbug(t *testing.T) {
	p, in, h := newTestPlayer(WithPos(mgl64.Vec3{0, 0, 1088}), WithFloor(world.NewFloor(1088)), WithWeapon(entity.Stock))
	h.airFloor = world.NewFloor(0)

	in.PressKeys(input.Forward)
	positions := runScript(p, in, 406, script{
		15:  press(input.Jump),
		16:  swap(input.Jump, input.Duck),
		151: swap(input.Duck, input.Jump),
	})
	require.Len(t, positions, 407)
	assertPositions(t, positions, map[int]mgl64.Vec3{
		17:  {48.16847610473633, 0, 1092.186279296875},
		60:  {202.96856689453125, 0, 1120.5712890625},
		152: {534.1689453125, 0, 20.711368560791016},
		153: {534.92236328125, 0, 0.7025784850120544},
		200: {696.143310546875, 0, 0.03125},
		406: {1437.73828125, 0, 0.03125},
	})
	assert.Same(t, h.airFloor, p.Floor)

	assert.Equal(t, 2, h.counts["afterJump"])
	assert.Equal(t, 1, h.counts["jumpbug"])
	assert.Zero(t, h.counts["jumpbugPossible"])
	assert.Equal(t, 1, h.counts["beforeBunnyhop"])
	assert.Equal(t, 1, h.counts["afterBunnyhop"])
	assert.Equal(t, 1, h.counts["beforeTeleport"])
	assert.Equal(t, 1, h.counts["afterTeleport"])
	assert.Equal(t, 21, h.counts["deadstrafe"])
	assert.Equal(t, 3, h.counts["airToGround"])
	assert.Equal(t, 2, h.counts["groundToAir"])
	assert.Equal(t, 1, h.counts["ducked"])
	assert.Equal(t, 1, h.counts["unducked"])
	assert.Equal(t, 1, h.counts["airduck"])
}

func TestTrajectoryCrouchedJumpIntoBounce(t *testing.T) {
	p, in, h := newTestPlayer(WithPos(mgl64.Vec3{0, 0, -64}), WithFloor(world.NewFloor(-64)), WithWeapon(entity.Stock))
	h.airFloor = world.NewFloor(-357)

	in.PressKeys(input.Forward)
	positions := runScript(p, in, 406, script{
		15: press(input.Jump),
		16: swap(input.Jump, input.Duck),
		95: press(input.Attack),
		96: release(input.Attack),
	})
	assertPositions(t, positions, map[int]mgl64.Vec3{
		18:  {51.76847457885742, 0, -35.83875274658203},
		100: {346.96881103515625, 0, -322.42877197265625},
		103: {357.7688293457031, 0, -355.86376953125},
		104: {363.9083557128906, 2.4241671562194824, -347.2630310058594},
		150: {646.3265991210938, 113.93579864501953, -146.208984375},
		406: {1216.406005859375, 255.7222442626953, -356.96875},
	})
	require.Len(t, h.rockets, 1)
	assert.Equal(t, mgl64.Vec3{344.57770583713665, -12, -268.97057111592693}, h.rockets[0])

	assert.Equal(t, 1, h.counts["shot"])
	assert.Equal(t, 1, h.counts["exploded"])
	assert.Equal(t, 1, h.counts["afterHit"])
	assert.Equal(t, 1, h.counts["crouchedBounce"])
	assert.Zero(t, h.counts["standingBounce"])
	assert.Zero(t, h.counts["speedshot"])
	assert.Equal(t, 42, h.counts["deadstrafe"])
	assert.Equal(t, 3, h.counts["airToGround"])
	assert.Equal(t, 2, h.counts["groundToAir"])
	assert.Equal(t, 1, h.counts["ducked"])
}

func TestTrajectoryCtapWithPreCtaps(t *testing.T) {
	p, in, h := newTestPlayer(WithWeapon(entity.Original))
	p.Angle = -87.5

	s := script{
		305: press(input.Attack),
		306: release(input.Attack),
		307: press(input.Jump, input.Duck),
		308: release(input.Jump, input.Duck),
	}
	for tick := 2; tick <= 252; tick += 50 {
		s[tick] = press(input.Jump, input.Duck)
		s[tick+1] = release(input.Jump, input.Duck)
	}
	positions := runScript(p, in, 456, s)
	assertPositions(t, positions, map[int]mgl64.Vec3{
		4:   {0, 0, 4.307499885559082},
		54:  {0, 0, 4.302497863769531},
		307: {0, 0, 0.03249245509505272},
		310: {0, 0, 8.34249210357666},
		360: {-0.3911256790161133, 0, 547.7457885742188},
		456: {-1.1420869827270508, 0, 360.36016845703125},
	})
	// The muzzle depends on the last bit of cos(-87.5°).
	require.Len(t, h.rockets, 1)
	assert.Equal(t, mgl64.Vec3{-1.9720890616601772, 0, 44.42400108582539}, h.rockets[0])

	assert.Equal(t, 7, h.counts["afterJump"])
	assert.Equal(t, 7, h.counts["ducking"])
	assert.Equal(t, 7, h.counts["airduck"])
	assert.Equal(t, 7, h.counts["beforeUnduck"])
	assert.Equal(t, 7, h.counts["unducked"])
	assert.Zero(t, h.counts["beforeCtap"])
	assert.Equal(t, 7, h.counts["airToGround"])
	assert.Equal(t, 7, h.counts["groundToAir"])
	assert.Equal(t, 147, h.counts["deadstrafe"])
	assert.Equal(t, 1, h.counts["afterHit"])
}

package simulation

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	v := mgl64.Vec3{0.1, 0.2, 0.3}
	assert.Equal(t, v, New(Options{}).Round(v))

	rounded := Default().Round(v)
	assert.Equal(t, float64(float32(0.1)), rounded[0])
	assert.NotEqual(t, v, rounded)
}

func TestRocketIDsArePerSimulation(t *testing.T) {
	a, b := Default(), Default()
	assert.Equal(t, uint64(0), a.NextRocketID())
	assert.Equal(t, uint64(1), a.NextRocketID())
	assert.Equal(t, uint64(0), b.NextRocketID())
}

func TestNotify(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	s := New(Options{Log: log, Debug: []DebugMode{DebugModeRockets}})
	require.True(t, s.Enabled(DebugModeRockets))
	require.False(t, s.Enabled(DebugModeMovement))

	s.Notify(DebugModeMovement, true, "movement")
	s.Notify(DebugModeRockets, false, "skipped")
	assert.Zero(t, buf.Len())

	s.Notify(DebugModeRockets, true, "rocket %d", 3)
	assert.Contains(t, buf.String(), "rocket 3")
	assert.Contains(t, buf.String(), "mode=rockets")

	s.Toggle(DebugModeRockets)
	assert.False(t, s.Enabled(DebugModeRockets))
}

func TestParseDebugMode(t *testing.T) {
	m, err := ParseDebugMode(" Knockback ")
	require.NoError(t, err)
	assert.Equal(t, DebugModeKnockback, m)

	_, err = ParseDebugMode("collisions")
	assert.Error(t, err)
}

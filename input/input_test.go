package input

import (
	"errors"
	"testing"

	"github.com/oomph-ac/jumpsim/oerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	for _, k := range Keys() {
		parsed, err := ParseKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseKey("+sprint")
	var simErr *oerror.SimError
	require.True(t, errors.As(err, &simErr))
	assert.Equal(t, oerror.KindConfiguration, simErr.Kind)
}

func TestStatePressRelease(t *testing.T) {
	s := NewState()
	assert.False(t, s.Pressed(Forward))

	s.Press(Forward, 0.5)
	assert.Equal(t, 0.5, s.Value(Forward))
	assert.True(t, s.Pressed(Forward))

	s.PressKeys(Jump, Duck)
	assert.Equal(t, 1.0, s.Value(Jump))
	assert.Equal(t, 1.0, s.Value(Duck))

	s.ReleaseKeys(Jump, Forward)
	assert.False(t, s.Pressed(Jump))
	assert.False(t, s.Pressed(Forward))
	assert.True(t, s.Pressed(Duck))
}

func TestStateRejectsInvalidInput(t *testing.T) {
	s := NewState()
	assert.Panics(t, func() { s.Press(keyCount, 1) })
	assert.Panics(t, func() { s.Press(Forward, 1.5) })
	assert.Panics(t, func() { s.Press(Forward, -0.25) })
	assert.Panics(t, func() { s.Value(Key(200)) })
}

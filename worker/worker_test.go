package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/oomph-ac/jumpsim/oerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsEveryJob(t *testing.T) {
	p := New(context.Background(), 2)
	var n atomic.Int32
	for i := 0; i < 10; i++ {
		p.Submit(func(context.Context) error {
			n.Add(1)
			return nil
		})
	}
	require.NoError(t, p.Wait())
	assert.Equal(t, int32(10), n.Load())
}

func TestPoolCollectsErrorsAndPanics(t *testing.T) {
	p := New(context.Background(), 0)
	failed := errors.New("failed")
	var ran atomic.Int32

	p.Submit(func(context.Context) error { return failed })
	p.Submit(func(context.Context) error { panic("bad hook") })
	p.Submit(func(context.Context) error {
		ran.Add(1)
		return nil
	})

	err := p.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, failed)
	assert.Contains(t, err.Error(), "bad hook")
	assert.Equal(t, int32(1), ran.Load())
}

func TestPoolKeepsErrorKinds(t *testing.T) {
	p := New(context.Background(), 1)
	p.Submit(func(context.Context) error { panic("bad hook") })
	err := p.Wait()

	var simErr *oerror.SimError
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, oerror.KindHook, simErr.Kind)
	assert.Equal(t, "hook error: job panicked: bad hook", simErr.Error())

	p = New(context.Background(), 1)
	p.Submit(func(context.Context) error { panic(oerror.NewPrecondition("air ticks")) })
	err = p.Wait()
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, oerror.KindPrecondition, simErr.Kind)
}

func TestPoolHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(ctx, 1)
	called := false
	p.Submit(func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, p.Wait(), context.Canceled)
	assert.False(t, called)
}

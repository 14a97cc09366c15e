package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/jumpsim/oerror"
	"golang.org/x/sync/errgroup"
)

// Pool runs CPU intensive jobs on a bounded amount of goroutines. Unlike an errgroup, a failing job
// does not stop the others: every error is collected and returned by Wait.
type Pool struct {
	ctx context.Context
	g   errgroup.Group

	mu   sync.Mutex
	errs []error
}

// New creates a pool running at most parallelism jobs at once. A parallelism of zero or less means one
// job per CPU.
func New(ctx context.Context, parallelism int) *Pool {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	p := &Pool{ctx: ctx}
	p.g.SetLimit(parallelism)
	return p
}

// Submit queues f, blocking while the pool is full. A panic in f is reported to Sentry and turned into
// an error. Panics that are not already a SimError become one of KindHook.
func (p *Pool) Submit(f func(ctx context.Context) error) {
	p.g.Go(func() error {
		if err := p.run(f); err != nil {
			p.mu.Lock()
			p.errs = append(p.errs, err)
			p.mu.Unlock()
		}
		return nil
	})
}

func (p *Pool) run(f func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			if e, ok := r.(*oerror.SimError); ok {
				err = e
				return
			}
			err = oerror.NewHook("job panicked: %v", r)
		}
	}()
	if err := p.ctx.Err(); err != nil {
		return err
	}
	return f(p.ctx)
}

// Wait blocks until every submitted job returned and joins their errors.
func (p *Pool) Wait() error {
	_ = p.g.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}

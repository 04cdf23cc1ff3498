package insrcdata

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// StaticOptions configure a Static.
type StaticOptions struct {
	// Logger receives build diagnostics.
	// Default: NoopLogger().
	Logger *Logger

	// Verify checks the built value when it implements Verifier and panics
	// on a broken invariant.
	// Default: false.
	Verify bool
}

func (o *StaticOptions) norm() *StaticOptions {
	var oo StaticOptions
	if o != nil {
		oo = *o
	}

	if oo.Logger == nil {
		oo.Logger = NoopLogger()
	}
	return &oo
}

// Static is process-wide immutable state built exactly once, on first use,
// and shared by all readers afterwards.
type Static[T any] struct {
	name  string
	build func() T
	o     *StaticOptions

	once   sync.Once
	val    T
	failed any // panic value of a failed build, raised again by every Get
}

// NewStatic defines a value built by build on first access.
func NewStatic[T any](name string, build func() T, o *StaticOptions) *Static[T] {
	return &Static[T]{name: name, build: build, o: o.norm()}
}

// Get returns the value, building it first if needed. If the build panicked
// or failed verification, Get panics with the same value on every call.
func (s *Static[T]) Get() T {
	s.once.Do(s.init)
	if s.failed != nil {
		panic(s.failed)
	}
	return s.val
}

func (s *Static[T]) init() {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("insrcdata: static %q: %v", s.name, r)
			}
			s.o.Logger.LogBuild(context.Background(), s.name, time.Since(start), err)
			s.failed = r
		}
	}()

	val := s.build()

	var err error
	if s.o.Verify {
		if v, ok := any(val).(Verifier); ok {
			err = v.Verify()
		}
	}
	s.o.Logger.LogBuild(context.Background(), s.name, time.Since(start), err)
	if err != nil {
		s.failed = err
		return
	}
	s.val = val
}

// VerifyAll runs the verifiers concurrently and returns the first error.
func VerifyAll(ctx context.Context, verifiers ...Verifier) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, v := range verifiers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return v.Verify()
		})
	}
	return g.Wait()
}

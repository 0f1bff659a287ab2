package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"dacti/hal"
	"dacti/viewer"
)

// Loop is the render-loop trampoline around one viewer.
type Loop struct {
	v      viewer.Viewer
	policy FramePolicy
	log    hal.Logger

	frames   atomic.Uint64
	failures atomic.Uint64
}

func newLoop(v viewer.Viewer, policy FramePolicy, log hal.Logger) *Loop {
	return &Loop{v: v, policy: policy, log: log}
}

// Frames returns the number of successful updates.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Failures returns the number of failed updates.
func (l *Loop) Failures() uint64 { return l.failures.Load() }

// Tick runs exactly one viewer update.
func (l *Loop) Tick() error {
	if err := l.v.Tick(); err != nil {
		n := l.failures.Add(1)
		return fmt.Errorf("%w: frame %d: %w", ErrFrame, l.frames.Load()+n, err)
	}
	l.frames.Add(1)
	return nil
}

// Run waits for a frame from sched, ticks once, and repeats. Each tick
// completes before the next frame is requested.
//
// Run returns nil when the scheduler reports hal.ErrStopped, the context's
// error on cancellation, and under HaltOnError the first frame failure.
func (l *Loop) Run(ctx context.Context, sched hal.Scheduler) error {
	for {
		if err := sched.WaitFrame(ctx); err != nil {
			if errors.Is(err, hal.ErrStopped) {
				l.logf("loop: host stopped after %d frames", l.Frames())
				return nil
			}
			return err
		}
		if err := l.Tick(); err != nil {
			if l.policy == SkipOnError {
				l.logf("loop: %v (skipped)", err)
				continue
			}
			l.logf("loop: %v (halting)", err)
			return err
		}
	}
}

func (l *Loop) logf(format string, args ...any) {
	if l.log != nil {
		l.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

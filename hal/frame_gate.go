package hal

import (
	"context"
	"sync"
)

// frameGate hands frames from a host callback (ebiten's Update) to a render
// loop running on its own goroutine. grant returns only after the loop has
// finished the frame, so host drawing never overlaps a viewer tick.
type frameGate struct {
	frames chan chan struct{}

	stopOnce sync.Once
	stopped  chan struct{}

	// done is closed by the loop goroutine when it returns; err is valid after.
	done chan struct{}
	err  error

	// pending is owned by the loop goroutine.
	pending chan struct{}
}

func newFrameGate() *frameGate {
	return &frameGate{
		frames:  make(chan chan struct{}),
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (g *frameGate) WaitFrame(ctx context.Context) error {
	g.finish()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-g.stopped:
		return ErrStopped
	case ack := <-g.frames:
		g.pending = ack
		return nil
	}
}

func (g *frameGate) finish() {
	if g.pending != nil {
		close(g.pending)
		g.pending = nil
	}
}

// grant runs one frame on the loop and waits for it to complete.
// It reports false once the loop has exited.
func (g *frameGate) grant() bool {
	ack := make(chan struct{})
	select {
	case g.frames <- ack:
	case <-g.done:
		return false
	}
	select {
	case <-ack:
		return true
	case <-g.done:
		return false
	}
}

// exited reports whether the loop goroutine has returned.
func (g *frameGate) exited() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// stop makes pending and future WaitFrame calls return ErrStopped.
func (g *frameGate) stop() {
	g.stopOnce.Do(func() { close(g.stopped) })
}

// serve runs the loop on a new goroutine and closes done when it returns.
func (g *frameGate) serve(run func() error) {
	go func() {
		defer close(g.done)
		g.err = run()
	}()
}

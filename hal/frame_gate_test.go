package hal

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestFrameGateGrantWaitsForFrame(t *testing.T) {
	g := newFrameGate()
	var started, finished atomic.Int32

	g.serve(func() error {
		for {
			if err := g.WaitFrame(context.Background()); err != nil {
				return err
			}
			started.Add(1)
			finished.Add(1)
		}
	})

	for i := int32(1); i <= 3; i++ {
		if !g.grant() {
			t.Fatalf("grant %d = false", i)
		}
		if got := finished.Load(); got != i {
			t.Fatalf("after grant %d finished = %d", i, got)
		}
	}

	g.stop()
	<-g.done
	if !errors.Is(g.err, ErrStopped) {
		t.Fatalf("loop err = %v, want ErrStopped", g.err)
	}
	if !g.exited() {
		t.Fatal("exited() = false after loop returned")
	}
	if g.grant() {
		t.Fatal("grant after exit = true")
	}
	if started.Load() != 3 {
		t.Fatalf("started = %d, want 3", started.Load())
	}
}

func TestFrameGateLoopFailsBeforeFirstFrame(t *testing.T) {
	g := newFrameGate()
	boom := errors.New("construction failed")
	g.serve(func() error { return boom })

	if g.grant() {
		t.Fatal("grant = true for a loop that never waited")
	}
	<-g.done
	if !errors.Is(g.err, boom) {
		t.Fatalf("err = %v, want %v", g.err, boom)
	}
}

func TestFrameGateCancel(t *testing.T) {
	g := newFrameGate()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.WaitFrame(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("WaitFrame = %v, want context.Canceled", err)
	}
}

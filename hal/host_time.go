package hal

import (
	"sync/atomic"
	"time"
)

// hostTime is a millisecond frame clock advanced by the runners.
type hostTime struct {
	ms atomic.Uint64

	now  func() time.Time
	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{now: time.Now}
}

func (t *hostTime) Millis() uint64 { return t.ms.Load() }

// step advances the clock by the wall time elapsed since the previous step.
// The first step only records the starting point.
func (t *hostTime) step() {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	const tickDur = time.Millisecond
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.ms.Add(ticks)
}

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	Host  HostConfig
}

// RunHeadless runs a render loop without opening a window.
//
// run receives the host and a scheduler that grants one frame per tick of a
// Hz ticker. With Ticks > 0 the scheduler reports ErrStopped after that many
// frames; RunHeadless returns whatever run returns.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, run func(HAL, Scheduler) error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Host)
	t := time.NewTicker(d)
	defer t.Stop()

	return run(h, newTickerScheduler(t.C, h.t, cfg.Ticks))
}

type tickerScheduler struct {
	c       <-chan time.Time
	clock   *hostTime
	limit   uint64
	granted uint64
}

func newTickerScheduler(c <-chan time.Time, clock *hostTime, limit uint64) *tickerScheduler {
	return &tickerScheduler{c: c, clock: clock, limit: limit}
}

func (s *tickerScheduler) WaitFrame(ctx context.Context) error {
	if s.limit > 0 && s.granted >= s.limit {
		return ErrStopped
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.c:
	}
	if s.clock != nil {
		s.clock.step()
	}
	s.granted++
	return nil
}

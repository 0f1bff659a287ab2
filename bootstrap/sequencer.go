// Package bootstrap loads a viewer module, binds one viewer to a surface and
// drives its per-frame update from a host scheduler.
package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"dacti/hal"
	"dacti/viewer"
)

// Config selects what to start.
type Config struct {
	// Module is the registry name of the viewer module.
	Module string
	// Surface is the name of the surface the viewer binds to.
	Surface string
	// OnFrameError is the per-frame failure policy.
	OnFrameError FramePolicy
}

// Sequencer performs the one-time startup and hands out the render loop.
type Sequencer struct {
	host   hal.HAL
	loader viewer.Loader
	cfg    Config

	mu   sync.Mutex
	loop *Loop
}

// New returns a sequencer. An empty Config.Surface means hal.DefaultSurfaceName.
func New(h hal.HAL, loader viewer.Loader, cfg Config) *Sequencer {
	if cfg.Surface == "" {
		cfg.Surface = hal.DefaultSurfaceName
	}
	return &Sequencer{host: h, loader: loader, cfg: cfg}
}

// Initialize loads the module and constructs the viewer. On success the
// returned loop owns the only viewer handle this sequencer will ever create.
// On failure no loop exists and no frame can run.
func (s *Sequencer) Initialize(ctx context.Context) (*Loop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loop != nil {
		return nil, ErrAlreadyInitialized
	}

	s.logf("bootstrap: loading module %q", s.cfg.Module)
	m, err := s.loader.Load(ctx, s.cfg.Module)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrModuleUnavailable, err)
		s.logf("bootstrap: %v", err)
		return nil, err
	}

	surface, err := s.host.Surfaces().Lookup(s.cfg.Surface)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrConstruction, err)
		s.logf("bootstrap: %v", err)
		return nil, err
	}

	s.logf("bootstrap: constructing viewer on %q", surface.Name())
	v, err := m.NewViewer(ctx, s.host, surface)
	if err == nil && v == nil {
		err = fmt.Errorf("module %q returned no viewer", s.cfg.Module)
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrConstruction, err)
		s.logf("bootstrap: %v", err)
		return nil, err
	}

	s.loop = newLoop(v, s.cfg.OnFrameError, s.host.Logger())
	s.logf("bootstrap: viewer ready")
	return s.loop, nil
}

// Start initializes and then runs the loop until it ends.
func (s *Sequencer) Start(ctx context.Context, sched hal.Scheduler) error {
	loop, err := s.Initialize(ctx)
	if err != nil {
		return err
	}
	return loop.Run(ctx, sched)
}

func (s *Sequencer) logf(format string, args ...any) {
	if s.host == nil {
		return
	}
	if l := s.host.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DefaultSurfaceName is the surface the bootstrap binds to unless told otherwise.
const DefaultSurfaceName = "viewer"

// SurfaceConfig describes one host surface.
type SurfaceConfig struct {
	Name   string
	Width  int
	Height int
}

// HostConfig configures the host HAL.
type HostConfig struct {
	// Surfaces are created in order; the first one is presented.
	Surfaces []SurfaceConfig
	// Log receives log lines. Defaults to stdout.
	Log io.Writer
}

type hostHAL struct {
	logger   *hostLogger
	surfaces *hostSurfaces
	t        *hostTime
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	w := cfg.Log
	if w == nil {
		w = os.Stdout
	}
	specs := cfg.Surfaces
	if len(specs) == 0 {
		specs = []SurfaceConfig{{Name: DefaultSurfaceName, Width: 800, Height: 600}}
	}
	return &hostHAL{
		logger:   &hostLogger{w: w},
		surfaces: newHostSurfaces(specs),
		t:        newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Surfaces() Surfaces { return h.surfaces }
func (h *hostHAL) Clock() Clock       { return h.t }

// primaryFramebuffer returns the framebuffer runners present, or nil.
func (h *hostHAL) primaryFramebuffer() *hostFramebuffer {
	if len(h.surfaces.list) == 0 {
		return nil
	}
	return h.surfaces.list[0].fb
}

type hostSurface struct {
	name string
	fb   *hostFramebuffer
}

func (s *hostSurface) Name() string             { return s.name }
func (s *hostSurface) Framebuffer() Framebuffer { return s.fb }

type hostSurfaces struct {
	list   []*hostSurface
	byName map[string]*hostSurface
}

func newHostSurfaces(specs []SurfaceConfig) *hostSurfaces {
	s := &hostSurfaces{byName: make(map[string]*hostSurface, len(specs))}
	for _, spec := range specs {
		if spec.Name == "" {
			continue
		}
		if _, dup := s.byName[spec.Name]; dup {
			continue
		}
		hs := &hostSurface{name: spec.Name, fb: newHostFramebuffer(spec.Width, spec.Height)}
		s.list = append(s.list, hs)
		s.byName[spec.Name] = hs
	}
	return s
}

func (s *hostSurfaces) Lookup(name string) (Surface, error) {
	hs, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSurfaceNotFound, name)
	}
	return hs, nil
}

func (s *hostSurfaces) Primary() Surface {
	if len(s.list) == 0 {
		return nil
	}
	return s.list[0]
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

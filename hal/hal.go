package hal

import (
	"context"
	"errors"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	// ErrStopped is returned by a Scheduler once the host will not grant
	// further frames (window closed, frame limit reached).
	ErrStopped = errors.New("host stopped")

	// ErrSurfaceNotFound is returned when no surface has the requested name.
	ErrSurfaceNotFound = errors.New("surface not found")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Surface is a named drawable target a viewer binds to.
type Surface interface {
	Name() string
	Framebuffer() Framebuffer
}

// Surfaces resolves surfaces by name.
type Surfaces interface {
	Lookup(name string) (Surface, error)
	// Primary is the surface the host presents, or nil.
	Primary() Surface
}

// Clock reports host time as of the current frame.
//
// Runners advance it once per frame, so every read within a frame agrees.
type Clock interface {
	Millis() uint64
}

// Scheduler grants frames to a render loop.
//
// WaitFrame blocks until the next frame may run. Calling it again marks the
// previous frame as finished.
type Scheduler interface {
	WaitFrame(ctx context.Context) error
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(ctx context.Context) error

func (f SchedulerFunc) WaitFrame(ctx context.Context) error { return f(ctx) }

// HAL provides the only contact point between the viewer and the outside world.
type HAL interface {
	Logger() Logger
	Surfaces() Surfaces
	Clock() Clock
}

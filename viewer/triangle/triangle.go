// Package triangle is the bundled viewer module: a green clear with one red
// triangle spinning at a fixed rate, plus an optional frame counter.
package triangle

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"

	"dacti/hal"
	"dacti/internal/textfb"
	"dacti/viewer"
)

// Name is the module's registry name.
const Name = "triangle"

// ErrSurfaceLost is returned by Tick when the bound surface no longer has the
// dimensions it had at construction.
var ErrSurfaceLost = errors.New("surface lost")

// One full turn every four seconds of host time.
const radiansPerMilli = 2 * math.Pi / 4000

var (
	clearColor    = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	triangleColor = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	hudColor      = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Triangle vertices in normalized device coordinates, before rotation.
var vertices = [3]vec2{
	{X: 0, Y: 0.5},
	{X: -0.5, Y: -0.5},
	{X: 0.5, Y: -0.5},
}

// Option configures the module.
type Option func(*Module)

// WithHUD toggles the frame counter overlay.
func WithHUD(enable bool) Option {
	return func(m *Module) {
		m.hud = enable
	}
}

// Module builds triangle viewers.
type Module struct {
	hud bool
}

// New returns the module with the given options.
func New(opts ...Option) *Module {
	m := &Module{hud: true}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load is the registry entry point.
func Load(_ context.Context) (viewer.Module, error) {
	return New(), nil
}

// NewViewer implements viewer.Module.
func (m *Module) NewViewer(ctx context.Context, h hal.HAL, s hal.Surface) (viewer.Viewer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: no surface", viewer.ErrSurfaceUnusable)
	}
	fb := s.Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("%w: surface %q has no framebuffer", viewer.ErrSurfaceUnusable, s.Name())
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("%w: surface %q: unsupported pixel format %d", viewer.ErrSurfaceUnusable, s.Name(), fb.Format())
	}
	w, ht := fb.Width(), fb.Height()
	if w <= 0 || ht <= 0 {
		return nil, fmt.Errorf("%w: surface %q is %dx%d", viewer.ErrSurfaceUnusable, s.Name(), w, ht)
	}

	var clock hal.Clock
	if h != nil {
		clock = h.Clock()
		if l := h.Logger(); l != nil {
			l.WriteLineString(fmt.Sprintf("triangle: bound to surface %q (%dx%d)", s.Name(), w, ht))
		}
	}

	return &Viewer{
		fb:    fb,
		clock: clock,
		w:     w,
		h:     ht,
		hud:   m.hud,
		target: rgb565Target{
			buf:    fb.Buffer(),
			stride: fb.StrideBytes(),
			w:      w,
			h:      ht,
		},
	}, nil
}

// Viewer renders one frame per Tick.
type Viewer struct {
	fb     hal.Framebuffer
	clock  hal.Clock
	target rgb565Target

	w, h  int
	hud   bool
	frame uint64
}

// Frames returns the number of completed ticks.
func (v *Viewer) Frames() uint64 { return v.frame }

// Tick implements viewer.Viewer.
func (v *Viewer) Tick() error {
	if v.fb.Width() != v.w || v.fb.Height() != v.h || len(v.fb.Buffer()) < v.h*v.target.stride {
		return fmt.Errorf("%w: expected %dx%d, got %dx%d", ErrSurfaceLost, v.w, v.h, v.fb.Width(), v.fb.Height())
	}

	v.target.clear(clearColor)

	var ms uint64
	if v.clock != nil {
		ms = v.clock.Millis()
	}
	v.drawTriangle(float64(ms%4000) * radiansPerMilli)

	v.frame++
	if v.hud {
		textfb.WriteLine(v.fb, 2, textfb.LineHeight(), fmt.Sprintf("frame %d", v.frame), hudColor)
	}
	return v.fb.Present()
}

func (v *Viewer) drawTriangle(angle float64) {
	sin, cos := math.Sincos(angle)
	var pts [3]vec2
	for i, p := range vertices {
		r := vec2{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
		pts[i] = ndcToScreen(r, v.w, v.h)
	}
	fillTriangle(&v.target, pts, triangleColor)
}

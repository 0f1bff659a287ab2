//go:build cgo || js

package hal

import (
	"errors"
	"image"

	"dacti/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the windowed host runner.
type WindowConfig struct {
	Title string
	// Scale multiplies the primary surface size for the window size.
	Scale int
	// TPS is the frame rate ebiten drives Update at.
	TPS int
	// Hold keeps the window open, showing the last surface contents, after
	// the render loop has exited.
	Hold bool
	Host HostConfig
}

// RunWindow opens a window (a canvas under GOOS=js) presenting the primary
// surface, and runs a render loop whose frames are driven by ebiten's Update.
// It blocks until the window closes, or until the loop exits when Hold is off.
func RunWindow(cfg WindowConfig, run func(HAL, Scheduler) error) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "dacti"
	}

	h := newHost(cfg.Host)
	gate := newFrameGate()
	gate.serve(func() error { return run(h, gate) })

	g := &hostGame{h: h, gate: gate, hold: cfg.Hold}
	w, ht := g.Layout(0, 0)
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*cfg.Scale, ht*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	err := ebiten.RunGame(g)
	gate.stop()
	<-gate.done
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return gate.err
}

type hostGame struct {
	h     *hostHAL
	gate  *frameGate
	hold  bool
	ready bool

	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	if g.gate.exited() {
		g.ready = true
		if g.hold {
			return nil
		}
		return ebiten.Termination
	}
	g.h.t.step()
	if g.gate.grant() {
		g.ready = true
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.primaryFramebuffer()
	if fb == nil || !g.ready || fb.width == 0 || fb.height == 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)
	ConvertRGBA(g.img, g.scratch, fb.stride)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.h.primaryFramebuffer()
	if fb == nil || fb.width == 0 || fb.height == 0 {
		return 1, 1
	}
	return fb.width, fb.height
}

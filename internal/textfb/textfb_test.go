package textfb

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"dacti/hal"
)

func newFramebuffer(t *testing.T, w, h int) hal.Framebuffer {
	t.Helper()
	host := hal.New(hal.HostConfig{
		Surfaces: []hal.SurfaceConfig{{Name: "viewer", Width: w, Height: h}},
		Log:      &bytes.Buffer{},
	})
	return host.Surfaces().Primary().Framebuffer()
}

func countColor(fb hal.Framebuffer, want [3]uint8) int {
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			r, g, b, _ := hal.PixelAt(fb, x, y)
			if [3]uint8{r, g, b} == want {
				n++
			}
		}
	}
	return n
}

func TestDisplaySetPixelClips(t *testing.T) {
	fb := newFramebuffer(t, 4, 4)
	d := New(fb)

	d.SetPixel(-1, 0, color.RGBA{R: 255, A: 255})
	d.SetPixel(4, 4, color.RGBA{R: 255, A: 255})
	d.SetPixel(1, 2, color.RGBA{R: 255, A: 255})

	if n := countColor(fb, [3]uint8{255, 0, 0}); n != 1 {
		t.Fatalf("red pixels = %d, want 1", n)
	}
	if w, h := d.Size(); w != 4 || h != 4 {
		t.Fatalf("Size() = %d,%d want 4,4", w, h)
	}
}

func TestNilDisplay(t *testing.T) {
	d := New(nil)
	d.SetPixel(0, 0, color.RGBA{})
	if w, h := d.Size(); w != 0 || h != 0 {
		t.Fatalf("Size() = %d,%d want 0,0", w, h)
	}
	WriteLines(nil, 0, []string{"x"}, color.RGBA{})
	FailureScreen(nil, "t", errors.New("e"))
}

func TestWriteLineDrawsPixels(t *testing.T) {
	fb := newFramebuffer(t, 64, 16)
	WriteLine(fb, 0, LineHeight(), "Hi", color.RGBA{R: 255, G: 255, B: 255, A: 255})

	if n := countColor(fb, [3]uint8{255, 255, 255}); n == 0 {
		t.Fatal("no pixels drawn")
	}
}

func TestFailureScreen(t *testing.T) {
	fb := newFramebuffer(t, 160, 80)
	FailureScreen(fb, "startup failed", errors.New("viewer construction failed: surface not found: \"viewer\""))

	r, g, b, _ := hal.PixelAt(fb, 159, 79)
	if r != 0x20 || g != 0x20 || b != 0x20 {
		t.Fatalf("background = %d,%d,%d want dark grey", r, g, b)
	}
	if n := countColor(fb, [3]uint8{0x20, 0x20, 0x20}); n == 160*80 {
		t.Fatal("no text drawn")
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		in         string
		n          int16
		head, rest string
	}{
		{"hello", 10, "hello", ""},
		{"hello", 2, "he", "llo"},
		{"", 3, "", ""},
		{"жжж", 2, "жж", "ж"},
		{"abc", 0, "", "abc"},
	}
	for _, tc := range tests {
		head, rest := takeRunes(tc.in, tc.n)
		if head != tc.head || rest != tc.rest {
			t.Fatalf("takeRunes(%q, %d) = %q, %q want %q, %q", tc.in, tc.n, head, rest, tc.head, tc.rest)
		}
	}
}

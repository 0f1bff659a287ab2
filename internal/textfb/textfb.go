// Package textfb draws text onto hal framebuffers with tinyfont.
package textfb

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"dacti/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the default font.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// Display adapts an RGB565 framebuffer to drivers.Displayer.
type Display struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = Display{}

// New wraps fb. A nil or non-RGB565 framebuffer yields a display that draws nothing.
func New(fb hal.Framebuffer) Display { return Display{fb: fb} }

func (d Display) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d Display) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d Display) Display() error { return nil }

// LineHeight is the vertical advance of Font in pixels.
func LineHeight() int16 {
	h := int16(Font.GetYAdvance())
	if h <= 0 {
		h = 10
	}
	return h
}

// WriteLine draws s with its baseline at y.
func WriteLine(fb hal.Framebuffer, x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(New(fb), Font, x, y, s, c)
}

// WriteLines draws lines from the top of fb, wrapping long lines to the
// surface width. Lines that do not fit vertically are dropped.
func WriteLines(fb hal.Framebuffer, x int16, lines []string, c color.RGBA) {
	if fb == nil {
		return
	}
	d := New(fb)
	w, h := d.Size()
	lh := LineHeight()
	_, adv := tinyfont.LineWidth(Font, "0")
	cols := int16(1)
	if adv > 0 && w > x {
		cols = (w - x) / int16(adv)
	}
	if cols <= 0 {
		cols = 1
	}

	y := lh
	for _, line := range lines {
		for {
			if y > h {
				return
			}
			head, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, Font, x, y, head, c)
			y += lh
			if rest == "" {
				break
			}
			line = rest
		}
	}
}

// FailureScreen paints a static error page: title and the error text,
// one line per wrapped message line.
func FailureScreen(fb hal.Framebuffer, title string, err error) {
	if fb == nil {
		return
	}
	fb.ClearRGB(0x20, 0x20, 0x20)
	lines := []string{title}
	if err != nil {
		for _, l := range strings.Split(err.Error(), "\n") {
			if l != "" {
				lines = append(lines, l)
			}
		}
	}
	WriteLines(fb, 4, lines, color.RGBA{R: 0xFF, G: 0x60, B: 0x60, A: 0xFF})
	_ = fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}

package triangle

import (
	"image/color"
	"math"

	"dacti/hal"
)

type vec2 struct {
	X, Y float64
}

// rgb565Target writes pixels straight into a framebuffer's backing slice.
type rgb565Target struct {
	buf    []byte
	stride int
	w, h   int
}

func (t *rgb565Target) clear(c color.RGBA) {
	p := hal.RGB565(c.R, c.G, c.B)
	lo, hi := byte(p), byte(p>>8)
	for y := 0; y < t.h; y++ {
		row := y * t.stride
		for x := 0; x < t.w; x++ {
			off := row + x*2
			if off+1 >= len(t.buf) {
				return
			}
			t.buf[off] = lo
			t.buf[off+1] = hi
		}
	}
}

func (t *rgb565Target) setPixel(x, y int, p uint16) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	off := y*t.stride + x*2
	if off < 0 || off+1 >= len(t.buf) {
		return
	}
	t.buf[off] = byte(p)
	t.buf[off+1] = byte(p >> 8)
}

func ndcToScreen(p vec2, w, h int) vec2 {
	return vec2{
		X: (p.X + 1) * 0.5 * float64(w),
		Y: (1 - p.Y) * 0.5 * float64(h),
	}
}

func edge(a, b, p vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// fillTriangle fills pixels whose centers lie inside the triangle, for either
// winding order.
func fillTriangle(t *rgb565Target, v [3]vec2, c color.RGBA) {
	area := edge(v[0], v[1], v[2])
	if area == 0 {
		return
	}

	minX := int(math.Floor(math.Min(v[0].X, math.Min(v[1].X, v[2].X))))
	maxX := int(math.Ceil(math.Max(v[0].X, math.Max(v[1].X, v[2].X))))
	minY := int(math.Floor(math.Min(v[0].Y, math.Min(v[1].Y, v[2].Y))))
	maxY := int(math.Ceil(math.Max(v[0].Y, math.Max(v[1].Y, v[2].Y))))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > t.w-1 {
		maxX = t.w - 1
	}
	if maxY > t.h-1 {
		maxY = t.h - 1
	}

	p565 := hal.RGB565(c.R, c.G, c.B)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			w0 := edge(v[1], v[2], p)
			w1 := edge(v[2], v[0], p)
			w2 := edge(v[0], v[1], p)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				t.setPixel(x, y, p565)
			}
		}
	}
}

package triangle

import (
	"image/color"
	"testing"

	"dacti/hal"
)

func TestFillTriangleWinding(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	want := hal.RGB565(255, 0, 0)

	ccw := [3]vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 0}}
	cw := [3]vec2{ccw[0], ccw[2], ccw[1]}

	for name, tri := range map[string][3]vec2{"ccw": ccw, "cw": cw} {
		target := rgb565Target{buf: make([]byte, 10*10*2), stride: 20, w: 10, h: 10}
		fillTriangle(&target, tri, red)

		if got := pixel(target, 1, 1); got != want {
			t.Fatalf("%s: inside pixel = %#04x, want %#04x", name, got, want)
		}
		if got := pixel(target, 9, 9); got != 0 {
			t.Fatalf("%s: outside pixel = %#04x, want 0", name, got)
		}
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	target := rgb565Target{buf: make([]byte, 4*4*2), stride: 8, w: 4, h: 4}
	fillTriangle(&target, [3]vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, color.RGBA{R: 255, A: 255})
	for i, b := range target.buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want untouched", i, b)
		}
	}
}

func TestFillTriangleClipped(t *testing.T) {
	target := rgb565Target{buf: make([]byte, 4*4*2), stride: 8, w: 4, h: 4}
	fillTriangle(&target, [3]vec2{{X: -100, Y: -100}, {X: 100, Y: -100}, {X: 0, Y: 100}}, color.RGBA{B: 255, A: 255})
	if got := pixel(target, 3, 3); got != hal.RGB565(0, 0, 255) {
		t.Fatalf("pixel = %#04x, want blue", got)
	}
}

func pixel(t rgb565Target, x, y int) uint16 {
	off := y*t.stride + x*2
	return uint16(t.buf[off]) | uint16(t.buf[off+1])<<8
}

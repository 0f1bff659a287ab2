package hal

import "image"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGB565 packs an 8-bit color into the framebuffer pixel encoding.
func RGB565(r, g, b uint8) uint16 { return rgb565(r, g, b) }

// PixelAt decodes the pixel at (x, y) of an RGB565 framebuffer.
// ok is false when the coordinate is outside the buffer.
func PixelAt(fb Framebuffer, x, y int) (r, g, b uint8, ok bool) {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return 0, 0, 0, false
	}
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return 0, 0, 0, false
	}
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return 0, 0, 0, false
	}
	r, g, b = rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return r, g, b, true
}

// ConvertRGBA expands an RGB565 buffer into dst.
// src is read row by row using stride; dst must match width and height.
func ConvertRGBA(dst *image.RGBA, src []byte, stride int) {
	if dst == nil || stride <= 0 {
		return
	}
	w := dst.Rect.Dx()
	h := dst.Rect.Dy()
	for y := 0; y < h; y++ {
		row := y * stride
		out := y * dst.Stride
		for x := 0; x < w; x++ {
			i := row + x*2
			if i+1 >= len(src) {
				return
			}
			r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
			j := out + x*4
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
}

// Snapshot copies an RGB565 framebuffer into a new RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	if fb == nil {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if fb.Format() != PixelFormatRGB565 {
		return img
	}
	var src []byte
	if hf, ok := fb.(*hostFramebuffer); ok {
		src = make([]byte, len(hf.buf))
		hf.snapshotRGB565(src)
	} else {
		src = fb.Buffer()
	}
	ConvertRGBA(img, src, fb.StrideBytes())
	return img
}

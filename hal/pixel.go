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

// Snapshot copies an RGB565 framebuffer into an opaque RGBA image.
// Other pixel formats yield nil.
func Snapshot(fb Framebuffer) *image.RGBA {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return nil
	}
	if hf, ok := fb.(*hostFramebuffer); ok {
		return hf.snapshot(nil)
	}
	return decodeRGB565(nil, fb.Buffer(), fb.StrideBytes(), fb.Width(), fb.Height())
}

func decodeRGB565(dst *image.RGBA, src []byte, stride, w, h int) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	for y := 0; y < h && y*stride < len(src); y++ {
		row := src[y*stride:]
		out := dst.Pix[y*dst.Stride:]
		for x := 0; x < w && x*2+1 < len(row); x++ {
			r, g, b := rgb888From565(uint16(row[x*2]) | uint16(row[x*2+1])<<8)
			j := x * 4
			out[j+0] = r
			out[j+1] = g
			out[j+2] = b
			out[j+3] = 0xFF
		}
	}
	return dst
}

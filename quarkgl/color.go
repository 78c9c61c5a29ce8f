package quarkgl

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

var (
	White = RGB(0xFF, 0xFF, 0xFF)
	Black = RGB(0x00, 0x00, 0x00)

	// Background is the default clear color.
	Background = RGB(0x1A, 0x1A, 0x2E)
)

// HSL builds an opaque color from hue in degrees and saturation/lightness in 0..1.
func HSL(h, s, l Scalar) Color {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = Clamp01(s)
	l = Clamp01(l)

	c := (1 - math32.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math32.Abs(math32.Mod(hp, 2)-1))

	var r, g, b Scalar
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	ch := func(v Scalar) uint8 {
		return uint8(math32.Round(Clamp01(v+m) * 255))
	}
	return RGB(ch(r), ch(g), ch(b))
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) std() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

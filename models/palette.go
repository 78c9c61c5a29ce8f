package models

import (
	"math/rand/v2"

	"quarkview/quarkgl"
)

// Palette hands out face colors hsl(h, 70%, 60%) with a hue drawn from a seeded
// generator, so a given seed always colors a model the same way.
type Palette struct {
	rng *rand.Rand
}

// NewPalette returns a palette seeded with seed.
func NewPalette(seed uint64) *Palette {
	return &Palette{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// Next returns the next face color.
func (p *Palette) Next() quarkgl.Color {
	h := quarkgl.Scalar(p.rng.Float64() * 360)
	return quarkgl.HSL(h, 0.7, 0.6)
}

// Faces wraps index lists into faces colored from the palette, in order.
func (p *Palette) Faces(indices [][]int) []quarkgl.Face {
	faces := make([]quarkgl.Face, len(indices))
	for i, idx := range indices {
		faces[i] = quarkgl.Face{Indices: idx, Color: p.Next()}
	}
	return faces
}

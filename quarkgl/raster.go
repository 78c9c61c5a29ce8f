package quarkgl

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
)

// MinTriangleArea is the smallest |denominator| of the barycentric weights a
// triangle may have; below it the triangle is treated as collinear.
const MinTriangleArea Scalar = 1e-4

// Rasterizer turns projected faces into pixel writes.
//
// It owns the depth buffer and the scratch state of the path filler. Reuse one
// Rasterizer across frames to avoid allocations.
type Rasterizer struct {
	w, h  int
	depth []float32

	path vector.Rasterizer
	mask []byte
	clip []ScreenPoint
	tmp  []ScreenPoint
}

// ResetDepth sizes the depth buffer to w×h and sets every entry to +Inf.
func (r *Rasterizer) ResetDepth(w, h int) {
	if w <= 0 || h <= 0 {
		r.w, r.h = 0, 0
		r.depth = r.depth[:0]
		return
	}
	n := w * h
	if cap(r.depth) < n {
		r.depth = make([]float32, n)
	}
	r.depth = r.depth[:n]
	r.w, r.h = w, h
	inf := math32.Inf(1)
	for i := range r.depth {
		r.depth[i] = inf
	}
}

// DepthAt returns the stored depth of a pixel, or +Inf when out of range.
func (r *Rasterizer) DepthAt(x, y int) float32 {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return math32.Inf(1)
	}
	return r.depth[y*r.w+x]
}

// DrawTriangle fills a triangle against the depth buffer and returns the number
// of pixels written.
//
// A pixel is written only when its interpolated depth is positive and strictly
// nearer than the stored one.
func (r *Rasterizer) DrawTriangle(t Target, p1, p2, p3 ScreenPoint, c Color) int {
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return 0
	}
	if r.w != w || r.h != h || len(r.depth) != w*h {
		r.ResetDepth(w, h)
	}

	x1, y1, z1 := p1.X, p1.Y, p1.Z
	x2, y2, z2 := p2.X, p2.Y, p2.Z
	x3, y3, z3 := p3.X, p3.Y, p3.Z

	denom := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if !(math32.Abs(denom) >= MinTriangleArea) || math32.IsInf(denom, 0) {
		return 0
	}

	// Clamp before converting so far off-screen vertices cannot overflow int.
	minX := int(clampScalar(math32.Floor(min3(x1, x2, x3)), 0, Scalar(w)))
	maxX := int(clampScalar(math32.Ceil(max3(x1, x2, x3)), -1, Scalar(w-1)))
	minY := int(clampScalar(math32.Floor(min3(y1, y2, y3)), 0, Scalar(h)))
	maxY := int(clampScalar(math32.Ceil(max3(y1, y2, y3)), -1, Scalar(h-1)))

	written := 0
	for y := minY; y <= maxY; y++ {
		py := Scalar(y)
		for x := minX; x <= maxX; x++ {
			px := Scalar(x)
			l1 := ((y2-y3)*(px-x3) + (x3-x2)*(py-y3)) / denom
			l2 := ((y3-y1)*(px-x3) + (x1-x3)*(py-y3)) / denom
			l3 := 1 - l1 - l2
			if l1 < 0 || l2 < 0 || l3 < 0 {
				continue
			}
			z := l1*z1 + l2*z2 + l3*z3
			idx := y*w + x
			if z >= r.depth[idx] || z <= 0 {
				continue
			}
			r.depth[idx] = z
			t.SetPixel(x, y, c)
			written++
		}
	}
	return written
}

// FillFace splits a projected face into triangles and draws them with depth testing.
//
// Triangles draw as is. A quad always splits along the (0, 2) diagonal into
// (0,1,2) and (0,2,3); larger polygons continue the same fan around vertex 0.
// Fewer than three points draw nothing.
func (r *Rasterizer) FillFace(t Target, pts []ScreenPoint, c Color) int {
	if len(pts) < 3 {
		return 0
	}
	written := 0
	for i := 1; i+1 < len(pts); i++ {
		written += r.DrawTriangle(t, pts[0], pts[i], pts[i+1], c)
	}
	return written
}

func min3(a, b, c Scalar) Scalar { return math32.Min(a, math32.Min(b, c)) }
func max3(a, b, c Scalar) Scalar { return math32.Max(a, math32.Max(b, c)) }

// clampScalar limits v to [lo, hi]; NaN maps to lo.
func clampScalar(v, lo, hi Scalar) Scalar {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

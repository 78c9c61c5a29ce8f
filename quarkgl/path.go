package quarkgl

import (
	"image"

	"github.com/chewxy/math32"
)

const (
	// WireframeWidth is the stroke width of wireframe edges.
	WireframeWidth Scalar = 2
	// OutlineWidth is the stroke width of the border drawn around flat faces.
	OutlineWidth Scalar = 1

	// coverageThreshold is the minimum path coverage (of 0xFF) for a pixel to be set.
	coverageThreshold = 0x80
)

// FillPolygon fills the closed path through pts with c, without depth testing,
// and returns the number of pixels written.
func (r *Rasterizer) FillPolygon(t Target, pts []ScreenPoint, c Color) int {
	if len(pts) < 3 || !finitePoints(pts) {
		return 0
	}
	return r.coverPath(t, pts, 0, c, func(win clipRect, ox, oy Scalar) {
		r.clip, r.tmp = win.polygon(r.clip, r.tmp, pts)
		if len(r.clip) < 3 {
			return
		}
		r.path.MoveTo(r.clip[0].X-ox, r.clip[0].Y-oy)
		for _, p := range r.clip[1:] {
			r.path.LineTo(p.X-ox, p.Y-oy)
		}
		r.path.ClosePath()
	})
}

// StrokePolygon strokes the closed path through pts with the given width and
// returns the number of pixels written.
func (r *Rasterizer) StrokePolygon(t Target, pts []ScreenPoint, width Scalar, c Color) int {
	if len(pts) < 2 || !finitePoints(pts) {
		return 0
	}
	if width <= 1 {
		return r.strokeThin(t, pts, c)
	}
	hw := width / 2
	return r.coverPath(t, pts, hw, c, func(win clipRect, ox, oy Scalar) {
		// Widen the window by the half width so clipped quads still cover
		// every pixel the full segment would.
		grown := clipRect{win.x0 - float64(hw), win.y0 - float64(hw), win.x1 + float64(hw), win.y1 + float64(hw)}
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			ax, ay, bx, by, ok := grown.segment(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
			if !ok {
				continue
			}
			r.segmentQuad(Scalar(ax)-ox, Scalar(ay)-oy, Scalar(bx)-ox, Scalar(by)-oy, hw)
		}
	})
}

// DrawFlat fills the face with c and outlines it in black.
func (r *Rasterizer) DrawFlat(t Target, pts []ScreenPoint, c Color) int {
	n := r.FillPolygon(t, pts, c)
	return n + r.StrokePolygon(t, pts, OutlineWidth, Black)
}

// DrawWireframe strokes the face outline in white.
func (r *Rasterizer) DrawWireframe(t Target, pts []ScreenPoint) int {
	return r.StrokePolygon(t, pts, WireframeWidth, White)
}

// segmentQuad adds the rectangle covering a segment of half-width hw.
//
// Every quad has the same orientation so overlapping segments never cancel.
func (r *Rasterizer) segmentQuad(ax, ay, bx, by, hw Scalar) {
	dx, dy := bx-ax, by-ay
	l := math32.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	r.path.MoveTo(ax+nx, ay+ny)
	r.path.LineTo(bx+nx, by+ny)
	r.path.LineTo(bx-nx, by-ny)
	r.path.LineTo(ax-nx, ay-ny)
	r.path.ClosePath()
}

// coverPath rasterizes the path built by build over the bounding box of pts (grown
// by pad, clamped to the surface) and sets every pixel whose coverage reaches the
// threshold. build receives a clip window one pixel wider than that box and must
// keep its geometry inside it.
func (r *Rasterizer) coverPath(t Target, pts []ScreenPoint, pad Scalar, c Color, build func(win clipRect, ox, oy Scalar)) int {
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return 0
	}

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math32.Min(minX, p.X)
		minY = math32.Min(minY, p.Y)
		maxX = math32.Max(maxX, p.X)
		maxY = math32.Max(maxY, p.Y)
	}
	x0 := int(clampScalar(math32.Floor(minX-pad), 0, Scalar(w)))
	y0 := int(clampScalar(math32.Floor(minY-pad), 0, Scalar(h)))
	x1 := int(clampScalar(math32.Ceil(maxX+pad)+1, 0, Scalar(w)))
	y1 := int(clampScalar(math32.Ceil(maxY+pad)+1, 0, Scalar(h)))
	if x0 >= x1 || y0 >= y1 {
		return 0
	}
	bw, bh := x1-x0, y1-y0
	win := clipRect{float64(x0 - 1), float64(y0 - 1), float64(x1 + 1), float64(y1 + 1)}

	r.path.Reset(bw, bh)
	build(win, Scalar(x0), Scalar(y0))

	if cap(r.mask) < bw*bh {
		r.mask = make([]byte, bw*bh)
	}
	r.mask = r.mask[:bw*bh]
	for i := range r.mask {
		r.mask[i] = 0
	}
	mask := &image.Alpha{Pix: r.mask, Stride: bw, Rect: image.Rect(0, 0, bw, bh)}
	r.path.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	written := 0
	for y := 0; y < bh; y++ {
		row := r.mask[y*bw : (y+1)*bw]
		for x, a := range row {
			if a < coverageThreshold {
				continue
			}
			t.SetPixel(x0+x, y0+y, c)
			written++
		}
	}
	return written
}

// strokeThin draws one-pixel edges with Bresenham's algorithm. Each edge is
// clipped to the surface first so the walk stays bounded.
func (r *Rasterizer) strokeThin(t Target, pts []ScreenPoint, c Color) int {
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return 0
	}
	win := clipRect{-1, -1, float64(w), float64(h)}
	written := 0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		ax, ay, bx, by, ok := win.segment(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
		if !ok {
			continue
		}
		written += drawLine(t, roundInt(Scalar(ax)), roundInt(Scalar(ay)), roundInt(Scalar(bx)), roundInt(Scalar(by)), c)
	}
	return written
}

func drawLine(t Target, x0, y0, x1, y1 int, c Color) int {
	w, h := t.Size()
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	written := 0
	for {
		if x0 >= 0 && y0 >= 0 && x0 < w && y0 < h {
			t.SetPixel(x0, y0, c)
			written++
		}
		if x0 == x1 && y0 == y1 {
			return written
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func roundInt(v Scalar) int { return int(math32.Round(v)) }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package quarkgl

import "github.com/chewxy/math32"

// clipRect is an axis-aligned window in screen space. Clipping runs in float64
// so far off-screen vertices keep their on-screen crossings accurate.
type clipRect struct {
	x0, y0, x1, y1 float64
}

func finitePoints(pts []ScreenPoint) bool {
	for _, p := range pts {
		if math32.IsNaN(p.X) || math32.IsNaN(p.Y) || math32.IsInf(p.X, 0) || math32.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// segment clips a-b to the window (Liang-Barsky). ok is false when the segment misses it.
func (c clipRect) segment(ax, ay, bx, by float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := bx-ax, by-ay
	edge := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}
	if !edge(-dx, ax-c.x0) || !edge(dx, c.x1-ax) || !edge(-dy, ay-c.y0) || !edge(dy, c.y1-ay) {
		return 0, 0, 0, 0, false
	}
	return ax + t0*dx, ay + t0*dy, ax + t1*dx, ay + t1*dy, true
}

// polygon clips the closed polygon pts to the window (Sutherland-Hodgman),
// reusing dst and tmp. The result may be empty.
func (c clipRect) polygon(dst, tmp []ScreenPoint, pts []ScreenPoint) (out, scratch []ScreenPoint) {
	dst = append(dst[:0], pts...)
	planes := [4]struct {
		inside func(x, y float64) bool
		cross  func(ax, ay, bx, by float64) (float64, float64)
	}{
		{func(x, _ float64) bool { return x >= c.x0 }, func(ax, ay, bx, by float64) (float64, float64) {
			return c.x0, ay + (by-ay)*(c.x0-ax)/(bx-ax)
		}},
		{func(x, _ float64) bool { return x <= c.x1 }, func(ax, ay, bx, by float64) (float64, float64) {
			return c.x1, ay + (by-ay)*(c.x1-ax)/(bx-ax)
		}},
		{func(_, y float64) bool { return y >= c.y0 }, func(ax, ay, bx, by float64) (float64, float64) {
			return ax + (bx-ax)*(c.y0-ay)/(by-ay), c.y0
		}},
		{func(_, y float64) bool { return y <= c.y1 }, func(ax, ay, bx, by float64) (float64, float64) {
			return ax + (bx-ax)*(c.y1-ay)/(by-ay), c.y1
		}},
	}
	for _, pl := range planes {
		if len(dst) == 0 {
			break
		}
		tmp = tmp[:0]
		for i := range dst {
			a, b := dst[i], dst[(i+1)%len(dst)]
			ax, ay := float64(a.X), float64(a.Y)
			bx, by := float64(b.X), float64(b.Y)
			ain, bin := pl.inside(ax, ay), pl.inside(bx, by)
			if ain != bin {
				x, y := pl.cross(ax, ay, bx, by)
				tmp = append(tmp, ScreenPoint{X: Scalar(x), Y: Scalar(y)})
			}
			if bin {
				tmp = append(tmp, b)
			}
		}
		dst, tmp = tmp, dst
	}
	return dst, tmp
}

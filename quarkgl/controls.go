package quarkgl

import "github.com/chewxy/math32"

// OrbitController applies bounded orbit/zoom/raise interactions to an Orbit.
//
// It is intentionally simple and does not depend on any input system. Zero bounds
// are treated as "unbounded".
type OrbitController struct {
	MinDistance Scalar
	MaxDistance Scalar
	MinHeight   Scalar
	MaxHeight   Scalar
}

// Orbit rotates the camera around the origin by delta radians.
func (c OrbitController) Orbit(o Orbit, delta Scalar) Orbit {
	o.Angle = WrapAngle(o.Angle + delta)
	return o
}

// Zoom moves the camera toward (negative delta) or away from the origin.
func (c OrbitController) Zoom(o Orbit, delta Scalar) Orbit {
	o.Distance = clampBound(o.Distance+delta, c.MinDistance, c.MaxDistance)
	return o
}

// Raise moves the camera up or down.
func (c OrbitController) Raise(o Orbit, delta Scalar) Orbit {
	o.Height = clampBound(o.Height+delta, c.MinHeight, c.MaxHeight)
	return o
}

// Turn adds deltas to the model rotation, keeping each angle in [-π, π).
func (e Euler) Turn(dx, dy, dz Scalar) Euler {
	return Euler{
		X: WrapAngle(e.X + dx),
		Y: WrapAngle(e.Y + dy),
		Z: WrapAngle(e.Z + dz),
	}
}

// WrapAngle maps a in radians into [-π, π).
func WrapAngle(a Scalar) Scalar {
	const twoPi = 2 * math32.Pi
	a = math32.Mod(a+math32.Pi, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a - math32.Pi
}

func clampBound(v, lo, hi Scalar) Scalar {
	if lo != 0 && v < lo {
		v = lo
	}
	if hi != 0 && v > hi {
		v = hi
	}
	return v
}

package quarkgl

import "github.com/chewxy/math32"

// Orbit places the camera on a circle around the world origin in the XZ plane.
type Orbit struct {
	Distance Scalar
	Height   Scalar
	Angle    Scalar // radians, 0 looks from +Z
}

// Position returns the camera position in world space.
func (o Orbit) Position() Vec3 {
	s, c := math32.Sincos(o.Angle)
	return Vec3{
		X: s * o.Distance,
		Y: o.Height,
		Z: c * o.Distance,
	}
}

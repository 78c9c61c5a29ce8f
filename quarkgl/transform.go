package quarkgl

import "github.com/chewxy/math32"

// Rotate applies r to v about the X, then Y, then Z axis (right-handed).
//
// A zero angle leaves its axis untouched.
func Rotate(v Vec3, r Euler) Vec3 {
	x, y, z := v.X, v.Y, v.Z

	if r.X != 0 {
		s, c := math32.Sincos(r.X)
		y, z = y*c-z*s, y*s+z*c
	}
	if r.Y != 0 {
		s, c := math32.Sincos(r.Y)
		x, z = x*c+z*s, -x*s+z*c
	}
	if r.Z != 0 {
		s, c := math32.Sincos(r.Z)
		x, y = x*c-y*s, x*s+y*c
	}
	return Vec3{X: x, Y: y, Z: z}
}

// TransformVertices rotates src by r, translates by position and writes the result
// into dst, which is grown as needed and returned.
func TransformVertices(dst, src []Vec3, r Euler, position Vec3) []Vec3 {
	if cap(dst) < len(src) {
		dst = make([]Vec3, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = Rotate(v, r).Add(position)
	}
	return dst
}

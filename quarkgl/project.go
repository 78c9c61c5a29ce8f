package quarkgl

import "github.com/chewxy/math32"

const (
	// OrthoScale is the fixed pixels-per-unit factor of the orthographic projection.
	OrthoScale Scalar = 80
	// PerspectiveFOV is the focal factor of the perspective projection.
	PerspectiveFOV Scalar = 500
	// MinPerspectiveDepth floors the perspective divisor.
	MinPerspectiveDepth Scalar = 0.1
	// NearPlane is the depth at or below which a projected vertex rejects its face.
	NearPlane Scalar = 0.1
)

// ScreenPoint is a projected vertex. Z is the raw camera-relative depth.
type ScreenPoint struct {
	X, Y, Z Scalar
}

// Projector maps world-space points onto a W×H surface.
type Projector struct {
	W, H   int
	Mode   Projection
	Camera Vec3
}

// NewProjector builds the projector for one frame.
func NewProjector(w, h int, fs FrameState) Projector {
	return Projector{
		W:      w,
		H:      h,
		Mode:   fs.Projection,
		Camera: fs.Camera.Position(),
	}
}

// Project maps a world-space point to screen space.
//
// Screen Y grows downward, so world Y is inverted.
func (p Projector) Project(v Vec3) ScreenPoint {
	d := v.Sub(p.Camera)

	scale := OrthoScale
	if p.Mode == ProjectionPerspective {
		scale = PerspectiveFOV / math32.Max(d.Z, MinPerspectiveDepth)
	}
	return ScreenPoint{
		X: d.X*scale + Scalar(p.W)/2,
		Y: -d.Y*scale + Scalar(p.H)/2,
		Z: d.Z,
	}
}

// ProjectAll projects src into dst, which is grown as needed and returned.
func (p Projector) ProjectAll(dst []ScreenPoint, src []Vec3) []ScreenPoint {
	if cap(dst) < len(src) {
		dst = make([]ScreenPoint, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = p.Project(v)
	}
	return dst
}

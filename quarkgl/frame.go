package quarkgl

// Projection selects how camera-relative points map to the screen.
type Projection uint8

const (
	ProjectionOrtho Projection = iota
	ProjectionPerspective
)

func (p Projection) String() string {
	switch p {
	case ProjectionOrtho:
		return "ortho"
	case ProjectionPerspective:
		return "perspective"
	default:
		return "unknown"
	}
}

// Euler holds rotation angles in radians, applied X, then Y, then Z.
type Euler struct {
	X, Y, Z Scalar
}

// FrameState is the read-only input of one frame.
//
// It is passed by value so a controller can keep mutating its own copy while a
// frame renders.
type FrameState struct {
	Rotation   Euler
	Camera     Orbit
	Projection Projection

	Cull        bool
	Wireframe   bool
	DepthBuffer bool
}

// DefaultOrbit looks at the origin from slightly above, behind and to the left, so
// that a unit cube at the origin shows its back, left and top faces.
func DefaultOrbit() Orbit {
	return Orbit{
		Distance: 5,
		Height:   1.2,
		Angle:    Radians(200),
	}
}

// DefaultFrameState returns an unrotated, orthographic, culled and depth-tested frame.
func DefaultFrameState() FrameState {
	return FrameState{
		Camera:      DefaultOrbit(),
		Projection:  ProjectionOrtho,
		Cull:        true,
		DepthBuffer: true,
	}
}

// usesDepth reports whether the frame takes the depth-buffered triangle path.
func (fs FrameState) usesDepth() bool {
	return fs.DepthBuffer && !fs.Wireframe
}

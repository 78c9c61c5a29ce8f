package quarkgl

// DefaultNormal is the normal reported for faces with fewer than three vertices.
var DefaultNormal = V3(0, 0, 1)

// FaceGeometry is derived from a face and the vertex positions of the current frame.
type FaceGeometry struct {
	Normal Vec3
	Center Vec3
}

// Geometry computes the face normal and center from the given vertices.
//
// vertices must be the owning model's vertices after the transform stage.
// The result is only valid for that frame.
func (f Face) Geometry(vertices []Vec3) FaceGeometry {
	return FaceGeometry{
		Normal: f.Normal(vertices),
		Center: f.Center(vertices),
	}
}

// Normal is the unit normal of the plane through the first three vertices,
// following the face winding.
func (f Face) Normal(vertices []Vec3) Vec3 {
	if len(f.Indices) < 3 {
		return DefaultNormal
	}
	v0 := vertices[f.Indices[0]]
	v1 := vertices[f.Indices[1]]
	v2 := vertices[f.Indices[2]]
	return Normalize(Cross(v1.Sub(v0), v2.Sub(v0)))
}

// Center is the mean of every vertex the face references.
func (f Face) Center(vertices []Vec3) Vec3 {
	if len(f.Indices) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, idx := range f.Indices {
		sum = sum.Add(vertices[idx])
	}
	return sum.Mul(1 / Scalar(len(f.Indices)))
}

package quarkgl

// FaceVisible reports whether a face with geometry g faces the camera at cam.
//
// The face is visible only when its normal points strictly toward the camera; an
// edge-on face is not.
func FaceVisible(g FaceGeometry, cam Vec3) bool {
	view := Normalize(cam.Sub(g.Center))
	return Dot(g.Normal, view) > 0
}

// NearPlaneRejected reports whether any projected point lies at or behind the near plane.
func NearPlaneRejected(pts []ScreenPoint) bool {
	for _, p := range pts {
		if p.Z <= NearPlane {
			return true
		}
	}
	return false
}

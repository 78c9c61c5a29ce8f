package quarkgl

import "testing"

func TestFaceVisibleAlongNormal(t *testing.T) {
	verts := []Vec3{V3(-1, -1, 0), V3(1, -1, 0), V3(1, 1, 0), V3(-1, 1, 0)}
	f := Face{Indices: []int{0, 1, 2, 3}}
	g := f.Geometry(verts)

	tests := []struct {
		name string
		cam  Vec3
		want bool
	}{
		{"along normal", g.Center.Add(g.Normal.Mul(3)), true},
		{"opposite", g.Center.Sub(g.Normal.Mul(3)), false},
		{"edge on", V3(3, 0, 0), false},
		{"oblique front", V3(4, 4, 0.5), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FaceVisible(g, tc.cam); got != tc.want {
				t.Fatalf("FaceVisible(cam=%v) = %v, want %v", tc.cam, got, tc.want)
			}
		})
	}
}

func TestFaceVisibleRotatedFace(t *testing.T) {
	r := Euler{X: 0.7, Y: -1.3, Z: 2.2}
	moved := TransformVertices(nil, cubeVertices, r, V3(1, 2, 3))
	for i, idx := range cubeFaces {
		g := Face{Indices: idx}.Geometry(moved)
		if !FaceVisible(g, g.Center.Add(g.Normal.Mul(10))) {
			t.Fatalf("face %d not visible from its own normal", i)
		}
		if FaceVisible(g, g.Center.Sub(g.Normal.Mul(10))) {
			t.Fatalf("face %d visible from behind", i)
		}
	}
}

func TestNearPlaneRejected(t *testing.T) {
	tests := []struct {
		name string
		pts  []ScreenPoint
		want bool
	}{
		{"all in front", []ScreenPoint{{Z: 1}, {Z: 2}, {Z: 0.11}}, false},
		{"one on plane", []ScreenPoint{{Z: 1}, {Z: NearPlane}, {Z: 3}}, true},
		{"one behind", []ScreenPoint{{Z: 1}, {Z: 2}, {Z: -4}}, true},
		{"empty", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NearPlaneRejected(tc.pts); got != tc.want {
				t.Fatalf("NearPlaneRejected() = %v, want %v", got, tc.want)
			}
		})
	}
}

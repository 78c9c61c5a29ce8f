package quarkgl

import "testing"

var (
	cubeVertices = []Vec3{
		V3(-1, -1, -1), V3(1, -1, -1),
		V3(1, 1, -1), V3(-1, 1, -1),
		V3(-1, -1, 1), V3(1, -1, 1),
		V3(1, 1, 1), V3(-1, 1, 1),
	}
	cubeFaces = [][]int{
		{0, 3, 2, 1}, // back
		{4, 5, 6, 7}, // front
		{0, 1, 5, 4}, // bottom
		{2, 3, 7, 6}, // top
		{0, 4, 7, 3}, // left
		{1, 2, 6, 5}, // right
	}
	cubeColors = []Color{
		RGB(200, 50, 50), RGB(50, 200, 50), RGB(50, 50, 200),
		RGB(200, 200, 50), RGB(200, 50, 200), RGB(50, 200, 200),
	}
)

func newCube(t *testing.T, pos Vec3) *Model {
	t.Helper()
	faces := make([]Face, len(cubeFaces))
	for i, idx := range cubeFaces {
		faces[i] = Face{Indices: idx, Color: cubeColors[i]}
	}
	m, err := NewModel("cube", cubeVertices, faces, pos)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

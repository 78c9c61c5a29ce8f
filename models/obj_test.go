package models

import (
	"errors"
	"strings"
	"testing"

	"quarkview/quarkgl"
)

const squareOBJ = `# unit square
o square
v -1 -1 0
v 1 -1 0
v 1 1 0 1.0
v -1 1 0
vt 0 0
vn 0 0 1

f 1/1/1 2/1/1 3/1/1
f -4//1 -2//1 -1//1
`

func TestLoadOBJ(t *testing.T) {
	m, err := LoadOBJ(strings.NewReader(squareOBJ), "square", 1)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if len(m.Vertices) != 4 {
		t.Fatalf("vertices = %d, want 4", len(m.Vertices))
	}
	if m.Vertices[2] != quarkgl.V3(1, 1, 0) {
		t.Fatalf("vertex 2 = %v", m.Vertices[2])
	}
	want := [][]int{{0, 1, 2}, {0, 2, 3}}
	if len(m.Faces) != len(want) {
		t.Fatalf("faces = %d, want %d", len(m.Faces), len(want))
	}
	for i, f := range m.Faces {
		for j, idx := range f.Indices {
			if idx != want[i][j] {
				t.Fatalf("face %d = %v, want %v", i, f.Indices, want[i])
			}
		}
		n := f.Normal(m.Vertices)
		if n != quarkgl.V3(0, 0, 1) {
			t.Fatalf("face %d normal = %v, want +z", i, n)
		}
	}
}

func TestLoadOBJErrors(t *testing.T) {
	tests := []struct {
		name, src string
	}{
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"forward reference", "v 0 0 0\nv 1 0 0\nf 1 2 3\nv 0 1 0\n"},
		{"bad float", "v 0 zero 0\n"},
		{"short vertex", "v 0 0\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"bad index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 two 3\n"},
		{"no faces", "v 0 0 0\n"},
	}
	for _, tt := range tests {
		_, err := LoadOBJ(strings.NewReader(tt.src), tt.name, 1)
		if !errors.Is(err, ErrBadOBJ) {
			t.Fatalf("%s: error = %v, want ErrBadOBJ", tt.name, err)
		}
	}
}

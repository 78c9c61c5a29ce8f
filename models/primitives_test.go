package models

import (
	"errors"
	"testing"

	"quarkview/quarkgl"
)

func centroid(vs []quarkgl.Vec3) quarkgl.Vec3 {
	var c quarkgl.Vec3
	for _, v := range vs {
		c = c.Add(v)
	}
	return c.Mul(1 / float32(len(vs)))
}

func TestBuiltinsFaceOutward(t *testing.T) {
	for _, name := range []string{Cube, Sphere, Tetrahedron, Pyramid} {
		s, err := Scene(name, 1)
		if err != nil {
			t.Fatalf("Scene(%q): %v", name, err)
		}
		m := s[0]
		mid := centroid(m.Vertices)
		for fi, f := range m.Faces {
			g := f.Geometry(m.Vertices)
			out := g.Center.Sub(mid)
			if d := quarkgl.Dot(g.Normal, out); d <= 0 {
				t.Fatalf("%s face %d: normal %v points inward (dot %v)", name, fi, g.Normal, d)
			}
		}
	}
}

func TestBuiltinCounts(t *testing.T) {
	tests := []struct {
		name          string
		models, faces int
		verts         int
	}{
		{Cube, 1, 6, 8},
		{Sphere, 1, 2*SphereSlices*SphereStacks - 2*SphereSlices, (SphereStacks + 1) * (SphereSlices + 1)},
		{Tetrahedron, 1, 4, 4},
		{Pyramid, 1, 5, 5},
		{Multiple, 3, 17, 21},
	}
	for _, tt := range tests {
		s, err := Scene(tt.name, 7)
		if err != nil {
			t.Fatalf("Scene(%q): %v", tt.name, err)
		}
		faces, verts := s.Totals()
		if len(s) != tt.models || faces != tt.faces || verts != tt.verts {
			t.Fatalf("%s: models=%d faces=%d verts=%d, want %d %d %d",
				tt.name, len(s), faces, verts, tt.models, tt.faces, tt.verts)
		}
	}
}

func TestMultiplePositions(t *testing.T) {
	s, err := Scene(Multiple, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []quarkgl.Vec3{quarkgl.V3(-2, 0, 0), quarkgl.V3(2, 0, 0), quarkgl.V3(0, 0, 2)}
	for i, m := range s {
		if m.Position != want[i] {
			t.Fatalf("model %d (%s) at %v, want %v", i, m.Name, m.Position, want[i])
		}
	}
	if s[0].ID == s[1].ID {
		t.Fatalf("cubes share id %v", s[0].ID)
	}
}

func TestMultipleCubesColoredIndependently(t *testing.T) {
	s, err := Scene(Multiple, 1)
	if err != nil {
		t.Fatal(err)
	}
	left, right := s[0], s[1]
	if &left.Faces[0] == &right.Faces[0] {
		t.Fatal("cubes share one face list")
	}
	same := 0
	for i := range left.Faces {
		if left.Faces[i].Color == right.Faces[i].Color {
			same++
		}
	}
	if same == len(left.Faces) {
		t.Fatal("both cubes have identical face colors")
	}
}

func TestSceneUnknown(t *testing.T) {
	_, err := Scene("teapot", 1)
	if !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("Scene(teapot) error = %v, want ErrUnknownModel", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	want := []string{Cube, Multiple, Pyramid, Sphere, Tetrahedron}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestPaletteDeterministic(t *testing.T) {
	a, b := NewPalette(42), NewPalette(42)
	for i := 0; i < 16; i++ {
		ca, cb := a.Next(), b.Next()
		if ca != cb {
			t.Fatalf("color %d: %v != %v", i, ca, cb)
		}
		if ca.A != 0xFF {
			t.Fatalf("color %d alpha = %d", i, ca.A)
		}
	}
	s1, _ := Scene(Cube, 3)
	s2, _ := Scene(Cube, 3)
	for i := range s1[0].Faces {
		if s1[0].Faces[i].Color != s2[0].Faces[i].Color {
			t.Fatalf("face %d color differs between builds", i)
		}
	}
}

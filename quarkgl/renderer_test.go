package quarkgl

import (
	"testing"

	"github.com/chewxy/math32"
)

func countColor(tgt *ImageTarget, c Color) int {
	w, h := tgt.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if tgt.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestRenderCubeShowsThreeFaces(t *testing.T) {
	cube := newCube(t, Vec3{})
	for _, proj := range []Projection{ProjectionOrtho, ProjectionPerspective} {
		t.Run(proj.String(), func(t *testing.T) {
			fs := DefaultFrameState()
			fs.Projection = proj

			tgt := NewImageTarget(800, 600)
			st := NewRenderer().Render(tgt, Scene{cube}, fs)

			if st.FacesDrawn != 3 || st.FacesCulled != 3 || st.FacesClipped != 0 {
				t.Fatalf("stats = %+v, want 3 drawn, 3 culled, 0 clipped", st)
			}
			// The orthographic projection drops Z, so only the back face keeps an
			// area there; top and left collapse to lines. Perspective shows all three.
			visible := []int{0}
			if proj == ProjectionPerspective {
				visible = []int{0, 3, 4}
			}
			for _, i := range visible {
				if countColor(tgt, cubeColors[i]) == 0 {
					t.Fatalf("face %d not on screen", i)
				}
			}
			for _, i := range []int{1, 2, 5} {
				if n := countColor(tgt, cubeColors[i]); n != 0 {
					t.Fatalf("culled face %d has %d pixels", i, n)
				}
			}
		})
	}
}

func TestRenderCameraOnPositiveZIsNearRejected(t *testing.T) {
	cube := newCube(t, Vec3{})
	fs := DefaultFrameState()
	fs.Camera = Orbit{Distance: 5}

	tgt := NewImageTarget(320, 240)
	st := NewRenderer().Render(tgt, Scene{cube}, fs)
	// Only the front face survives culling, and every camera-relative depth is negative.
	if st.FacesCulled != 5 || st.FacesClipped != 1 || st.FacesDrawn != 0 {
		t.Fatalf("stats = %+v, want 5 culled, 1 clipped, 0 drawn", st)
	}
	if n := countColor(tgt, Background); n != 320*240 {
		t.Fatalf("background pixels = %d, want the whole surface", n)
	}
}

func TestRenderWithoutCullingDrawsEveryFace(t *testing.T) {
	cube := newCube(t, Vec3{})
	fs := DefaultFrameState()
	fs.Cull = false
	fs.Wireframe = true

	tgt := NewImageTarget(800, 600)
	st := NewRenderer().Render(tgt, Scene{cube}, fs)
	if st.FacesDrawn != 6 || st.FacesCulled != 0 {
		t.Fatalf("stats = %+v, want 6 drawn", st)
	}
	if countColor(tgt, White) == 0 {
		t.Fatal("wireframe drew no white pixels")
	}
	for i, c := range cubeColors {
		if n := countColor(tgt, c); n != 0 {
			t.Fatalf("wireframe filled face %d (%d pixels)", i, n)
		}
	}
}

func TestRenderDepthResolvesOverlap(t *testing.T) {
	// Two cubes with the same screen footprint; the camera sits on the -Z side.
	fs := DefaultFrameState()
	fs.Cull = false
	nearPos := V3(0, 0, -2.5)
	farPos := V3(0, 0, 1.5)

	nearCube := newCube(t, nearPos)
	farCube := newCube(t, farPos)
	farCube.Faces = append([]Face(nil), farCube.Faces...)
	for i := range farCube.Faces {
		farCube.Faces[i].Color = blue
	}

	centerColor := func(order Scene) Color {
		tgt := NewImageTarget(800, 600)
		NewRenderer().Render(tgt, order, fs)
		p := NewProjector(800, 600, fs).Project(nearPos)
		return tgt.At(int(p.X), int(p.Y))
	}

	for _, order := range []Scene{{nearCube, farCube}, {farCube, nearCube}} {
		if got := centerColor(order); got != cubeColors[0] {
			t.Fatalf("center pixel = %v, want the nearer cube's back face %v", got, cubeColors[0])
		}
	}
}

func TestRenderFlatDrawsInSceneOrder(t *testing.T) {
	// Same layout as the depth test, but without a depth buffer the model
	// drawn last owns the overlap whichever cube is nearer.
	fs := DefaultFrameState()
	fs.Cull = false
	fs.DepthBuffer = false
	nearPos := V3(0, 0, -2.5)

	nearCube := newCube(t, nearPos)
	farCube := newCube(t, V3(0, 0, 1.5))
	farCube.Faces = append([]Face(nil), farCube.Faces...)
	for i := range farCube.Faces {
		farCube.Faces[i].Color = blue
	}

	center := NewProjector(800, 600, fs).Project(nearPos)
	tests := []struct {
		name  string
		scene Scene
		want  Color
	}{
		{"far last", Scene{nearCube, farCube}, blue},
		// Back and front share a footprint in ortho; front is drawn second.
		{"near last", Scene{farCube, nearCube}, cubeColors[1]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt := NewImageTarget(800, 600)
			NewRenderer().Render(tgt, tt.scene, fs)
			if got := tgt.At(int(center.X), int(center.Y)); got != tt.want {
				t.Fatalf("center pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderFlatLeavesDepthBuffer(t *testing.T) {
	cube := newCube(t, Vec3{})
	r := NewRenderer()
	tgt := NewImageTarget(320, 240)
	fs := DefaultFrameState()

	r.Render(tgt, Scene{cube}, fs)
	c := NewProjector(320, 240, fs).Project(Vec3{})
	x, y := int(c.X), int(c.Y)
	before := r.Rasterizer().DepthAt(x, y)
	if math32.IsInf(before, 1) {
		t.Fatal("depth pass left the cube center at +Inf")
	}

	fs.DepthBuffer = false
	for _, wire := range []bool{false, true} {
		fs.Wireframe = wire
		r.Render(tgt, Scene{}, fs)
		if got := r.Rasterizer().DepthAt(x, y); got != before {
			t.Fatalf("wireframe=%v: depth at center = %v, want %v kept", wire, got, before)
		}
	}
}

func TestRenderFarOffscreenVertex(t *testing.T) {
	faceColor := RGB(10, 200, 90)
	tri, err := NewModel("sliver", []Vec3{V3(-0.25, -0.25, 0), V3(1e28, 0, 0), V3(-0.25, 0.25, 0)},
		[]Face{{Indices: []int{0, 1, 2}, Color: faceColor}}, Vec3{})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	fs := DefaultFrameState()
	fs.Projection = ProjectionOrtho
	fs.Cull = false
	fs.DepthBuffer = false
	fs.Camera = Orbit{Distance: 5, Angle: math32.Pi}

	for _, wire := range []bool{false, true} {
		fs.Wireframe = wire
		tgt := NewImageTarget(64, 64)
		st := NewRenderer().Render(tgt, Scene{tri}, fs)
		if st.FacesDrawn != 1 {
			t.Fatalf("wireframe=%v: stats = %+v, want 1 drawn", wire, st)
		}
		if wire {
			if countColor(tgt, White) == 0 {
				t.Fatal("wireframe drew no edges")
			}
			continue
		}
		if got := tgt.At(40, 32); got != faceColor {
			t.Fatalf("pixel (40,32) = %v, want %v", got, faceColor)
		}
	}
}

func TestRenderStatsTotals(t *testing.T) {
	a := newCube(t, V3(-2, 0, 0))
	b := newCube(t, V3(2, 0, 0))
	st := NewRenderer().Render(NewImageTarget(64, 64), Scene{a, nil, b}, DefaultFrameState())
	if st.Models != 2 || st.Faces != 12 || st.Vertices != 16 {
		t.Fatalf("stats = %+v, want 2 models, 12 faces, 16 vertices", st)
	}
	faces, verts := Scene{a, b}.Totals()
	if faces != 12 || verts != 16 {
		t.Fatalf("Totals() = %d, %d, want 12, 16", faces, verts)
	}
}

func TestRenderResetsDepthEachFrame(t *testing.T) {
	cube := newCube(t, Vec3{})
	r := NewRenderer()
	tgt := NewImageTarget(800, 600)
	fs := DefaultFrameState()

	first := r.Render(tgt, Scene{cube}, fs)
	second := r.Render(tgt, Scene{cube}, fs)
	if first.Pixels == 0 || first.Pixels != second.Pixels {
		t.Fatalf("pixels per frame = %d then %d, want equal and non-zero", first.Pixels, second.Pixels)
	}
	if d := r.Rasterizer().DepthAt(0, 0); !math32.IsInf(d, 1) {
		t.Fatalf("background depth = %v, want +Inf", d)
	}
}

func TestRenderRotationIsGlobal(t *testing.T) {
	a := newCube(t, V3(-2, 0, 0))
	b := newCube(t, V3(2, 0, 0))
	fs := DefaultFrameState()
	fs.Rotation = Euler{Y: Radians(90)}
	st := NewRenderer().Render(NewImageTarget(800, 600), Scene{a, b}, fs)
	if st.FacesDrawn+st.FacesCulled+st.FacesClipped != 12 {
		t.Fatalf("stats = %+v, every face should be accounted for", st)
	}
}

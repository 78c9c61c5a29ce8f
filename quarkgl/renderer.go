package quarkgl

// Stats describes one rendered frame. It is informational only.
type Stats struct {
	Models   int
	Faces    int // faces in the scene
	Vertices int // vertices in the scene

	FacesDrawn   int
	FacesCulled  int
	FacesClipped int // rejected by the near plane
	Pixels       int
}

// Renderer runs the fixed pipeline.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	ClearColor Color

	raster Rasterizer
	world  []Vec3
	screen []ScreenPoint
	face   []ScreenPoint
}

// NewRenderer creates a renderer with the default clear color.
func NewRenderer() *Renderer {
	return &Renderer{ClearColor: Background}
}

// Rasterizer exposes the renderer's rasterizer, mostly for inspecting the depth buffer.
func (r *Renderer) Rasterizer() *Rasterizer { return &r.raster }

// Render draws the scene into t for the given frame state.
func (r *Renderer) Render(t Target, s Scene, fs FrameState) Stats {
	var st Stats
	if r == nil || t == nil {
		return st
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return st
	}
	t.Clear(r.ClearColor)

	depth := fs.usesDepth()
	if depth {
		r.raster.ResetDepth(w, h)
	}

	proj := NewProjector(w, h, fs)
	cam := proj.Camera

	for _, m := range s {
		if m == nil {
			continue
		}
		st.Models++
		st.Faces += len(m.Faces)
		st.Vertices += len(m.Vertices)
		r.renderModel(t, m, fs, proj, cam, depth, &st)
	}
	return st
}

func (r *Renderer) renderModel(t Target, m *Model, fs FrameState, proj Projector, cam Vec3, depth bool, st *Stats) {
	r.world = TransformVertices(r.world, m.Vertices, fs.Rotation, m.Position)
	r.screen = proj.ProjectAll(r.screen, r.world)

	for _, f := range m.Faces {
		if !faceInRange(f, len(r.world)) {
			continue
		}
		if fs.Cull && !FaceVisible(f.Geometry(r.world), cam) {
			st.FacesCulled++
			continue
		}

		r.face = r.face[:0]
		for _, idx := range f.Indices {
			r.face = append(r.face, r.screen[idx])
		}
		if NearPlaneRejected(r.face) {
			st.FacesClipped++
			continue
		}

		switch {
		case depth:
			st.Pixels += r.raster.FillFace(t, r.face, f.Color)
		case fs.Wireframe:
			st.Pixels += r.raster.DrawWireframe(t, r.face)
		default:
			st.Pixels += r.raster.DrawFlat(t, r.face, f.Color)
		}
		st.FacesDrawn++
	}
}

func faceInRange(f Face, n int) bool {
	for _, idx := range f.Indices {
		if idx < 0 || idx >= n {
			return false
		}
	}
	return true
}

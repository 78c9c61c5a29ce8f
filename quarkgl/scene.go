package quarkgl

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Face is a polygon referencing vertices of its owning model by index.
//
// The index order defines the winding and therefore the outward normal.
type Face struct {
	Indices []int
	Color   Color
}

// Model owns a vertex list, faces indexing into it and a world-space offset.
type Model struct {
	ID       uuid.UUID
	Name     string
	Vertices []Vec3
	Faces    []Face
	Position Vec3
}

// ErrFaceIndex is returned when a face references a vertex its model does not have.
var ErrFaceIndex = errors.New("face index out of range")

// NewModel validates the faces against the vertex list and assigns a fresh id.
func NewModel(name string, vertices []Vec3, faces []Face, position Vec3) (*Model, error) {
	m := &Model{
		Name:     name,
		Vertices: vertices,
		Faces:    faces,
		Position: position,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "model id")
	}
	m.ID = id
	return m, nil
}

// Validate checks that every face index is inside the vertex list.
func (m *Model) Validate() error {
	if m == nil {
		return errors.New("nil model")
	}
	for fi, f := range m.Faces {
		for _, idx := range f.Indices {
			if idx < 0 || idx >= len(m.Vertices) {
				return errors.Wrapf(ErrFaceIndex, "model %q: face %d: index %d (vertices: %d)", m.Name, fi, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// At returns a copy of m placed at position with a fresh id. Vertices and
// faces are shared.
func (m *Model) At(position Vec3) (*Model, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrapf(err, "model %q id", m.Name)
	}
	c := *m
	c.Position = position
	c.ID = id
	return &c, nil
}

// Scene is the ordered list of models rendered in one frame.
type Scene []*Model

// Totals returns the face and vertex counts over every model in the scene.
func (s Scene) Totals() (faces, vertices int) {
	for _, m := range s {
		if m == nil {
			continue
		}
		faces += len(m.Faces)
		vertices += len(m.Vertices)
	}
	return faces, vertices
}

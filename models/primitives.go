// Package models builds the meshes shown by the viewer.
//
// Every built-in model winds its faces counter-clockwise when seen from outside,
// so face normals point away from the model.
package models

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"quarkview/quarkgl"
)

// Names of the built-in scenes.
const (
	Cube        = "cube"
	Sphere      = "sphere"
	Tetrahedron = "tetrahedron"
	Pyramid     = "pyramid"
	Multiple    = "multiple"
)

// Sphere tessellation.
const (
	SphereSlices = 16
	SphereStacks = 12
)

// ErrUnknownModel is returned by Scene for a name it does not know.
var ErrUnknownModel = errors.New("unknown model")

type builder func(p *Palette) (quarkgl.Scene, error)

var builders = map[string]builder{
	Cube:        single(Cube, cubeMesh),
	Sphere:      single(Sphere, sphereMesh),
	Tetrahedron: single(Tetrahedron, tetrahedronMesh),
	Pyramid:     single(Pyramid, pyramidMesh),
	Multiple:    multiple,
}

// Names returns the built-in scene names in a stable order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Scene builds the named scene with face colors from a palette seeded by seed.
func Scene(name string, seed uint64) (quarkgl.Scene, error) {
	b, ok := builders[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownModel, "%q", name)
	}
	return b(NewPalette(seed))
}

type mesh func() ([]quarkgl.Vec3, [][]int)

func single(name string, m mesh) builder {
	return func(p *Palette) (quarkgl.Scene, error) {
		model, err := build(name, m, p, quarkgl.Vec3{})
		if err != nil {
			return nil, err
		}
		return quarkgl.Scene{model}, nil
	}
}

// multiple places two cubes side by side and a pyramid in front of them.
func multiple(p *Palette) (quarkgl.Scene, error) {
	left, err := build("cube-left", cubeMesh, p, quarkgl.V3(-2, 0, 0))
	if err != nil {
		return nil, err
	}
	right, err := build("cube-right", cubeMesh, p, quarkgl.V3(2, 0, 0))
	if err != nil {
		return nil, err
	}
	pyr, err := build(Pyramid, pyramidMesh, p, quarkgl.V3(0, 0, 2))
	if err != nil {
		return nil, err
	}
	return quarkgl.Scene{left, right, pyr}, nil
}

func build(name string, m mesh, p *Palette, pos quarkgl.Vec3) (*quarkgl.Model, error) {
	verts, idx := m()
	model, err := quarkgl.NewModel(name, verts, p.Faces(idx), pos)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", name)
	}
	return model, nil
}

func cubeMesh() ([]quarkgl.Vec3, [][]int) {
	v := []quarkgl.Vec3{
		quarkgl.V3(-1, -1, -1), quarkgl.V3(1, -1, -1),
		quarkgl.V3(1, 1, -1), quarkgl.V3(-1, 1, -1),
		quarkgl.V3(-1, -1, 1), quarkgl.V3(1, -1, 1),
		quarkgl.V3(1, 1, 1), quarkgl.V3(-1, 1, 1),
	}
	f := [][]int{
		{0, 3, 2, 1}, // back
		{4, 5, 6, 7}, // front
		{0, 1, 5, 4}, // bottom
		{2, 3, 7, 6}, // top
		{0, 4, 7, 3}, // left
		{1, 2, 6, 5}, // right
	}
	return v, f
}

// sphereMesh is a UV sphere of radius 1. The polar rows are single triangles
// since the other half of each quad collapses onto the pole.
func sphereMesh() ([]quarkgl.Vec3, [][]int) {
	verts := make([]quarkgl.Vec3, 0, (SphereStacks+1)*(SphereSlices+1))
	for i := 0; i <= SphereStacks; i++ {
		sinPhi, cosPhi := math32.Sincos(math32.Pi * float32(i) / SphereStacks)
		for j := 0; j <= SphereSlices; j++ {
			sinTheta, cosTheta := math32.Sincos(2 * math32.Pi * float32(j) / SphereSlices)
			verts = append(verts, quarkgl.V3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta))
		}
	}

	faces := make([][]int, 0, 2*SphereStacks*SphereSlices)
	for i := 0; i < SphereStacks; i++ {
		for j := 0; j < SphereSlices; j++ {
			first := i*(SphereSlices+1) + j
			second := first + 1
			third := (i+1)*(SphereSlices+1) + j
			fourth := third + 1

			if i < SphereStacks-1 {
				faces = append(faces, []int{first, fourth, third})
			}
			if i > 0 {
				faces = append(faces, []int{first, second, fourth})
			}
		}
	}
	return verts, faces
}

func tetrahedronMesh() ([]quarkgl.Vec3, [][]int) {
	v := []quarkgl.Vec3{
		quarkgl.V3(0, 1, 0),
		quarkgl.V3(0.87, -0.5, 0),
		quarkgl.V3(-0.87, -0.5, 0),
		quarkgl.V3(0, 0, 1.41),
	}
	f := [][]int{
		{0, 1, 2}, // base
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	return v, f
}

func pyramidMesh() ([]quarkgl.Vec3, [][]int) {
	v := []quarkgl.Vec3{
		quarkgl.V3(0, 1, 0), // apex
		quarkgl.V3(-1, -1, -1),
		quarkgl.V3(1, -1, -1),
		quarkgl.V3(1, -1, 1),
		quarkgl.V3(-1, -1, 1),
	}
	f := [][]int{
		{0, 2, 1},
		{0, 3, 2},
		{0, 4, 3},
		{0, 1, 4},
		{1, 2, 3, 4}, // base
	}
	return v, f
}

package models

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"quarkview/quarkgl"
)

// ErrBadOBJ is wrapped by every OBJ parse failure.
var ErrBadOBJ = errors.New("malformed obj")

// LoadOBJ reads the "v" and "f" records of a Wavefront OBJ stream into a model.
// Face tokens may carry texture and normal references ("7/2/5", "7//5"); only
// the vertex index is used. Negative indices count back from the last vertex
// read so far. Every other record is ignored.
func LoadOBJ(r io.Reader, name string, seed uint64) (*quarkgl.Model, error) {
	var (
		verts []quarkgl.Vec3
		idx   [][]int
	)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d", name, line)
			}
			verts = append(verts, v)
		case "f":
			f, err := parseFace(fields[1:], len(verts))
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d", name, line)
			}
			idx = append(idx, f)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	if len(idx) == 0 {
		return nil, errors.Wrapf(ErrBadOBJ, "%s: no faces", name)
	}
	model, err := quarkgl.NewModel(name, verts, NewPalette(seed).Faces(idx), quarkgl.Vec3{})
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", name)
	}
	return model, nil
}

func parseVertex(fields []string) (quarkgl.Vec3, error) {
	// A fourth (w) coordinate is allowed and ignored.
	if len(fields) < 3 {
		return quarkgl.Vec3{}, errors.Wrapf(ErrBadOBJ, "vertex has %d coordinates", len(fields))
	}
	var c [3]float32
	for i := range c {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return quarkgl.Vec3{}, errors.Wrapf(ErrBadOBJ, "vertex coordinate %q", fields[i])
		}
		c[i] = float32(f)
	}
	return quarkgl.V3(c[0], c[1], c[2]), nil
}

func parseFace(fields []string, nverts int) ([]int, error) {
	if len(fields) < 3 {
		return nil, errors.Wrapf(ErrBadOBJ, "face has %d vertices", len(fields))
	}
	out := make([]int, len(fields))
	for i, tok := range fields {
		ref, _, _ := strings.Cut(tok, "/")
		n, err := strconv.Atoi(ref)
		if err != nil {
			return nil, errors.Wrapf(ErrBadOBJ, "face index %q", tok)
		}
		switch {
		case n > 0:
			n--
		case n < 0:
			n += nverts
		default:
			return nil, errors.Wrap(ErrBadOBJ, "face index 0, indices start at 1")
		}
		if n < 0 || n >= nverts {
			return nil, errors.Wrapf(ErrBadOBJ, "face index %s out of range (%d vertices)", ref, nverts)
		}
		out[i] = n
	}
	return out, nil
}

package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"quarkview/models"
	"quarkview/quarkgl"
)

// Flags registers the scene and frame flags shared by the binaries on fs and
// returns a function that copies the parsed values into cfg. Angles are degrees.
func Flags(fs *flag.FlagSet, cfg *Config) func() {
	var (
		rx, ry, rz = quarkgl.Degrees(cfg.Frame.Rotation.X), quarkgl.Degrees(cfg.Frame.Rotation.Y), quarkgl.Degrees(cfg.Frame.Rotation.Z)
		angle      = quarkgl.Degrees(cfg.Frame.Camera.Angle)
		dist       = cfg.Frame.Camera.Distance
		height     = cfg.Frame.Camera.Height
		persp      = cfg.Frame.Projection == quarkgl.ProjectionPerspective
		cull       = cfg.Frame.Cull
		wire       = cfg.Frame.Wireframe
		depth      = cfg.Frame.DepthBuffer
	)
	fs.StringVar(&cfg.Model, "model", cfg.Model, fmt.Sprintf("Built-in model: %s.", strings.Join(models.Names(), "|")))
	fs.StringVar(&cfg.OBJPath, "obj", cfg.OBJPath, "Load a Wavefront OBJ file instead of a built-in model.")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Face color seed.")
	fs.Func("rx", "Rotation about X in degrees.", scalarVar(&rx))
	fs.Func("ry", "Rotation about Y in degrees.", scalarVar(&ry))
	fs.Func("rz", "Rotation about Z in degrees.", scalarVar(&rz))
	fs.Func("angle", "Camera orbit angle in degrees.", scalarVar(&angle))
	fs.Func("dist", "Camera distance from the origin.", scalarVar(&dist))
	fs.Func("height", "Camera height.", scalarVar(&height))
	fs.BoolVar(&persp, "perspective", persp, "Perspective projection (default orthographic).")
	fs.BoolVar(&cull, "cull", cull, "Backface culling.")
	fs.BoolVar(&wire, "wireframe", wire, "Wireframe rendering.")
	fs.BoolVar(&depth, "depth", depth, "Depth-buffered rasterization.")

	return func() {
		f := &cfg.Frame
		f.Rotation = quarkgl.Euler{X: quarkgl.Radians(rx), Y: quarkgl.Radians(ry), Z: quarkgl.Radians(rz)}
		f.Camera = quarkgl.Orbit{Distance: dist, Height: height, Angle: quarkgl.Radians(angle)}
		f.Projection = quarkgl.ProjectionOrtho
		if persp {
			f.Projection = quarkgl.ProjectionPerspective
		}
		f.Cull = cull
		f.Wireframe = wire
		f.DepthBuffer = depth
	}
}

func scalarVar(v *quarkgl.Scalar) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return err
		}
		*v = quarkgl.Scalar(f)
		return nil
	}
}

package app

import (
	"quarkview/models"
	"quarkview/quarkgl"
)

// Config holds the viewer settings. Angles are radians; the command line
// converts from degrees before filling it in.
type Config struct {
	Model   string // built-in scene name, ignored when OBJPath is set
	OBJPath string
	Seed    uint64 // face palette seed

	Frame      quarkgl.FrameState
	Controller quarkgl.OrbitController

	RotateStep quarkgl.Scalar // per key press
	OrbitStep  quarkgl.Scalar
	ZoomStep   quarkgl.Scalar
	HeightStep quarkgl.Scalar
	Spin       quarkgl.Scalar // radians per second about Y, 0 disables

	HUD          bool
	LogEvery     int // frames between stat log lines, 0 disables
	SnapshotPath string
}

// DefaultConfig returns the settings the viewer starts with.
func DefaultConfig() Config {
	return Config{
		Model: models.Cube,
		Seed:  1,
		Frame: quarkgl.DefaultFrameState(),
		Controller: quarkgl.OrbitController{
			MinDistance: 2,
			MaxDistance: 15,
			MinHeight:   -5,
			MaxHeight:   5,
		},
		RotateStep: quarkgl.Radians(5),
		OrbitStep:  quarkgl.Radians(5),
		ZoomStep:   0.25,
		HeightStep: 0.25,
		HUD:        true,
		LogEvery:   300,
	}
}

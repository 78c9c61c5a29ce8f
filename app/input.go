package app

import (
	"github.com/pkg/errors"

	"quarkview/hal"
	"quarkview/quarkgl"
)

// handleInput applies every pending key event. hal.ErrStop asks the runner to exit.
func (v *viewer) handleInput() error {
	for {
		select {
		case ev := <-v.kbd:
			if !ev.Press {
				continue
			}
			if err := v.apply(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) apply(ev hal.KeyEvent) error {
	c := v.cfg
	ctl := c.Controller
	switch ev.Code {
	case hal.KeyUp:
		v.fs.Rotation = v.fs.Rotation.Turn(-c.RotateStep, 0, 0)
	case hal.KeyDown:
		v.fs.Rotation = v.fs.Rotation.Turn(c.RotateStep, 0, 0)
	case hal.KeyLeft:
		v.fs.Rotation = v.fs.Rotation.Turn(0, -c.RotateStep, 0)
	case hal.KeyRight:
		v.fs.Rotation = v.fs.Rotation.Turn(0, c.RotateStep, 0)
	case hal.KeyPageUp:
		v.fs.Rotation = v.fs.Rotation.Turn(0, 0, c.RotateStep)
	case hal.KeyPageDown:
		v.fs.Rotation = v.fs.Rotation.Turn(0, 0, -c.RotateStep)
	case hal.KeyTab:
		return v.switchModel(1)
	case hal.KeyHome:
		v.fs = c.Frame
	case hal.KeyEscape:
		return hal.ErrStop
	case hal.KeyF1:
		v.hud = !v.hud
	case hal.KeyF2:
		v.help = !v.help
	case hal.KeyF3:
		return v.snapshot()
	}

	switch ev.Rune {
	case 'a':
		v.fs.Camera = ctl.Orbit(v.fs.Camera, -c.OrbitStep)
	case 'd':
		v.fs.Camera = ctl.Orbit(v.fs.Camera, c.OrbitStep)
	case '+', '=':
		v.fs.Camera = ctl.Zoom(v.fs.Camera, -c.ZoomStep)
	case '-':
		v.fs.Camera = ctl.Zoom(v.fs.Camera, c.ZoomStep)
	case 'r':
		v.fs.Camera = ctl.Raise(v.fs.Camera, c.HeightStep)
	case 'f':
		v.fs.Camera = ctl.Raise(v.fs.Camera, -c.HeightStep)
	case 'p':
		if v.fs.Projection == quarkgl.ProjectionOrtho {
			v.fs.Projection = quarkgl.ProjectionPerspective
		} else {
			v.fs.Projection = quarkgl.ProjectionOrtho
		}
	case 'c':
		v.fs.Cull = !v.fs.Cull
	case 'w':
		v.fs.Wireframe = !v.fs.Wireframe
	case 'z':
		v.fs.DepthBuffer = !v.fs.DepthBuffer
	case 'm':
		return v.switchModel(1)
	case 'M':
		return v.switchModel(-1)
	case 'q':
		return hal.ErrStop
	}
	return nil
}

func (v *viewer) switchModel(delta int) error {
	if err := v.scenes.step(delta); err != nil {
		return errors.Wrap(err, "switch model")
	}
	v.logf("model -> %s", v.scenes.name())
	v.logModels()
	return nil
}

// snapshot writes the last presented frame to Config.SnapshotPath.
func (v *viewer) snapshot() error {
	if v.cfg.SnapshotPath == "" {
		v.logf("snapshot: no path configured")
		return nil
	}
	img := hal.Snapshot(v.fb)
	if img == nil {
		return nil
	}
	if err := WritePNG(v.cfg.SnapshotPath, img); err != nil {
		v.logf("snapshot: %v", err)
		return nil
	}
	v.logf("snapshot: wrote %s", v.cfg.SnapshotPath)
	return nil
}

// Package app is the interactive viewer: it reads keyboard input into a frame
// state, renders the current scene into the HAL framebuffer and overlays a HUD.
package app

import (
	"fmt"

	"github.com/pkg/errors"

	"quarkview/hal"
	"quarkview/internal/buildinfo"
	"quarkview/quarkgl"
)

type viewer struct {
	h   hal.HAL
	log hal.Logger
	fb  hal.Framebuffer
	kbd <-chan hal.KeyEvent
	clk <-chan uint64

	cfg    Config
	fs     quarkgl.FrameState
	r      *quarkgl.Renderer
	target quarkgl.RGB565Target
	scenes *sceneList

	hud  bool
	help bool

	frame   uint64
	lastSeq uint64
	fps     fpsCounter
	stats   quarkgl.Stats
}

// New starts the viewer with DefaultConfig.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig builds the viewer and returns its per-frame step. Setup
// failures surface as the first step's error.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	v, err := newViewer(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return v.step
}

func newViewer(h hal.HAL, cfg Config) (*viewer, error) {
	v := &viewer{
		h:   h,
		log: h.Logger(),
		cfg: cfg,
		fs:  cfg.Frame,
		r:   quarkgl.NewRenderer(),
		hud: cfg.HUD,
	}
	if d := h.Display(); d != nil {
		v.fb = d.Framebuffer()
	}
	if v.fb == nil || v.fb.Format() != hal.PixelFormatRGB565 {
		return nil, errors.Wrap(hal.ErrNotImplemented, "viewer needs an RGB565 framebuffer")
	}
	v.target = quarkgl.RGB565Target{
		Buf:    v.fb.Buffer(),
		Stride: v.fb.StrideBytes(),
		W:      v.fb.Width(),
		H:      v.fb.Height(),
	}
	if in := h.Input(); in != nil {
		if k := in.Keyboard(); k != nil {
			v.kbd = k.Events()
		}
	}
	if t := h.Time(); t != nil {
		v.clk = t.Ticks()
	}

	scenes, err := newSceneList(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "load scene")
	}
	v.scenes = scenes

	v.logf("quarkview %s: %dx%d model=%s projection=%s", buildinfo.String(), v.target.W, v.target.H, scenes.name(), v.fs.Projection)
	v.logModels()
	return v, nil
}

func (v *viewer) step() (err error) {
	defer recoverStep(v.h, &err)

	if err := v.handleInput(); err != nil {
		return err
	}
	ms := v.elapsed()
	if v.cfg.Spin != 0 && ms > 0 {
		v.fs.Rotation = v.fs.Rotation.Turn(0, v.cfg.Spin*quarkgl.Scalar(ms)/1000, 0)
	}

	v.render()
	v.frame++
	v.fps.add(ms)

	if v.cfg.LogEvery > 0 && v.frame%uint64(v.cfg.LogEvery) == 0 {
		v.logStats()
	}
	return nil
}

func (v *viewer) render() {
	v.stats = v.r.Render(&v.target, v.scenes.scene(), v.fs)
	if v.hud {
		drawHUD(&v.target, hudLines(v.scenes.name(), v.fs, v.stats, v.fps.rate, v.help))
	}
	_ = v.fb.Present()
}

// elapsed drains the tick stream and returns the milliseconds since the last step.
func (v *viewer) elapsed() uint64 {
	var ms uint64
	for {
		select {
		case seq := <-v.clk:
			if v.lastSeq == 0 || seq <= v.lastSeq {
				ms++
			} else {
				ms += seq - v.lastSeq
			}
			v.lastSeq = seq
		default:
			return ms
		}
	}
}

func (v *viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (v *viewer) logModels() {
	for _, m := range v.scenes.scene() {
		v.logf("model %s id=%s faces=%d verts=%d pos=(%g,%g,%g)",
			m.Name, m.ID, len(m.Faces), len(m.Vertices), m.Position.X, m.Position.Y, m.Position.Z)
	}
}

func (v *viewer) logStats() {
	st := v.stats
	v.logf("frame=%d model=%s faces=%d drawn=%d culled=%d clipped=%d pixels=%d fps=%d",
		v.frame, v.scenes.name(), st.Faces, st.FacesDrawn, st.FacesCulled, st.FacesClipped, st.Pixels, v.fps.rate)
}

// fpsCounter reports frames per second, refreshed once per second of ticks.
type fpsCounter struct {
	frames int
	ms     uint64
	rate   int
}

func (c *fpsCounter) add(ms uint64) {
	c.frames++
	c.ms += ms
	if c.ms < 1000 {
		return
	}
	c.rate = int(uint64(c.frames) * 1000 / c.ms)
	c.frames = 0
	c.ms = 0
}

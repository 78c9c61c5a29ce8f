package app

import (
	"fmt"
	"image/color"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"quarkview/internal/buildinfo"
	"quarkview/quarkgl"
)

const (
	hudLineHeight = 10
	hudMargin     = 6
)

var (
	hudFont  tinyfont.Fonter = &proggy.TinySZ8pt7b
	hudTitle                 = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudText                  = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

// targetDisplayer lets tinyfont draw into a quarkgl.Target.
type targetDisplayer struct {
	t quarkgl.Target
}

var _ drivers.Displayer = targetDisplayer{}

func (d targetDisplayer) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), quarkgl.RGBA(c.R, c.G, c.B, c.A))
}

func (d targetDisplayer) Display() error { return nil }

// hudLines describes the frame just rendered.
func hudLines(model string, fs quarkgl.FrameState, st quarkgl.Stats, fps int, help bool) []string {
	var flags []string
	flags = append(flags, fs.Projection.String())
	if fs.Cull {
		flags = append(flags, "cull")
	}
	if fs.Wireframe {
		flags = append(flags, "wire")
	}
	if fs.DepthBuffer {
		flags = append(flags, "depth")
	}

	lines := []string{
		fmt.Sprintf("quarkview %s  %s  fps %d", buildinfo.Short(), model, fps),
		fmt.Sprintf("faces %d  verts %d  drawn %d  culled %d  clipped %d",
			st.Faces, st.Vertices, st.FacesDrawn, st.FacesCulled, st.FacesClipped),
		fmt.Sprintf("rot %.0f %.0f %.0f  cam d=%.2f h=%.2f a=%.0f",
			quarkgl.Degrees(fs.Rotation.X), quarkgl.Degrees(fs.Rotation.Y), quarkgl.Degrees(fs.Rotation.Z),
			fs.Camera.Distance, fs.Camera.Height, quarkgl.Degrees(fs.Camera.Angle)),
		strings.Join(flags, " "),
	}
	if help {
		lines = append(lines,
			"arrows/pgup/pgdn rotate  a/d orbit  +/- zoom  r/f height",
			"p proj  c cull  w wire  z depth  m model  home reset",
			"F1 hud  F2 help  F3 snapshot  q quit",
		)
	}
	return lines
}

func drawHUD(t quarkgl.Target, lines []string) {
	d := targetDisplayer{t: t}
	y := int16(hudMargin + hudLineHeight)
	for i, s := range lines {
		c := hudText
		if i == 0 {
			c = hudTitle
		}
		tinyfont.WriteLine(d, hudFont, hudMargin, y, s, c)
		y += hudLineHeight
	}
}

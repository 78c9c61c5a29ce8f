// Command quarkshot renders a single frame of a model to a PNG file.
package main

import (
	"flag"
	"fmt"
	"os"

	"quarkview/app"
	"quarkview/hal"
	"quarkview/quarkgl"
)

func main() {
	cfg := app.DefaultConfig()
	var (
		outPath = flag.String("out", "", "Output PNG file.")
		width   = flag.Int("w", 800, "Image width.")
		height  = flag.Int("h", 600, "Image height.")
		quiet   = flag.Bool("q", false, "Do not print the summary line.")
	)
	applyFrame := app.Flags(flag.CommandLine, &cfg)
	flag.Parse()
	applyFrame()

	if *outPath == "" {
		fatalf("usage: quarkshot -out frame.png [-model cube|-obj mesh.obj] [-w 800 -h 600] [-ry 30 -perspective ...]")
	}
	if *width <= 0 || *height <= 0 {
		fatalf("invalid size: %dx%d", *width, *height)
	}

	scene, name, err := app.LoadScene(cfg)
	if err != nil {
		fatalf("load: %v", err)
	}

	target := quarkgl.NewImageTarget(*width, *height)
	st := quarkgl.NewRenderer().Render(target, scene, cfg.Frame)
	if err := app.WritePNG(*outPath, target.Img); err != nil {
		fatalf("write: %v", err)
	}

	if !*quiet {
		log := hal.NewLogger(os.Stdout)
		log.WriteLineString(fmt.Sprintf("%s: model=%s %dx%d projection=%s faces=%d drawn=%d culled=%d clipped=%d pixels=%d",
			*outPath, name, *width, *height, cfg.Frame.Projection, st.Faces, st.FacesDrawn, st.FacesCulled, st.FacesClipped, st.Pixels))
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

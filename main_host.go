package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"quarkview/app"
	"quarkview/hal"
	"quarkview/quarkgl"
)

func main() {
	cfg := app.DefaultConfig()
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		spin     float64
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&window.Width, "w", 800, "Framebuffer width.")
	flag.IntVar(&window.Height, "h", 600, "Framebuffer height.")
	flag.IntVar(&window.Scale, "scale", 1, "Window scale factor.")
	flag.Float64Var(&spin, "spin", 0, "Spin about Y in degrees per second.")
	flag.IntVar(&cfg.LogEvery, "log-every", cfg.LogEvery, "Frames between stat log lines (0 = off).")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Draw the HUD overlay.")
	flag.StringVar(&cfg.SnapshotPath, "snapshot", "", "PNG path written by the snapshot key.")
	applyFrame := app.Flags(flag.CommandLine, &cfg)
	flag.Parse()
	applyFrame()
	cfg.Spin = quarkgl.Radians(quarkgl.Scalar(spin))

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	if headless.Enabled {
		headless.Width, headless.Height = window.Width, window.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, window); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"pixed/app"
	"pixed/hal"
)

func main() {
	width := flag.Int("width", 800, "Canvas and window width in pixels.")
	height := flag.Int("height", 600, "Canvas and window height in pixels.")
	open := flag.String("open", "", "Project folder to load on startup.")
	scaleImports := flag.Bool("scale-imports", false, "Scale imported images to the canvas size instead of rejecting them.")
	headless := flag.Bool("headless", false, "Run without a window.")
	hz := flag.Int("hz", 60, "Tick rate in headless mode.")
	ticks := flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{
			ScaleImports: *scaleImports,
			OpenProject:  *open,
		})
	}

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  *width,
			Height: *height,
			Hz:     *hz,
			Ticks:  *ticks,
		})
		if err != nil && err != context.Canceled {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(*width, *height, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

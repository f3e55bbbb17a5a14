// Command sketchdemo draws the sample scenes on any registered surface.
//
//	sketchdemo -scene house -output house.png
//	sketchdemo -display pdf -scene demo -output demo.pdf
//	sketchdemo -display term -rotate 180
//	sketchdemo -display remote -addr :8080
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"fyne.io/fyne/v2/app"
	"github.com/gogpu/gg"
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/display"
	"github.com/gogpu/sketch/display/backends/archive"
	"github.com/gogpu/sketch/display/backends/remote"
	"github.com/gogpu/sketch/display/backends/term"
	"github.com/gogpu/sketch/display/backends/window"
	"github.com/gogpu/sketch/internal/scenes"

	_ "github.com/gogpu/sketch/display/backends/pdf"
	_ "github.com/gogpu/sketch/display/backends/raster"
)

func main() {
	defaults := display.DefaultOptions()
	var (
		surface = flag.String("display", "raster", "surface: "+strings.Join(display.Names(), ", "))
		scene   = flag.String("scene", "demo", "scene to draw: "+scenes.Names())
		output  = flag.String("output", "", "output file for raster, pdf and archive surfaces (default sketch.png, sketch.pdf or sketch.db)")
		width   = flag.Int("width", defaults.Width, "drawing width")
		height  = flag.Int("height", defaults.Height, "drawing height")
		rotate  = flag.Int("rotate", 0, "clockwise rotation in degrees (0, 90, 180, 270)")
		addr    = flag.String("addr", ":8080", "listen address for the remote surface")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	defer gg.CloseAccelerator()

	draw, ok := scenes.Lookup(*scene)
	if !ok {
		log.Fatalf("unknown scene %q (want one of %s)", *scene, scenes.Names())
	}

	opts := defaults
	opts.Width, opts.Height = *width, *height
	opts.Rotation = *rotate
	opts.Addr = *addr
	opts.Title = "sketch: " + *scene
	opts.Output = *output
	if opts.Output == "" {
		opts.Output = defaultOutputs[*surface]
	}

	if *surface == "window" {
		app.New()
	}
	surf, err := display.Open(*surface, opts)
	if err != nil {
		log.Fatalf("Failed to open display: %v", err)
	}

	c := sketch.NewCanvas(sketch.WithDisplay(surf))
	draw(c)
	if err := c.Err(); err != nil {
		surf.Close()
		log.Fatalf("Failed to draw: %v", err)
	}

	if err := wait(surf); err != nil {
		surf.Close()
		log.Fatalf("Display failed: %v", err)
	}
	if err := surf.Close(); err != nil {
		log.Fatalf("Failed to close display: %v", err)
	}
	switch s := surf.(type) {
	case *archive.Surface:
		log.Printf("Recorded frame %s in %s\n", s.Current(), opts.Output)
	default:
		if opts.Output != "" {
			log.Printf("Scene %q saved to %s (%dx%d)\n", *scene, opts.Output, opts.Width, opts.Height)
		}
	}
}

var defaultOutputs = map[string]string{
	"raster":  "sketch.png",
	"pdf":     "sketch.pdf",
	"archive": "sketch.db",
}

// wait blocks while interactive surfaces are in use.
func wait(surf display.Surface) error {
	switch s := surf.(type) {
	case *term.Surface:
		return s.Run()
	case *window.Surface:
		s.ShowAndRun()
	case *remote.Surface:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		sketch.Logger().Info("remote: serving scene, press Ctrl-C to stop", "frame", s.Snapshot().Frame)
		<-ctx.Done()
	}
	return nil
}

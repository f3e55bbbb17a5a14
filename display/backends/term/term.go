// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term provides a display surface that draws scenes in a terminal.
//
// The scene is rasterized at its logical size, scaled to fit the terminal
// and drawn with upper half block characters, two pixels per cell: the
// foreground color is the top pixel and the background color the bottom
// one. Truecolor terminals give the best results.
//
//	import _ "github.com/gogpu/sketch/display/backends/term"
//
//	surf, _ := display.Open("term", display.DefaultOptions())
//	defer surf.Close()
//	c := sketch.NewCanvas(sketch.WithDisplay(surf))
//	c.Circle(160, 120, 50)
//	surf.(*term.Surface).Run() // wait for a key
package term

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/display"
	"github.com/gogpu/sketch/display/backends/raster"
	xdraw "golang.org/x/image/draw"
)

const halfBlock = '▀'

func init() {
	display.Register("term", func(opts display.Options) (display.Surface, error) {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("term: %w", err)
		}
		if err := screen.Init(); err != nil {
			return nil, fmt.Errorf("term: %w", err)
		}
		s := New(screen, opts)
		s.owned = true
		return s, nil
	})
}

// Surface renders the active scene onto a tcell screen.
type Surface struct {
	screen tcell.Screen
	opts   display.Options
	scene  *sketch.Scene

	// drawn identifies the last rendered scene state
	drawn   *sketch.Scene
	version uint64

	owned  bool
	closed bool
}

var (
	_ display.Surface  = (*Surface)(nil)
	_ sketch.Refresher = (*Surface)(nil)
)

// New creates a surface on an initialized screen. The caller keeps
// ownership of the screen; Close does not finalize it.
func New(screen tcell.Screen, opts display.Options) *Surface {
	return &Surface{screen: screen, opts: opts, scene: sketch.NewScene()}
}

// SetScene makes s the active scene and draws it.
func (t *Surface) SetScene(s *sketch.Scene) error {
	if t.closed {
		return display.ErrClosed
	}
	t.scene = s
	return t.Refresh()
}

// Refresh redraws the active scene if it changed since the last draw.
func (t *Surface) Refresh() error {
	if t.closed {
		return display.ErrClosed
	}
	if t.drawn == t.scene && t.version == t.scene.Version() {
		return nil
	}
	if err := t.draw(); err != nil {
		return err
	}
	t.drawn, t.version = t.scene, t.scene.Version()
	return nil
}

// Run processes terminal events until a key is pressed, redrawing on
// resize.
func (t *Surface) Run() error {
	for {
		switch t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			if err := t.draw(); err != nil {
				return err
			}
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}

// Close finalizes the screen if the surface created it.
func (t *Surface) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.owned {
		t.screen.Fini()
	}
	return nil
}

func (t *Surface) draw() error {
	frame, err := raster.Frame(t.opts, t.scene.Shapes())
	if err != nil {
		return err
	}

	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	cells := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	bg := t.opts.Background.NRGBA()
	xdraw.Draw(cells, cells.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	xdraw.ApproxBiLinear.Scale(cells, fit(frame.Bounds().Size(), cells.Bounds().Size()), frame, frame.Bounds(), xdraw.Src, nil)

	for y := range rows {
		for x := range cols {
			top := cells.RGBAAt(x, 2*y)
			bottom := cells.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// fit returns the largest rectangle with the aspect ratio of src that fits
// in dst, centered.
func fit(src, dst image.Point) image.Rectangle {
	if src.X <= 0 || src.Y <= 0 {
		return image.Rectangle{}
	}
	w, h := dst.X, src.Y*dst.X/src.X
	if h > dst.Y {
		w, h = src.X*dst.Y/src.Y, dst.Y
	}
	off := image.Pt((dst.X-w)/2, (dst.Y-h)/2)
	return image.Rectangle{Min: off, Max: off.Add(image.Pt(w, h))}
}

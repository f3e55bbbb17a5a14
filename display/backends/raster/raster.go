// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides a pixel display surface for sketch.
// It renders scenes to images using gg.Context.
//
// Outlines are drawn inside the shape boundary, so a 10x10 rectangle with
// a 2 pixel stroke still covers exactly 10x10 pixels. A stroke width of
// zero or less draws no outline. Shapes with non-positive width, height or
// radius draw nothing.
//
// # Example
//
//	// Import to register the surface
//	import _ "github.com/gogpu/sketch/display/backends/raster"
//
//	surf, _ := display.Open("raster", display.Options{Width: 320, Height: 240, Output: "out.png"})
//	c := sketch.NewCanvas(sketch.WithDisplay(surf))
//	c.Circle(160, 120, 50)
//	surf.Close() // writes out.png
//
// Other surfaces that need pixels (terminal, window) use Frame directly.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/display"
)

func init() {
	display.Register("raster", func(opts display.Options) (display.Surface, error) {
		return New(opts), nil
	})
}

// Surface keeps the active scene and renders it on demand.
type Surface struct {
	opts   display.Options
	scene  *sketch.Scene
	closed bool
}

var _ display.Surface = (*Surface)(nil)

// New creates a raster surface. The scene is rendered only when an image is
// requested, so growing the scene costs nothing until then.
func New(opts display.Options) *Surface {
	return &Surface{opts: opts, scene: sketch.NewScene()}
}

// SetScene makes s the active scene.
func (b *Surface) SetScene(s *sketch.Scene) error {
	if b.closed {
		return display.ErrClosed
	}
	b.scene = s
	return nil
}

// Image renders the active scene.
func (b *Surface) Image() (image.Image, error) {
	return Frame(b.opts, b.scene.Shapes())
}

// EncodePNG writes the rendered scene as PNG to w.
func (b *Surface) EncodePNG(w io.Writer) error {
	img, err := b.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG writes the rendered scene to a PNG file.
func (b *Surface) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return b.EncodePNG(f)
}

// Close writes Options.Output if set. Later calls are no-ops.
func (b *Surface) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.opts.Output == "" {
		return nil
	}
	if err := b.SavePNG(b.opts.Output); err != nil {
		return err
	}
	sketch.Logger().Info("raster: wrote image", "path", b.opts.Output, "shapes", b.scene.Len())
	return nil
}

// Frame renders shapes onto the background and applies the rotation.
func Frame(opts display.Options, shapes []sketch.Shape) (image.Image, error) {
	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(opts.Background))
	if err := Render(dc, shapes); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("raster: flush: %w", err)
	}
	return display.Rotate(dc.Image(), opts.Rotation), nil
}

// Render draws shapes in order onto dc.
func Render(dc *gg.Context, shapes []sketch.Shape) error {
	var errs []error
	for _, sh := range shapes {
		if err := draw(dc, sh); err != nil {
			errs = append(errs, fmt.Errorf("raster: %s: %w", sh.Kind(), err))
		}
	}
	return errors.Join(errs...)
}

func draw(dc *gg.Context, sh sketch.Shape) error {
	switch s := sh.(type) {
	case sketch.RectShape:
		return drawRect(dc, s)
	case sketch.CircleShape:
		return drawCircle(dc, s)
	case sketch.CircleOutlineShape:
		return drawCircleOutline(dc, s)
	case sketch.TriangleShape:
		return drawTriangle(dc, s)
	case sketch.LineShape:
		return drawLine(dc, s)
	case sketch.RoundRectShape:
		return drawRoundRect(dc, s)
	default:
		return fmt.Errorf("%w: %T", sketch.ErrUnknownKind, sh)
	}
}

func drawRect(dc *gg.Context, s sketch.RectShape) error {
	if s.Width <= 0 || s.Height <= 0 {
		return nil
	}
	x, y, w, h := float64(s.X), float64(s.Y), float64(s.Width), float64(s.Height)
	dc.SetColor(s.Fill)
	dc.DrawRectangle(x, y, w, h)
	if err := dc.Fill(); err != nil {
		return err
	}
	if s.StrokeWidth <= 0 {
		return nil
	}
	sw := float64(s.StrokeWidth)
	dc.SetColor(s.Outline)
	dc.SetLineWidth(sw)
	dc.DrawRectangle(x+sw/2, y+sw/2, w-sw, h-sw)
	return dc.Stroke()
}

func drawRoundRect(dc *gg.Context, s sketch.RoundRectShape) error {
	if s.Width <= 0 || s.Height <= 0 {
		return nil
	}
	x, y, w, h := float64(s.X), float64(s.Y), float64(s.Width), float64(s.Height)
	r := float64(s.Radius)
	dc.SetColor(s.Fill)
	dc.DrawRoundedRectangle(x, y, w, h, r)
	if err := dc.Fill(); err != nil {
		return err
	}
	if s.StrokeWidth <= 0 {
		return nil
	}
	sw := float64(s.StrokeWidth)
	dc.SetColor(s.Outline)
	dc.SetLineWidth(sw)
	dc.DrawRoundedRectangle(x+sw/2, y+sw/2, w-sw, h-sw, max(r-sw/2, 0))
	return dc.Stroke()
}

// Circles are centered on the middle of their center pixel.
func drawCircle(dc *gg.Context, s sketch.CircleShape) error {
	if s.Radius <= 0 {
		return nil
	}
	cx, cy, r := float64(s.CX)+0.5, float64(s.CY)+0.5, float64(s.Radius)+0.5
	dc.SetColor(s.Fill)
	dc.DrawCircle(cx, cy, r)
	if err := dc.Fill(); err != nil {
		return err
	}
	return ring(dc, cx, cy, r, s.Outline, s.StrokeWidth)
}

func drawCircleOutline(dc *gg.Context, s sketch.CircleOutlineShape) error {
	if s.Radius <= 0 {
		return nil
	}
	cx, cy, r := float64(s.CX)+0.5, float64(s.CY)+0.5, float64(s.Radius)+0.5
	return ring(dc, cx, cy, r, s.Outline, s.StrokeWidth)
}

func ring(dc *gg.Context, cx, cy, r float64, c sketch.Color, width int) error {
	if width <= 0 {
		return nil
	}
	sw := float64(width)
	dc.SetColor(c)
	dc.SetLineWidth(sw)
	dc.DrawCircle(cx, cy, max(r-sw/2, sw/2))
	return dc.Stroke()
}

func drawTriangle(dc *gg.Context, s sketch.TriangleShape) error {
	path := func() {
		dc.MoveTo(float64(s.P0.X)+0.5, float64(s.P0.Y)+0.5)
		dc.LineTo(float64(s.P1.X)+0.5, float64(s.P1.Y)+0.5)
		dc.LineTo(float64(s.P2.X)+0.5, float64(s.P2.Y)+0.5)
		dc.ClosePath()
	}
	dc.SetColor(s.Fill)
	path()
	if err := dc.Fill(); err != nil {
		return err
	}
	dc.SetColor(s.Outline)
	dc.SetLineWidth(1)
	path()
	return dc.Stroke()
}

func drawLine(dc *gg.Context, s sketch.LineShape) error {
	dc.SetColor(s.Color)
	dc.SetLineWidth(1)
	dc.MoveTo(float64(s.P0.X)+0.5, float64(s.P0.Y)+0.5)
	dc.LineTo(float64(s.P1.X)+0.5, float64(s.P1.Y)+0.5)
	return dc.Stroke()
}

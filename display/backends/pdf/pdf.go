// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pdf provides a vector display surface that writes PDF documents.
//
// Every scene made active on the surface becomes one page, so a Canvas
// that clears its scene twice produces a three page document. Pages are
// Width x Height points. Rotation is ignored; PDF viewers rotate pages
// themselves.
//
//	import _ "github.com/gogpu/sketch/display/backends/pdf"
//
//	surf, _ := display.Open("pdf", display.Options{Width: 320, Height: 240, Output: "house.pdf"})
package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/display"
	"github.com/jung-kurt/gofpdf"
)

func init() {
	display.Register("pdf", func(opts display.Options) (display.Surface, error) {
		return New(opts), nil
	})
}

// Surface collects scenes and renders them as PDF pages.
type Surface struct {
	opts   display.Options
	scenes []*sketch.Scene
	closed bool
}

var _ display.Surface = (*Surface)(nil)

// New creates a PDF surface.
func New(opts display.Options) *Surface {
	return &Surface{opts: opts}
}

// SetScene starts a new page showing s.
func (p *Surface) SetScene(s *sketch.Scene) error {
	if p.closed {
		return display.ErrClosed
	}
	if n := len(p.scenes); n > 0 && p.scenes[n-1] == s {
		return nil
	}
	p.scenes = append(p.scenes, s)
	return nil
}

// Pages returns the number of pages the document will have.
func (p *Surface) Pages() int {
	return max(len(p.scenes), 1)
}

// EncodePDF writes the document to w.
func (p *Surface) EncodePDF(w io.Writer) error {
	doc := p.document()
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// SavePDF writes the document to a file.
func (p *Surface) SavePDF(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return p.EncodePDF(f)
}

// Close writes Options.Output if set. Later calls are no-ops.
func (p *Surface) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.opts.Output == "" {
		return nil
	}
	if err := p.SavePDF(p.opts.Output); err != nil {
		return err
	}
	sketch.Logger().Info("pdf: wrote document", "path", p.opts.Output, "pages", p.Pages())
	return nil
}

func (p *Surface) document() *gofpdf.Fpdf {
	w, h := float64(p.opts.Width), float64(p.opts.Height)
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	if p.opts.Title != "" {
		doc.SetTitle(p.opts.Title, true)
	}
	doc.SetCreator("sketch", false)

	scenes := p.scenes
	if len(scenes) == 0 {
		scenes = []*sketch.Scene{sketch.NewScene()}
	}
	for _, s := range scenes {
		doc.AddPage()
		setFill(doc, p.opts.Background)
		doc.Rect(0, 0, w, h, "F")
		for _, sh := range s.All() {
			drawShape(doc, sh)
		}
	}
	return doc
}

func setFill(doc *gofpdf.Fpdf, c sketch.Color) {
	doc.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func setDraw(doc *gofpdf.Fpdf, c sketch.Color, width float64) {
	doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	doc.SetLineWidth(width)
}

// drawShape mirrors the raster surface: fill first, then an outline that
// stays inside the shape boundary.
func drawShape(doc *gofpdf.Fpdf, sh sketch.Shape) {
	switch s := sh.(type) {
	case sketch.RectShape:
		if s.Width <= 0 || s.Height <= 0 {
			return
		}
		x, y, w, h := float64(s.X), float64(s.Y), float64(s.Width), float64(s.Height)
		setFill(doc, s.Fill)
		doc.Rect(x, y, w, h, "F")
		if s.StrokeWidth > 0 {
			sw := float64(s.StrokeWidth)
			setDraw(doc, s.Outline, sw)
			doc.Rect(x+sw/2, y+sw/2, w-sw, h-sw, "D")
		}
	case sketch.RoundRectShape:
		if s.Width <= 0 || s.Height <= 0 {
			return
		}
		x, y, w, h, r := float64(s.X), float64(s.Y), float64(s.Width), float64(s.Height), float64(s.Radius)
		setFill(doc, s.Fill)
		doc.RoundedRect(x, y, w, h, r, "1234", "F")
		if s.StrokeWidth > 0 {
			sw := float64(s.StrokeWidth)
			setDraw(doc, s.Outline, sw)
			doc.RoundedRect(x+sw/2, y+sw/2, w-sw, h-sw, max(r-sw/2, 0), "1234", "D")
		}
	case sketch.CircleShape:
		if s.Radius <= 0 {
			return
		}
		cx, cy, r := float64(s.CX)+0.5, float64(s.CY)+0.5, float64(s.Radius)+0.5
		setFill(doc, s.Fill)
		doc.Circle(cx, cy, r, "F")
		ring(doc, cx, cy, r, s.Outline, s.StrokeWidth)
	case sketch.CircleOutlineShape:
		if s.Radius <= 0 {
			return
		}
		ring(doc, float64(s.CX)+0.5, float64(s.CY)+0.5, float64(s.Radius)+0.5, s.Outline, s.StrokeWidth)
	case sketch.TriangleShape:
		setFill(doc, s.Fill)
		setDraw(doc, s.Outline, 1)
		doc.Polygon([]gofpdf.PointType{
			{X: float64(s.P0.X) + 0.5, Y: float64(s.P0.Y) + 0.5},
			{X: float64(s.P1.X) + 0.5, Y: float64(s.P1.Y) + 0.5},
			{X: float64(s.P2.X) + 0.5, Y: float64(s.P2.Y) + 0.5},
		}, "FD")
	case sketch.LineShape:
		setDraw(doc, s.Color, 1)
		doc.Line(float64(s.P0.X)+0.5, float64(s.P0.Y)+0.5, float64(s.P1.X)+0.5, float64(s.P1.Y)+0.5)
	default:
		sketch.Logger().Warn("pdf: skipping unknown shape", "type", fmt.Sprintf("%T", sh))
	}
}

func ring(doc *gofpdf.Fpdf, cx, cy, r float64, c sketch.Color, width int) {
	if width <= 0 {
		return
	}
	sw := float64(width)
	setDraw(doc, c, sw)
	doc.Circle(cx, cy, max(r-sw/2, sw/2), "D")
}

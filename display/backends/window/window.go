// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window provides a desktop display surface built on Fyne.
//
// The window shows the raster frame of the active scene, scaled to fit
// while keeping its aspect ratio. The registered "window" factory attaches
// to the running Fyne application, so create one before opening:
//
//	a := app.New()
//	surf, _ := display.Open("window", display.DefaultOptions())
//	c := sketch.NewCanvas(sketch.WithDisplay(surf))
//	c.Circle(160, 120, 50)
//	surf.(*window.Surface).ShowAndRun()
package window

import (
	"errors"
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/display"
	"github.com/gogpu/sketch/display/backends/raster"
)

var errNoApp = errors.New("window: no Fyne application (create one with app.New first)")

func init() {
	display.Register("window", func(opts display.Options) (display.Surface, error) {
		a := fyne.CurrentApp()
		if a == nil {
			return nil, errNoApp
		}
		return New(a, opts), nil
	})
}

// Surface shows the active scene in a Fyne window.
type Surface struct {
	opts   display.Options
	window fyne.Window
	image  *canvas.Image

	mu     sync.Mutex
	frame  image.Image
	scene  *sketch.Scene
	closed bool
}

var (
	_ display.Surface  = (*Surface)(nil)
	_ sketch.Refresher = (*Surface)(nil)
)

// New creates a window on a. The window is not shown until Show or
// ShowAndRun is called.
func New(a fyne.App, opts display.Options) *Surface {
	w, h := opts.PhysicalSize()
	blank := image.NewRGBA(image.Rect(0, 0, w, h))

	img := canvas.NewImageFromImage(blank)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(fyne.NewSize(float32(w), float32(h)))

	win := a.NewWindow(opts.Title)
	win.SetContent(img)
	win.Resize(fyne.NewSize(float32(w), float32(h)))

	s := &Surface{opts: opts, window: win, image: img, frame: blank, scene: sketch.NewScene()}
	win.SetOnClosed(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
	})
	return s
}

// SetScene makes sc the active scene and redraws the window.
func (s *Surface) SetScene(sc *sketch.Scene) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return display.ErrClosed
	}
	s.scene = sc
	s.mu.Unlock()
	return s.Refresh()
}

// Refresh renders the active scene and hands the frame to the window.
func (s *Surface) Refresh() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return display.ErrClosed
	}
	shapes := s.scene.Shapes()
	s.mu.Unlock()

	frame, err := raster.Frame(s.opts, shapes)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.frame = frame
	s.mu.Unlock()

	fyne.Do(func() {
		s.image.Image = frame
		s.image.Refresh()
	})
	return nil
}

// Frame returns the most recently rendered frame.
func (s *Surface) Frame() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Window returns the underlying Fyne window.
func (s *Surface) Window() fyne.Window {
	return s.window
}

// Show shows the window without running the event loop.
func (s *Surface) Show() {
	s.window.Show()
}

// ShowAndRun shows the window and runs the application until it quits.
func (s *Surface) ShowAndRun() {
	s.window.ShowAndRun()
}

// Close closes the window. Later calls are no-ops.
func (s *Surface) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	fyne.Do(s.window.Close)
	return nil
}

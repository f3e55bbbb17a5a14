// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"errors"
	"fmt"

	"github.com/gogpu/sketch"
)

// ErrClosed is returned by surfaces used after Close.
var ErrClosed = errors.New("display: surface closed")

// Surface is a display that owns resources.
//
// Surfaces are driven from the goroutine that owns the sketch.Canvas.
// Implementations that serve other goroutines must snapshot the scene
// during SetScene or Refresh rather than reading it later.
type Surface interface {
	sketch.Display

	// Close releases the surface and flushes any pending output.
	// Close is idempotent.
	Close() error
}

// Options configures a surface.
type Options struct {
	// Width and Height are the logical drawing area in pixels.
	Width, Height int

	// Background is the color behind the first shape.
	Background sketch.Color

	// Rotation turns the physical output clockwise by 0, 90, 180 or 270
	// degrees. Raster based surfaces honor it.
	Rotation int

	// Output is the destination file for surfaces that write one
	// (PNG, PDF, SQLite database).
	Output string

	// Addr is the listen address for network surfaces.
	Addr string

	// Title is the window title for desktop surfaces.
	Title string
}

// DefaultOptions returns options for a 320x240 panel on a black background.
func DefaultOptions() Options {
	return Options{
		Width:      320,
		Height:     240,
		Background: sketch.Black,
		Title:      "sketch",
	}
}

// Validate reports invalid dimensions or rotation.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("display: invalid dimensions: width=%d, height=%d (both must be > 0)", o.Width, o.Height)
	}
	switch o.Rotation {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("display: invalid rotation %d (want 0, 90, 180 or 270)", o.Rotation)
	}
	return nil
}

// PhysicalSize returns the output dimensions after rotation.
func (o Options) PhysicalSize() (width, height int) {
	if o.Rotation == 90 || o.Rotation == 270 {
		return o.Height, o.Width
	}
	return o.Width, o.Height
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package display provides the registry of display surfaces for sketch.
//
// A surface turns a [sketch.Scene] into something visible: a PNG image, a
// PDF page, terminal cells, a desktop window or frames pushed to remote
// viewers. Surfaces register themselves by name, following the
// database/sql driver pattern. Import a backend package with a blank
// identifier to make it available:
//
//	import (
//	    "github.com/gogpu/sketch/display"
//	    _ "github.com/gogpu/sketch/display/backends/raster" // "raster"
//	    _ "github.com/gogpu/sketch/display/backends/pdf"    // "pdf"
//	)
//
//	surf, err := display.Open("pdf", display.Options{Width: 320, Height: 240, Output: "out.pdf"})
//
// # Custom Surfaces
//
// Implement [Surface] and register a factory from init:
//
//	func init() {
//	    display.Register("myformat", func(opts display.Options) (display.Surface, error) {
//	        return NewMySurface(opts), nil
//	    })
//	}
//
// Surfaces that redraw incrementally also implement [sketch.Refresher].
package display

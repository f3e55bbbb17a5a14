// Package sketch provides a simple immediate-call API for building 2D
// pictures out of basic shapes.
//
// # Overview
//
// sketch keeps a small drawing style (fill color, outline color, stroke
// width) and an append-only Scene. Style calls change the style; shape
// calls copy the current style into a shape record and append it to the
// scene. The scene is handed to a Display, which turns it into pixels,
// PDF pages, terminal cells or network frames.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sketch"
//	    "github.com/gogpu/sketch/display"
//	    _ "github.com/gogpu/sketch/display/backends/raster"
//	)
//
//	opts := display.DefaultOptions()
//	opts.Output = "house.png"
//	surf, err := display.Open("raster", opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer surf.Close()
//
//	c := sketch.NewCanvas(sketch.WithDisplay(surf))
//	c.Color("yellow")
//	c.Outline("black")
//	c.Stroke(2)
//	c.Rectangle(60, 120, 120, 80)
//	c.Color("red")
//	c.Triangle(60, 120, 180, 120, 120, 60)
//
// # Colors
//
// Fill colors are chosen by name from red, green, blue, yellow, white,
// black, cyan, magenta, gray and brown. Outline colors come from a smaller
// palette: red, green, blue, white and black. Names are case-sensitive and
// unknown names are ignored, keeping the previous color.
//
// # Shapes
//
//   - Rectangle, Circle and RoundedRect use fill, outline and stroke width.
//   - CircleOutline draws only a ring, in the current fill color.
//   - Triangle uses fill and outline but always outlines one pixel wide.
//   - Line is drawn one pixel wide in the current fill color.
//
// Geometry is never validated. Negative sizes and degenerate shapes are
// stored as given and left to the display.
//
// # Coordinate System
//
// Integer pixel coordinates with the origin at the top-left, X increasing
// right and Y increasing down.
package sketch

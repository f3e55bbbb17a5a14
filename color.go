package sketch

import (
	"fmt"
	"image/color"
	"maps"
	"slices"
)

// Color is an opaque RGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// String returns the color in CSS rgb() notation.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Named colors
var (
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	White   = Color{255, 255, 255}
	Black   = Color{0, 0, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
	Gray    = Color{128, 128, 128}
	Brown   = Color{155, 40, 10}
)

var fillColors = map[string]Color{
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"white":   White,
	"black":   Black,
	"cyan":    Cyan,
	"magenta": Magenta,
	"gray":    Gray,
	"brown":   Brown,
}

// Outlines accept a narrower palette than fills.
var outlineColors = map[string]Color{
	"red":   Red,
	"green": Green,
	"blue":  Blue,
	"white": White,
	"black": Black,
}

// ResolveFill looks up a fill color by name. Names are matched exactly and
// case-sensitively; ok is false for anything outside the fill palette.
func ResolveFill(name string) (c Color, ok bool) {
	c, ok = fillColors[name]
	return c, ok
}

// ResolveOutline looks up an outline color by name. Only red, green, blue,
// white and black are outline colors.
func ResolveOutline(name string) (c Color, ok bool) {
	c, ok = outlineColors[name]
	return c, ok
}

// FillNames returns the recognized fill color names in sorted order.
func FillNames() []string {
	return slices.Sorted(maps.Keys(fillColors))
}

// OutlineNames returns the recognized outline color names in sorted order.
func OutlineNames() []string {
	return slices.Sorted(maps.Keys(outlineColors))
}

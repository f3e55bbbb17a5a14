package sketch

import "image"

// Kind identifies a shape variant.
type Kind uint8

// Shape kinds.
const (
	KindRect Kind = iota + 1
	KindCircle
	KindCircleOutline
	KindTriangle
	KindLine
	KindRoundRect
)

var kindNames = [...]string{
	KindRect:          "rect",
	KindCircle:        "circle",
	KindCircleOutline: "circle-outline",
	KindTriangle:      "triangle",
	KindLine:          "line",
	KindRoundRect:     "round-rect",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k := KindRect; int(k) < len(kindNames); k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return 0, false
}

// Shape is a declarative shape record. Shapes carry integer pixel geometry
// plus the style values captured when they were built; turning them into
// pixels is left to a Display.
//
// All implementations are value types. A shape stored in a Scene is never
// modified.
type Shape interface {
	// Kind reports the shape variant.
	Kind() Kind

	// Bounds returns the pixel bounding box of the geometry, ignoring
	// stroke width.
	Bounds() image.Rectangle
}

// RectShape is an axis-aligned box with an outline.
type RectShape struct {
	X, Y          int
	Width, Height int
	Fill          Color
	Outline       Color
	StrokeWidth   int
}

// NewRect builds a rectangle with top-left corner (x, y).
func NewRect(st Style, x, y, width, height int) RectShape {
	return RectShape{
		X: x, Y: y, Width: width, Height: height,
		Fill:        st.Fill,
		Outline:     st.Outline,
		StrokeWidth: st.StrokeWidth,
	}
}

func (RectShape) Kind() Kind { return KindRect }

func (r RectShape) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// CircleShape is a filled disk with an outline ring.
type CircleShape struct {
	CX, CY      int
	Radius      int
	Fill        Color
	Outline     Color
	StrokeWidth int
}

// NewCircle builds a filled circle centered on (cx, cy).
func NewCircle(st Style, cx, cy, radius int) CircleShape {
	return CircleShape{
		CX: cx, CY: cy, Radius: radius,
		Fill:        st.Fill,
		Outline:     st.Outline,
		StrokeWidth: st.StrokeWidth,
	}
}

func (CircleShape) Kind() Kind { return KindCircle }

func (c CircleShape) Bounds() image.Rectangle {
	return circleBounds(c.CX, c.CY, c.Radius)
}

// CircleOutlineShape is a ring with no interior.
type CircleOutlineShape struct {
	CX, CY      int
	Radius      int
	Outline     Color
	StrokeWidth int
}

// NewCircleOutline builds an unfilled circle centered on (cx, cy).
//
// The ring is drawn in the style's fill color, not its outline color.
func NewCircleOutline(st Style, cx, cy, radius int) CircleOutlineShape {
	return CircleOutlineShape{
		CX: cx, CY: cy, Radius: radius,
		Outline:     st.Fill,
		StrokeWidth: st.StrokeWidth,
	}
}

func (CircleOutlineShape) Kind() Kind { return KindCircleOutline }

func (c CircleOutlineShape) Bounds() image.Rectangle {
	return circleBounds(c.CX, c.CY, c.Radius)
}

// TriangleShape is a filled triangle. Its outline is always drawn one
// pixel wide.
type TriangleShape struct {
	P0, P1, P2 image.Point
	Fill       Color
	Outline    Color
}

// NewTriangle builds a triangle from three vertices. The style's stroke
// width is not used.
func NewTriangle(st Style, x0, y0, x1, y1, x2, y2 int) TriangleShape {
	return TriangleShape{
		P0:      image.Pt(x0, y0),
		P1:      image.Pt(x1, y1),
		P2:      image.Pt(x2, y2),
		Fill:    st.Fill,
		Outline: st.Outline,
	}
}

func (TriangleShape) Kind() Kind { return KindTriangle }

func (t TriangleShape) Bounds() image.Rectangle {
	return pointBounds(t.P0, t.P1, t.P2)
}

// LineShape is a one pixel line segment.
type LineShape struct {
	P0, P1 image.Point
	Color  Color
}

// NewLine builds a line between two endpoints in the style's fill color.
// The style's stroke width is not used.
func NewLine(st Style, x0, y0, x1, y1 int) LineShape {
	return LineShape{
		P0:    image.Pt(x0, y0),
		P1:    image.Pt(x1, y1),
		Color: st.Fill,
	}
}

func (LineShape) Kind() Kind { return KindLine }

func (l LineShape) Bounds() image.Rectangle {
	return pointBounds(l.P0, l.P1)
}

// RoundRectShape is a box with rounded corners.
type RoundRectShape struct {
	X, Y          int
	Width, Height int
	Radius        int
	Fill          Color
	Outline       Color
	StrokeWidth   int
}

// NewRoundRect builds a rounded box whose corner radius is half the shorter
// side, which approximates an ellipse: a circle when width equals height
// and a stadium otherwise.
func NewRoundRect(st Style, x, y, width, height int) RoundRectShape {
	return RoundRectShape{
		X: x, Y: y, Width: width, Height: height,
		Radius:      min(width, height) / 2,
		Fill:        st.Fill,
		Outline:     st.Outline,
		StrokeWidth: st.StrokeWidth,
	}
}

func (RoundRectShape) Kind() Kind { return KindRoundRect }

func (r RoundRectShape) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func circleBounds(cx, cy, r int) image.Rectangle {
	return image.Rect(cx-r, cy-r, cx+r+1, cy+r+1)
}

// pointBounds returns the smallest rectangle containing every pixel in pts.
func pointBounds(pts ...image.Point) image.Rectangle {
	b := image.Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	b.Max = b.Max.Add(image.Pt(1, 1))
	return b
}

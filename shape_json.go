package sketch

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
)

// ErrUnknownKind is returned when decoding a shape with an unrecognized kind.
var ErrUnknownKind = errors.New("sketch: unknown shape kind")

type rgb [3]uint8

func toRGB(c Color) *rgb    { return &rgb{c.R, c.G, c.B} }
func (v *rgb) color() Color { return Color{v[0], v[1], v[2]} }

// wireShape is the JSON form shared by every shape kind. Circles use X and
// Y as the center, triangles and lines use Points.
type wireShape struct {
	Kind    string   `json:"kind"`
	X       int      `json:"x,omitempty"`
	Y       int      `json:"y,omitempty"`
	W       int      `json:"w,omitempty"`
	H       int      `json:"h,omitempty"`
	R       int      `json:"r,omitempty"`
	Points  [][2]int `json:"points,omitempty"`
	Fill    *rgb     `json:"fill,omitempty"`
	Outline *rgb     `json:"outline,omitempty"`
	Color   *rgb     `json:"color,omitempty"`
	Stroke  int      `json:"stroke,omitempty"`
}

func toWire(sh Shape) (wireShape, error) {
	w := wireShape{Kind: sh.Kind().String()}
	switch s := sh.(type) {
	case RectShape:
		w.X, w.Y, w.W, w.H = s.X, s.Y, s.Width, s.Height
		w.Fill, w.Outline, w.Stroke = toRGB(s.Fill), toRGB(s.Outline), s.StrokeWidth
	case CircleShape:
		w.X, w.Y, w.R = s.CX, s.CY, s.Radius
		w.Fill, w.Outline, w.Stroke = toRGB(s.Fill), toRGB(s.Outline), s.StrokeWidth
	case CircleOutlineShape:
		w.X, w.Y, w.R = s.CX, s.CY, s.Radius
		w.Outline, w.Stroke = toRGB(s.Outline), s.StrokeWidth
	case TriangleShape:
		w.Points = [][2]int{{s.P0.X, s.P0.Y}, {s.P1.X, s.P1.Y}, {s.P2.X, s.P2.Y}}
		w.Fill, w.Outline = toRGB(s.Fill), toRGB(s.Outline)
	case LineShape:
		w.Points = [][2]int{{s.P0.X, s.P0.Y}, {s.P1.X, s.P1.Y}}
		w.Color = toRGB(s.Color)
	case RoundRectShape:
		w.X, w.Y, w.W, w.H, w.R = s.X, s.Y, s.Width, s.Height, s.Radius
		w.Fill, w.Outline, w.Stroke = toRGB(s.Fill), toRGB(s.Outline), s.StrokeWidth
	default:
		return w, fmt.Errorf("%w: %T", ErrUnknownKind, sh)
	}
	return w, nil
}

func (w *wireShape) point(i int) image.Point {
	if i >= len(w.Points) {
		return image.Point{}
	}
	return image.Pt(w.Points[i][0], w.Points[i][1])
}

func colorOf(v *rgb) Color {
	if v == nil {
		return Color{}
	}
	return v.color()
}

func (w *wireShape) shape() (Shape, error) {
	kind, ok := ParseKind(w.Kind)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, w.Kind)
	}
	switch kind {
	case KindRect:
		return RectShape{
			X: w.X, Y: w.Y, Width: w.W, Height: w.H,
			Fill: colorOf(w.Fill), Outline: colorOf(w.Outline), StrokeWidth: w.Stroke,
		}, nil
	case KindCircle:
		return CircleShape{
			CX: w.X, CY: w.Y, Radius: w.R,
			Fill: colorOf(w.Fill), Outline: colorOf(w.Outline), StrokeWidth: w.Stroke,
		}, nil
	case KindCircleOutline:
		return CircleOutlineShape{
			CX: w.X, CY: w.Y, Radius: w.R,
			Outline: colorOf(w.Outline), StrokeWidth: w.Stroke,
		}, nil
	case KindTriangle:
		return TriangleShape{
			P0: w.point(0), P1: w.point(1), P2: w.point(2),
			Fill: colorOf(w.Fill), Outline: colorOf(w.Outline),
		}, nil
	case KindLine:
		return LineShape{P0: w.point(0), P1: w.point(1), Color: colorOf(w.Color)}, nil
	default: // KindRoundRect
		return RoundRectShape{
			X: w.X, Y: w.Y, Width: w.W, Height: w.H, Radius: w.R,
			Fill: colorOf(w.Fill), Outline: colorOf(w.Outline), StrokeWidth: w.Stroke,
		}, nil
	}
}

// MarshalShape encodes a shape as a JSON object tagged with its kind.
func MarshalShape(sh Shape) ([]byte, error) {
	w, err := toWire(sh)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalShape decodes a shape produced by MarshalShape.
func UnmarshalShape(data []byte) (Shape, error) {
	var w wireShape
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("sketch: decode shape: %w", err)
	}
	return w.shape()
}

// ShapeList is an ordered list of shapes with a JSON array encoding.
// Display surfaces use it to ship scene snapshots over the wire or into
// storage.
type ShapeList []Shape

// MarshalJSON implements json.Marshaler.
func (l ShapeList) MarshalJSON() ([]byte, error) {
	ws := make([]wireShape, len(l))
	for i, sh := range l {
		w, err := toWire(sh)
		if err != nil {
			return nil, err
		}
		ws[i] = w
	}
	return json.Marshal(ws)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *ShapeList) UnmarshalJSON(data []byte) error {
	var ws []wireShape
	if err := json.Unmarshal(data, &ws); err != nil {
		return fmt.Errorf("sketch: decode shapes: %w", err)
	}
	out := make(ShapeList, len(ws))
	for i := range ws {
		sh, err := ws[i].shape()
		if err != nil {
			return err
		}
		out[i] = sh
	}
	*l = out
	return nil
}

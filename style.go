package sketch

// Style holds the drawing state that shape constructors capture: the fill
// color, the outline color and the outline stroke width in pixels.
//
// A Style is a plain value. Shapes copy the fields they need when they are
// built, so changing a Style afterwards never affects existing shapes.
type Style struct {
	Fill        Color
	Outline     Color
	StrokeWidth int
}

// DefaultStyle returns the initial style: red fill, black outline and a
// one pixel stroke.
func DefaultStyle() Style {
	return Style{
		Fill:        Red,
		Outline:     Black,
		StrokeWidth: 1,
	}
}

// SetFillByName sets the fill color from the fill palette.
// Unknown names leave the fill unchanged.
func (s *Style) SetFillByName(name string) {
	c, ok := ResolveFill(name)
	if !ok {
		Logger().Debug("sketch: ignoring unknown fill color", "name", name)
		return
	}
	s.Fill = c
}

// SetOutlineByName sets the outline color from the outline palette.
// Unknown names, including fill-only names such as "yellow", leave the
// outline unchanged.
func (s *Style) SetOutlineByName(name string) {
	c, ok := ResolveOutline(name)
	if !ok {
		Logger().Debug("sketch: ignoring unknown outline color", "name", name)
		return
	}
	s.Outline = c
}

// SetStrokeWidth sets the outline width. The value is stored as given;
// zero and negative widths are not rejected.
func (s *Style) SetStrokeWidth(width int) {
	s.StrokeWidth = width
}

package sketch

// Option configures a Canvas during creation.
//
// Example:
//
//	surf, _ := display.Open("raster", display.DefaultOptions())
//	c := sketch.NewCanvas(sketch.WithDisplay(surf))
type Option func(*canvasOptions)

type canvasOptions struct {
	display Display
	style   Style
}

// WithDisplay attaches a display. The canvas makes its scene active on the
// display immediately and again after every ClearScene.
func WithDisplay(d Display) Option {
	return func(o *canvasOptions) {
		o.display = d
	}
}

// WithStyle sets the initial style instead of DefaultStyle.
func WithStyle(st Style) Option {
	return func(o *canvasOptions) {
		o.style = st
	}
}

// Canvas is an immediate-call drawing API. Style calls (Color, Outline,
// Stroke) update the canvas style; shape calls build a shape from the
// current style and append it to the current scene.
//
//	c := sketch.NewCanvas()
//	c.Color("yellow")
//	c.Outline("black")
//	c.Stroke(2)
//	c.Rectangle(60, 120, 120, 80)
//
// Drawing calls never fail. Unknown color names are ignored and geometry is
// stored as given. Errors reported by the display are available from Err.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	style   Style
	scene   *Scene
	display Display
	err     error
}

// NewCanvas creates a canvas with an empty scene.
func NewCanvas(opts ...Option) *Canvas {
	o := canvasOptions{style: DefaultStyle()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		style:   o.style,
		scene:   NewScene(),
		display: o.display,
	}
	c.activate()
	return c
}

// Color sets the fill color by name. See ResolveFill for the palette.
func (c *Canvas) Color(name string) {
	c.style.SetFillByName(name)
}

// Outline sets the outline color by name. See ResolveOutline for the palette.
func (c *Canvas) Outline(name string) {
	c.style.SetOutlineByName(name)
}

// Stroke sets the outline width in pixels.
func (c *Canvas) Stroke(width int) {
	c.style.SetStrokeWidth(width)
}

// Rectangle draws a box with top-left corner (x, y).
func (c *Canvas) Rectangle(x, y, w, h int) {
	c.add(NewRect(c.style, x, y, w, h))
}

// Circle draws a filled circle with an outline.
func (c *Canvas) Circle(x, y, r int) {
	c.add(NewCircle(c.style, x, y, r))
}

// CircleOutline draws only the circumference of a circle, in the current
// fill color.
func (c *Canvas) CircleOutline(x, y, r int) {
	c.add(NewCircleOutline(c.style, x, y, r))
}

// Triangle draws a filled triangle. The stroke width is not applied.
func (c *Canvas) Triangle(x0, y0, x1, y1, x2, y2 int) {
	c.add(NewTriangle(c.style, x0, y0, x1, y1, x2, y2))
}

// Line draws a line in the current fill color. The stroke width is not
// applied.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	c.add(NewLine(c.style, x0, y0, x1, y1))
}

// RoundedRect draws a box with corner radius min(w, h)/2.
func (c *Canvas) RoundedRect(x, y, w, h int) {
	c.add(NewRoundRect(c.style, x, y, w, h))
}

// ClearScene replaces the scene with a new empty one and makes it active on
// the display. The previous Scene value is left untouched.
func (c *Canvas) ClearScene() {
	c.scene = NewScene()
	c.activate()
}

// Scene returns the current scene.
func (c *Canvas) Scene() *Scene {
	return c.scene
}

// Err returns the first error reported by the display, if any.
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) add(sh Shape) {
	c.scene.Append(sh)
	if r, ok := c.display.(Refresher); ok {
		c.report(r.Refresh())
	}
}

func (c *Canvas) activate() {
	if c.display == nil {
		return
	}
	Logger().Debug("sketch: activating scene")
	c.report(c.display.SetScene(c.scene))
}

func (c *Canvas) report(err error) {
	if err == nil {
		return
	}
	Logger().Warn("sketch: display error", "err", err)
	if c.err == nil {
		c.err = err
	}
}

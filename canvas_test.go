package sketch

import (
	"errors"
	"testing"
)

// mockDisplay records the scenes it is given.
type mockDisplay struct {
	scenes    []*Scene
	refreshes int
	err       error
}

func (d *mockDisplay) SetScene(s *Scene) error {
	d.scenes = append(d.scenes, s)
	return d.err
}

type refreshingDisplay struct {
	mockDisplay
}

func (d *refreshingDisplay) Refresh() error {
	d.refreshes++
	return d.err
}

func TestCanvas_HouseWall(t *testing.T) {
	c := NewCanvas()
	c.Color("yellow")
	c.Outline("black")
	c.Stroke(2)
	c.Rectangle(60, 120, 120, 80)

	if c.Scene().Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Scene().Len())
	}
	got, ok := c.Scene().At(0).(RectShape)
	if !ok {
		t.Fatalf("At(0) is %T, want RectShape", c.Scene().At(0))
	}
	want := RectShape{
		X: 60, Y: 120, Width: 120, Height: 80,
		Fill: Color{255, 255, 0}, Outline: Color{0, 0, 0}, StrokeWidth: 2,
	}
	if got != want {
		t.Errorf("rectangle = %+v, want %+v", got, want)
	}
}

func TestCanvas_EveryCallAppendsOne(t *testing.T) {
	c := NewCanvas()
	calls := []struct {
		name string
		draw func()
		kind Kind
	}{
		{"rectangle", func() { c.Rectangle(10, 10, 60, 40) }, KindRect},
		{"circle", func() { c.Circle(120, 80, 30) }, KindCircle},
		{"circle_outline", func() { c.CircleOutline(250, 180, 30) }, KindCircleOutline},
		{"triangle", func() { c.Triangle(50, 200, 150, 200, 100, 120) }, KindTriangle},
		{"line", func() { c.Line(0, 0, 319, 239) }, KindLine},
		{"rounded_rect", func() { c.RoundedRect(0, 100, 80, 40) }, KindRoundRect},
	}
	for i, call := range calls {
		before := c.Scene().Len()
		call.draw()
		if c.Scene().Len() != before+1 {
			t.Errorf("%s: Len() = %d, want %d", call.name, c.Scene().Len(), before+1)
		}
		if k := c.Scene().At(i).Kind(); k != call.kind {
			t.Errorf("%s: appended %v, want %v", call.name, k, call.kind)
		}
	}
}

func TestCanvas_StyleSnapshot(t *testing.T) {
	c := NewCanvas()
	c.Color("green")
	c.Outline("blue")
	c.Stroke(3)
	c.Circle(120, 80, 30)

	c.Color("white")
	c.Outline("red")
	c.Stroke(9)

	got := c.Scene().At(0).(CircleShape)
	if got.Fill != Green || got.Outline != Blue || got.StrokeWidth != 3 {
		t.Errorf("later style calls affected an appended shape: %+v", got)
	}
}

func TestCanvas_UnknownNamesKeepStyle(t *testing.T) {
	c := NewCanvas()
	c.Color("purple")
	c.Outline("yellow")
	c.Rectangle(0, 0, 1, 1)

	got := c.Scene().At(0).(RectShape)
	if got.Fill != Red {
		t.Errorf("Fill = %v, want default red", got.Fill)
	}
	if got.Outline != Black {
		t.Errorf("Outline = %v, want default black", got.Outline)
	}
}

func TestCanvas_LineAndCircleOutlineUseFill(t *testing.T) {
	c := NewCanvas()
	c.Color("magenta")
	c.Outline("green")
	c.Stroke(5)
	c.CircleOutline(250, 180, 30)
	c.Line(0, 0, 10, 10)

	ring := c.Scene().At(0).(CircleOutlineShape)
	if ring.Outline != Magenta || ring.StrokeWidth != 5 {
		t.Errorf("circle outline = %+v, want magenta ring of width 5", ring)
	}
	line := c.Scene().At(1).(LineShape)
	if line.Color != Magenta {
		t.Errorf("line color = %v, want magenta", line.Color)
	}
}

func TestCanvas_ClearScene(t *testing.T) {
	c := NewCanvas()
	c.Rectangle(0, 0, 10, 10)
	c.Circle(5, 5, 2)

	before := c.Scene()
	c.ClearScene()

	if c.Scene().Len() != 0 {
		t.Errorf("Len() after clear = %d, want 0", c.Scene().Len())
	}
	if before.Len() != 2 {
		t.Errorf("old scene Len() = %d, want 2", before.Len())
	}

	c.Line(0, 0, 1, 1)
	if before.Len() != 2 {
		t.Errorf("drawing after clear changed the old scene: Len() = %d", before.Len())
	}
	if c.Scene() == before {
		t.Error("ClearScene should install a new scene")
	}
}

func TestCanvas_ClearKeepsStyle(t *testing.T) {
	c := NewCanvas()
	c.Color("cyan")
	c.ClearScene()
	c.Rectangle(0, 0, 1, 1)
	if got := c.Scene().At(0).(RectShape).Fill; got != Cyan {
		t.Errorf("Fill after clear = %v, want cyan", got)
	}
}

func TestCanvas_WithStyle(t *testing.T) {
	c := NewCanvas(WithStyle(Style{Fill: Gray, Outline: White, StrokeWidth: 4}))
	c.Rectangle(0, 0, 1, 1)
	got := c.Scene().At(0).(RectShape)
	if got.Fill != Gray || got.Outline != White || got.StrokeWidth != 4 {
		t.Errorf("rectangle = %+v, want the configured style", got)
	}
}

func TestCanvas_Display(t *testing.T) {
	d := &mockDisplay{}
	c := NewCanvas(WithDisplay(d))
	if len(d.scenes) != 1 || d.scenes[0] != c.Scene() {
		t.Fatalf("NewCanvas did not activate its scene: %v", d.scenes)
	}

	c.Rectangle(0, 0, 1, 1)
	c.ClearScene()
	if len(d.scenes) != 2 || d.scenes[1] != c.Scene() {
		t.Fatalf("ClearScene did not activate the new scene: %v", d.scenes)
	}
	if c.Err() != nil {
		t.Errorf("Err() = %v", c.Err())
	}
}

func TestCanvas_Refresher(t *testing.T) {
	d := &refreshingDisplay{}
	c := NewCanvas(WithDisplay(d))
	c.Rectangle(0, 0, 1, 1)
	c.Line(0, 0, 1, 1)
	if d.refreshes != 2 {
		t.Errorf("refreshes = %d, want 2", d.refreshes)
	}
}

func TestCanvas_DisplayErrorKept(t *testing.T) {
	errBoom := errors.New("boom")
	d := &refreshingDisplay{mockDisplay{err: errBoom}}
	c := NewCanvas(WithDisplay(d))
	c.Rectangle(0, 0, 1, 1)

	if !errors.Is(c.Err(), errBoom) {
		t.Errorf("Err() = %v, want %v", c.Err(), errBoom)
	}
	if c.Scene().Len() != 1 {
		t.Errorf("display errors must not affect the scene: Len() = %d", c.Scene().Len())
	}
}

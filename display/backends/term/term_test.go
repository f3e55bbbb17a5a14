// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"errors"
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/display"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellColors(t *testing.T, s tcell.Screen, x, y int) (rune, sketch.Color, sketch.Color) {
	t.Helper()
	r, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return r, toColor(fg), toColor(bg)
}

func toColor(c tcell.Color) sketch.Color {
	r, g, b := c.RGB()
	return sketch.Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

func testOptions() display.Options {
	o := display.DefaultOptions()
	o.Background = sketch.Blue
	return o
}

func TestSurface_DrawsHalfBlocks(t *testing.T) {
	screen := newScreen(t, 40, 15)
	surf := New(screen, testOptions())
	c := sketch.NewCanvas(sketch.WithDisplay(surf))
	c.Color("red")
	c.Rectangle(0, 0, 160, 240)

	if err := c.Err(); err != nil {
		t.Fatalf("canvas error = %v", err)
	}

	r, fg, bg := cellColors(t, screen, 5, 7)
	if r != halfBlock {
		t.Errorf("cell rune = %q, want %q", r, halfBlock)
	}
	if fg != sketch.Red || bg != sketch.Red {
		t.Errorf("left cell = %v/%v, want red/red", fg, bg)
	}

	_, fg, bg = cellColors(t, screen, 35, 7)
	if fg != sketch.Blue || bg != sketch.Blue {
		t.Errorf("right cell = %v/%v, want blue/blue", fg, bg)
	}
}

func TestSurface_RefreshSkipsUnchangedScene(t *testing.T) {
	screen := newScreen(t, 40, 15)
	surf := New(screen, testOptions())
	c := sketch.NewCanvas(sketch.WithDisplay(surf))
	c.Rectangle(0, 0, 10, 10)

	screen.SetContent(0, 0, 'x', nil, tcell.StyleDefault)
	if err := surf.Refresh(); err != nil {
		t.Fatal(err)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != 'x' {
		t.Errorf("unchanged scene was redrawn, cell = %q", r)
	}

	c.Circle(100, 100, 10)
	if r, _, _, _ := screen.GetContent(0, 0); r != halfBlock {
		t.Errorf("grown scene not redrawn, cell = %q", r)
	}

	screen.SetContent(0, 0, 'x', nil, tcell.StyleDefault)
	c.ClearScene()
	if r, _, _, _ := screen.GetContent(0, 0); r != halfBlock {
		t.Errorf("new scene not redrawn, cell = %q", r)
	}
}

func TestSurface_RunReturnsOnKey(t *testing.T) {
	screen := newScreen(t, 20, 10)
	surf := New(screen, testOptions())
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	if err := surf.Run(); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

type finiCounter struct {
	tcell.Screen
	calls int
}

func (f *finiCounter) Fini() { f.calls++ }

func TestSurface_CloseLeavesBorrowedScreen(t *testing.T) {
	screen := &finiCounter{Screen: newScreen(t, 20, 10)}
	surf := New(screen, testOptions())
	if err := surf.Close(); err != nil {
		t.Fatal(err)
	}
	if screen.calls != 0 {
		t.Errorf("Fini called %d times on a borrowed screen", screen.calls)
	}
	if err := surf.SetScene(sketch.NewScene()); !errors.Is(err, display.ErrClosed) {
		t.Errorf("SetScene after Close = %v, want ErrClosed", err)
	}

	owned := &finiCounter{Screen: newScreen(t, 20, 10)}
	surf = New(owned, testOptions())
	surf.owned = true
	_ = surf.Close()
	_ = surf.Close()
	if owned.calls != 1 {
		t.Errorf("Fini called %d times on an owned screen, want 1", owned.calls)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name     string
		src, dst image.Point
		want     image.Rectangle
	}{
		{"exact", image.Pt(320, 240), image.Pt(40, 30), image.Rect(0, 0, 40, 30)},
		{"wide screen", image.Pt(320, 240), image.Pt(80, 30), image.Rect(20, 0, 60, 30)},
		{"tall screen", image.Pt(320, 240), image.Pt(40, 60), image.Rect(0, 15, 40, 45)},
		{"empty source", image.Pt(0, 0), image.Pt(40, 30), image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fit(tt.src, tt.dst); got != tt.want {
				t.Errorf("fit(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

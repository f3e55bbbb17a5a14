// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/display"
)

func pixel(s *Surface, x, y int) sketch.Color {
	r, g, b, _ := s.Frame().At(x, y).RGBA()
	return sketch.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestSurface_RendersScene(t *testing.T) {
	a := test.NewApp()
	s := New(a, display.DefaultOptions())
	c := sketch.NewCanvas(sketch.WithDisplay(s))

	c.Color("green")
	c.Rectangle(0, 0, 100, 100)
	if err := c.Err(); err != nil {
		t.Fatalf("canvas error = %v", err)
	}
	if got := pixel(s, 50, 50); got != sketch.Green {
		t.Errorf("pixel = %v, want %v", got, sketch.Green)
	}

	c.ClearScene()
	if got := pixel(s, 50, 50); got != sketch.Black {
		t.Errorf("pixel after clear = %v, want %v", got, sketch.Black)
	}
}

func TestSurface_WindowSize(t *testing.T) {
	a := test.NewApp()
	opts := display.DefaultOptions()
	opts.Rotation = 90
	opts.Title = "house"
	s := New(a, opts)

	if got := s.Window().Title(); got != "house" {
		t.Errorf("Title() = %q, want %q", got, "house")
	}
	b := s.Frame().Bounds()
	if b.Dx() != 240 || b.Dy() != 320 {
		t.Errorf("frame bounds = %v, want 240x320", b)
	}
	if s.Window().Content() != s.image {
		t.Error("window content is not the frame image")
	}
}

func TestSurface_Close(t *testing.T) {
	a := test.NewApp()
	s := New(a, display.DefaultOptions())
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := s.SetScene(sketch.NewScene()); !errors.Is(err, display.ErrClosed) {
		t.Errorf("SetScene after Close = %v, want ErrClosed", err)
	}
	if err := s.Refresh(); !errors.Is(err, display.ErrClosed) {
		t.Errorf("Refresh after Close = %v, want ErrClosed", err)
	}
}

func TestOpen_UsesCurrentApp(t *testing.T) {
	test.NewApp()
	surf, err := display.Open("window", display.DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer surf.Close()
	if _, ok := surf.(*Surface); !ok {
		t.Errorf("Open() returned %T, want *Surface", surf)
	}
}

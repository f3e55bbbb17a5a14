package sketch

import (
	"image"
	"iter"
	"slices"
)

// Scene is the retained picture: an ordered, append-only list of shapes.
// Later shapes are drawn on top of earlier ones.
//
// A Scene only grows. To start over, replace it with a new Scene (see
// Canvas.ClearScene); holders of the old Scene keep seeing its contents.
//
// Scene is not safe for concurrent use.
type Scene struct {
	shapes []Shape

	// version is incremented on each append for change detection
	version uint64
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{shapes: make([]Shape, 0, 16)}
}

// Append adds a shape on top of the scene. Nil shapes are ignored.
func (s *Scene) Append(sh Shape) {
	if sh == nil {
		return
	}
	s.shapes = append(s.shapes, sh)
	s.version++
}

// Len returns the number of shapes in the scene.
func (s *Scene) Len() int {
	return len(s.shapes)
}

// At returns the i-th shape in drawing order.
// It panics if i is out of range.
func (s *Scene) At(i int) Shape {
	return s.shapes[i]
}

// Shapes returns a copy of the shapes in drawing order.
func (s *Scene) Shapes() []Shape {
	return slices.Clone(s.shapes)
}

// All iterates over the shapes in drawing order.
func (s *Scene) All() iter.Seq2[int, Shape] {
	return slices.All(s.shapes)
}

// Version returns a counter that changes every time the scene grows.
func (s *Scene) Version() uint64 {
	return s.version
}

// Bounds returns the union of all shape bounds, or the empty rectangle for
// an empty scene.
func (s *Scene) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, sh := range s.shapes {
		b = b.Union(sh.Bounds())
	}
	return b
}

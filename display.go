package sketch

// Display is a surface that shows a Scene. The sketch core never renders
// pixels itself; it only tells the display which scene is active.
//
// Implementations live in the display package and its backends.
type Display interface {
	// SetScene makes s the active picture, replacing whatever was shown
	// before. Implementations must not modify s.
	SetScene(s *Scene) error
}

// Refresher is an optional interface for displays that redraw the active
// scene after it grows. Canvas calls Refresh after every appended shape.
type Refresher interface {
	Refresh() error
}

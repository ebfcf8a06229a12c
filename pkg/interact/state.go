package interact

import (
	"fmt"

	"tableflip.dev/daygrid/pkg/calendar"
)

// Kind names the controller's mutually exclusive modes.
type Kind int

const (
	Idle Kind = iota
	QuickAdding
	Editing
	Dragging
	HoverPending
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "Idle"
	case QuickAdding:
		return "QuickAdding"
	case Editing:
		return "Editing"
	case Dragging:
		return "Dragging"
	case HoverPending:
		return "HoverPending"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Point is where an edit form is anchored on screen.
type Point struct {
	X, Y int
}

// State is a snapshot of the ephemeral interaction record.
type State struct {
	Kind Kind
	// Anchor is the quick-add target.
	Anchor calendar.Anchor
	// TaskID is the task being edited, dragged or hovered.
	TaskID string
	Point  Point
	// Target is the current eligible drop slot while dragging.
	Target *calendar.Anchor
}

// idle reports whether a new gesture may start. A pending hover yields to
// any other gesture.
func (s State) idle() bool {
	return s.Kind == Idle || s.Kind == HoverPending
}

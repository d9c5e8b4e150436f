package dom

import "github.com/matzehuels/dragbox/pkg/geom"

// EventType names an input event.
type EventType string

const (
	// EventDown is a mouse button press or a touch start.
	EventDown EventType = "down"
	// EventMove is pointer motion or touch movement.
	EventMove EventType = "move"
	// EventUp is a mouse button release or a touch end.
	EventUp EventType = "up"
	// EventResize is a viewport size change; it is only delivered to the window.
	EventResize EventType = "resize"
)

// Modality identifies the device an input came from.
type Modality uint8

const (
	ModalityMouse Modality = iota
	ModalityTouch
)

func (m Modality) String() string {
	if m == ModalityTouch {
		return "touch"
	}
	return "mouse"
}

// Button identifies a mouse button using pointer-event numbering.
type Button uint8

const (
	ButtonPrimary   Button = 0
	ButtonAuxiliary Button = 1
	ButtonSecondary Button = 2
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonAuxiliary:
		return "auxiliary"
	case ButtonSecondary:
		return "secondary"
	default:
		return "other"
	}
}

// Input is a raw pointer input. Mouse and Touch are the two variants; both
// normalise to a single client position.
type Input interface {
	Modality() Modality
	// Point returns the client position that drives drag logic: the mouse
	// position, or the first active touch. It reports false when there is none.
	Point() (geom.Point, bool)
}

// Mouse is a mouse input at client position (X, Y).
type Mouse struct {
	X, Y   float64
	Button Button
}

// Modality implements Input.
func (Mouse) Modality() Modality { return ModalityMouse }

// Point implements Input.
func (m Mouse) Point() (geom.Point, bool) { return geom.Point{X: m.X, Y: m.Y}, true }

// TouchPoint is one finger of a touch input.
type TouchPoint struct {
	ID   int
	X, Y float64

	// Target is the node the touch started on. The document fills it in during
	// dispatch.
	Target *Node
}

// Touch is a touch input. For EventDown and EventMove, Touches lists the
// active touches; for EventUp it lists the touches that ended.
type Touch struct {
	Touches []TouchPoint
}

// Modality implements Input.
func (Touch) Modality() Modality { return ModalityTouch }

// Point implements Input.
func (t Touch) Point() (geom.Point, bool) {
	if len(t.Touches) == 0 {
		return geom.Point{}, false
	}
	return geom.Point{X: t.Touches[0].X, Y: t.Touches[0].Y}, true
}

// Event is a dispatched input event.
type Event struct {
	Type   EventType
	Input  Input
	Target *Node

	defaultPrevented bool
	passive          bool
}

// Point returns the normalised client position of the event.
func (e *Event) Point() (geom.Point, bool) {
	if e.Input == nil {
		return geom.Point{}, false
	}
	return e.Input.Point()
}

// IsTouch reports whether the event came from a touch device.
func (e *Event) IsTouch() bool {
	return e.Input != nil && e.Input.Modality() == ModalityTouch
}

// IsPrimary reports whether the event is a touch or uses the primary mouse button.
func (e *Event) IsPrimary() bool {
	switch in := e.Input.(type) {
	case Touch:
		return true
	case Mouse:
		return in.Button == ButtonPrimary
	default:
		return false
	}
}

// PreventDefault suppresses the host's default handling of the event, such as
// scrolling or text selection. Calls from passive listeners are ignored.
func (e *Event) PreventDefault() {
	if e.passive {
		return
	}
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a non-passive listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

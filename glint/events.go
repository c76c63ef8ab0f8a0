package glint

import "github.com/sablegfx/ember/geom"

type EventKind int

const (
	EventClosed EventKind = iota
	EventResized
	EventMoved
	EventFocused
	EventUnfocused
	EventKeyPressed
	EventKeyReleased
	EventMouseMoved
	EventMouseButtonPressed
	EventMouseButtonReleased
	EventMouseWheel
)

func (k EventKind) String() string {
	switch k {
	case EventClosed:
		return "Closed"
	case EventResized:
		return "Resized"
	case EventMoved:
		return "Moved"
	case EventFocused:
		return "Focused"
	case EventUnfocused:
		return "Unfocused"
	case EventKeyPressed:
		return "KeyPressed"
	case EventKeyReleased:
		return "KeyReleased"
	case EventMouseMoved:
		return "MouseMoved"
	case EventMouseButtonPressed:
		return "MouseButtonPressed"
	case EventMouseButtonReleased:
		return "MouseButtonReleased"
	case EventMouseWheel:
		return "MouseWheel"
	default:
		return "Unknown"
	}
}

// Event is a single windowing event. Window identifies the window the
// event originated from. Only the fields matching Kind carry a value.
type Event struct {
	Kind   EventKind
	Window WindowID

	// new client size for EventResized, new position for EventMoved
	Size geom.Vec2i
	Pos  geom.Vec2i

	// key for EventKeyPressed and EventKeyReleased
	Key Key

	// button for the mouse button events
	Button MouseButton

	// cursor position for EventMouseMoved, scroll delta for EventMouseWheel
	Cursor geom.Vec2f
	Scroll geom.Vec2f
}

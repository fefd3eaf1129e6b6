package bramble

import "fmt"

// EventKind identifies an input event.
type EventKind uint8

const (
	EventMouseClick  EventKind = iota // button click, Click holds the button
	EventMouseMove                    // pointer moved by (DX, DY)
	EventMouseEnter                   // pointer entered a widget's bounds
	EventMouseExit                    // pointer left a widget's bounds
	EventMouseScroll                  // wheel moved by Scroll lines
	EventKeyPress                     // bound key pressed, Action holds the action
)

var eventKindNames = [...]string{"MouseClick", "MouseMove", "MouseEnter", "MouseExit", "MouseScroll", "KeyPress"}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event is a discrete input event. Every event carries the pointer position
// at the time it was produced, which is what hit testing uses.
type Event struct {
	Kind   EventKind
	Mouse  Point
	Click  ClickKind
	DX, DY int
	Scroll int
	Action InputAction
}

// MouseClickEvent builds a click at p.
func MouseClickEvent(p Point, kind ClickKind) Event {
	return Event{Kind: EventMouseClick, Mouse: p, Click: kind}
}

// MouseMoveEvent builds a move to p that travelled (dx, dy).
func MouseMoveEvent(p Point, dx, dy int) Event {
	return Event{Kind: EventMouseMove, Mouse: p, DX: dx, DY: dy}
}

// MouseScrollEvent builds a wheel event at p.
func MouseScrollEvent(p Point, scroll int) Event {
	return Event{Kind: EventMouseScroll, Mouse: p, Scroll: scroll}
}

// KeyPressEvent builds a key action with the pointer at p.
func KeyPressEvent(p Point, action InputAction) Event {
	return Event{Kind: EventKeyPress, Mouse: p, Action: action}
}

// enteredFrom is the synthetic enter that precedes ev on first contact.
func (ev Event) enteredFrom() Event {
	return Event{Kind: EventMouseEnter, Mouse: ev.Mouse}
}

// exitedFrom is the synthetic exit sent when ev no longer hits a widget.
func (ev Event) exitedFrom() Event {
	return Event{Kind: EventMouseExit, Mouse: ev.Mouse}
}

func (ev Event) String() string {
	switch ev.Kind {
	case EventMouseClick:
		return fmt.Sprintf("%s(%s)@%s", ev.Kind, ev.Click, ev.Mouse)
	case EventMouseMove:
		return fmt.Sprintf("%s(%d,%d)@%s", ev.Kind, ev.DX, ev.DY, ev.Mouse)
	case EventMouseScroll:
		return fmt.Sprintf("%s(%d)@%s", ev.Kind, ev.Scroll, ev.Mouse)
	case EventKeyPress:
		return fmt.Sprintf("%s(%s)@%s", ev.Kind, ev.Action, ev.Mouse)
	}
	return fmt.Sprintf("%s@%s", ev.Kind, ev.Mouse)
}

// EntityStore receives interaction events for widgets that carry an entity
// ID, bridging the UI into an ECS world.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent is what the ECS bridge sees for each event a widget's own
// handler processed.
type InteractionEvent struct {
	Kind     EventKind
	EntityID uint32
	Widget   string
	Mouse    Point
	Click    ClickKind
	Scroll   int
	Action   InputAction
	Handled  bool
}

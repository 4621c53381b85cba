package window

import (
	"fmt"
	"log/slog"
)

type EventKind uint8

const (
	EventKey EventKind = iota + 1
	EventMouseButton
	EventCursorPos
	EventFocus
)

func (k EventKind) String() string {
	switch k {
	case EventKey:
		return "key"
	case EventMouseButton:
		return "mouse-button"
	case EventCursorPos:
		return "cursor-pos"
	case EventFocus:
		return "focus"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

type Action uint8

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

type MouseButton uint8

// Event is one window-system event, stamped with the window-system clock
// (seconds). Kind selects which of the remaining fields are meaningful.
type Event struct {
	Time float64
	Kind EventKind

	// EventKey
	Key    Key
	Action Action

	// EventMouseButton
	Button MouseButton

	// EventCursorPos
	X, Y float64

	// EventFocus
	Focused bool
}

// LogValue renders the event for structured logging, keeping only the
// fields that belong to the event kind.
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", e.Kind.String()),
	}

	switch e.Kind {
	case EventKey:
		attrs = append(attrs,
			slog.String("key", e.Key.String()),
			slog.String("action", e.Action.String()),
		)

	case EventMouseButton:
		attrs = append(attrs,
			slog.Int("button", int(e.Button)),
			slog.String("action", e.Action.String()),
		)

	case EventCursorPos:
		attrs = append(attrs,
			slog.Float64("x", e.X),
			slog.Float64("y", e.Y),
		)

	case EventFocus:
		attrs = append(attrs, slog.Bool("focused", e.Focused))
	}

	return slog.GroupValue(attrs...)
}

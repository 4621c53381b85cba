package window

import "fmt"

// Key identifies a keyboard key independent of the windowing library.
// Only the keys the lifecycle cares about are named; everything else maps
// to KeyUnknown and is merely observed.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyRight
	KeyLeft
	KeyDown
	KeyUp

	// Key0 through Key9 and KeyA through KeyZ are contiguous.
	Key0
	Key9 = Key0 + 9
	KeyA = Key9 + 1
	KeyZ = KeyA + 25
)

func (k Key) String() string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + k - KeyA))
	}

	switch k {
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeySpace:
		return "space"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case KeyUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

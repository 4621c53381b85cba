package window

import (
	"fmt"
	"unsafe"
)

// HandleKind tags the platform variant of a NativeHandle. Exactly one kind
// is produced per process, selected by the windowing layer when the handle
// is acquired.
type HandleKind uint8

const (
	HandleNone HandleKind = iota
	HandleXlib
	HandleWayland
	HandleCocoa
	HandleWin32
)

func (k HandleKind) String() string {
	switch k {
	case HandleNone:
		return "none"
	case HandleXlib:
		return "xlib"
	case HandleWayland:
		return "wayland"
	case HandleCocoa:
		return "cocoa"
	case HandleWin32:
		return "win32"
	default:
		return fmt.Sprintf("HandleKind(%d)", uint8(k))
	}
}

// NativeHandle is a closed variant over the window references the
// supported platforms hand out. Kind selects which fields are set. The
// pointers borrow OS objects owned by the window and must not outlive it.
type NativeHandle struct {
	Kind HandleKind

	// HandleXlib: Window is the X11 window id, Display the Xlib Display*.
	Window  uintptr
	Display unsafe.Pointer

	// HandleWayland: Surface is the wl_surface*, Display the wl_display*.
	Surface unsafe.Pointer

	// HandleCocoa
	NSWindow unsafe.Pointer

	// HandleWin32
	HWND unsafe.Pointer
}

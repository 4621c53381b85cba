package app

import (
	"fmt"
	"unsafe"

	"github.com/tversted/skylight/backend"
	"github.com/tversted/skylight/window"
)

// ResolvePlatformData converts a native window handle into the two opaque
// pointers the rendering backend binds its output surface to. Pure
// transform; handles are stable for the window's lifetime, so the same
// handle resolves identically at backend-reinitialization time.
func ResolvePlatformData(h window.NativeHandle) (backend.PlatformData, error) {
	pd := backend.PlatformData{Kind: h.Kind}

	switch h.Kind {
	case window.HandleXlib:
		// X11 window ids are integers; they travel in the pointer slot
		pd.NWH = unsafe.Pointer(h.Window)
		pd.NDT = h.Display

	case window.HandleWayland:
		// wayland has no window separate from the surface. The backend
		// expects the display in the window slot and the surface in the
		// display slot.
		pd.NWH = h.Display
		pd.NDT = h.Surface

	case window.HandleCocoa:
		pd.NWH = h.NSWindow

	case window.HandleWin32:
		pd.NWH = h.HWND

	default:
		return backend.PlatformData{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, h.Kind)
	}

	return pd, nil
}

// Package window owns the OS-level windowing surface. It creates the host
// window, exposes its native handle and framebuffer size, and queues the
// window-system events that the run loop drains once per tick.
package window

import "runtime"

func init() {
	// The window, its event queue and the GPU context must all live on the
	// thread that created the window.
	runtime.LockOSThread()
}

// Size is the pixel dimensions of the drawable area of a window. It may
// differ from the logical window size under display scaling.
type Size struct {
	Width  uint32
	Height uint32
}

type Window interface {
	// NativeHandle returns the platform handle of the window. The handle
	// stays valid for the lifetime of the window.
	NativeHandle() NativeHandle

	// FramebufferSize samples the current drawable size in pixels.
	FramebufferSize() Size

	ShouldClose() bool
	RequestClose()

	// MakeCurrent binds the window's rendering context to the calling
	// thread, if the window carries one.
	MakeCurrent()

	// SetKeyEventsEnabled turns delivery of key events on or off. Key
	// events are disabled until the run loop asks for them.
	SetKeyEventsEnabled(enabled bool)

	// PollEvents asks the window system for new events without blocking.
	PollEvents()

	// DrainEvents returns all events queued so far, in arrival order, and
	// empties the queue.
	DrainEvents() []Event

	Terminate()
}

// Package backend defines the rendering-backend collaborator: the GPU
// library that binds to a native window surface and presents frames. The
// lifecycle core talks to it through the Backend interface only; the
// production implementation runs on webgpu.
package backend

// ViewID names one of the backend's render views. View 0 is the window
// surface.
type ViewID uint16

// Backend is the narrow surface the lifecycle consumes. A process holds at
// most one backend; Init must succeed before any other call, and Shutdown
// must be the last call.
type Backend interface {
	// Init starts the backend against the platform data in params. A zero
	// resolution defers the output surface to the first Reset.
	Init(params InitParams) error

	// Reset reallocates the output surface to the given size.
	Reset(width, height uint32, flags ResetFlags)

	SetDebug(flags DebugFlags)

	// SetViewClear configures what a view clears to when it is touched.
	// rgba is packed 0xRRGGBBAA.
	SetViewClear(view ViewID, flags ClearFlags, rgba uint32, depth float32, stencil uint8)

	SetViewRect(view ViewID, x, y, width, height uint16)

	// Touch submits an empty draw to the view so it is cleared even when
	// nothing else renders into it.
	Touch(view ViewID)

	DebugTextClear()
	DebugTextPrintf(x, y uint16, attr uint8, format string, args ...any)

	// Frame renders the touched views, presents, and advances the backend
	// frame counter. It never fails; acquisition hiccups are logged and the
	// frame is dropped. Returns the frame number.
	Frame(capture bool) uint32

	Shutdown()
}

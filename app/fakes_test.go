package app

import (
	"fmt"

	"github.com/tversted/skylight/backend"
	"github.com/tversted/skylight/window"
)

// fakeWindow scripts a window for lifecycle tests: framebuffer sizes are
// consumed per call, events are handed out on the next drain, and the
// window closes itself after a fixed number of polls.
type fakeWindow struct {
	handle window.NativeHandle
	size   window.Size

	// sizes overrides size; one entry is consumed per FramebufferSize call
	// (the first by the creation-time seed).
	sizes []window.Size

	pending []window.Event

	// closeAfter closes the window after that many polls; zero leaves
	// closing to the events.
	closeAfter int

	polls       int
	closed      bool
	keyEvents   bool
	madeCurrent bool
	terminated  bool
}

func (f *fakeWindow) NativeHandle() window.NativeHandle { return f.handle }

func (f *fakeWindow) FramebufferSize() window.Size {
	if len(f.sizes) > 0 {
		size := f.sizes[0]
		f.sizes = f.sizes[1:]
		return size
	}

	return f.size
}

func (f *fakeWindow) ShouldClose() bool { return f.closed }
func (f *fakeWindow) RequestClose()     { f.closed = true }
func (f *fakeWindow) MakeCurrent()      { f.madeCurrent = true }

func (f *fakeWindow) SetKeyEventsEnabled(enabled bool) { f.keyEvents = enabled }

func (f *fakeWindow) PollEvents() {
	f.polls++
	if f.closeAfter > 0 && f.polls >= f.closeAfter {
		f.closed = true
	}
}

func (f *fakeWindow) DrainEvents() []window.Event {
	drained := f.pending
	f.pending = nil
	return drained
}

func (f *fakeWindow) Terminate() { f.terminated = true }

// recorderBackend records every backend call in order.
type recorderBackend struct {
	calls   []string
	initErr error
}

func (r *recorderBackend) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorderBackend) Init(params backend.InitParams) error {
	if r.initErr != nil {
		return r.initErr
	}

	r.record("init %s %dx%d", params.Renderer, params.Width, params.Height)
	return nil
}

func (r *recorderBackend) Reset(width, height uint32, flags backend.ResetFlags) {
	r.record("reset %dx%d", width, height)
}

func (r *recorderBackend) SetDebug(flags backend.DebugFlags) {
	r.record("set_debug")
}

func (r *recorderBackend) SetViewClear(view backend.ViewID, flags backend.ClearFlags, rgba uint32, depth float32, stencil uint8) {
	r.record("set_view_clear %d %08x", view, rgba)
}

func (r *recorderBackend) SetViewRect(view backend.ViewID, x, y, width, height uint16) {
	r.record("set_view_rect %d %dx%d", view, width, height)
}

func (r *recorderBackend) Touch(view backend.ViewID) {
	r.record("touch %d", view)
}

func (r *recorderBackend) DebugTextClear() {
	r.record("dbg_text_clear")
}

func (r *recorderBackend) DebugTextPrintf(x, y uint16, attr uint8, format string, args ...any) {
	r.record("dbg_text %s", fmt.Sprintf(format, args...))
}

func (r *recorderBackend) Frame(capture bool) uint32 {
	r.record("frame")
	return uint32(r.count("frame"))
}

func (r *recorderBackend) Shutdown() {
	r.record("shutdown")
}

// count returns how many recorded calls start with prefix.
func (r *recorderBackend) count(prefix string) int {
	n := 0
	for _, call := range r.calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			n++
		}
	}

	return n
}

// index returns the position of the first call starting with prefix, or -1.
func (r *recorderBackend) index(prefix string) int {
	for i, call := range r.calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			return i
		}
	}

	return -1
}

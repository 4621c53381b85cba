// Package app drives a host window and a rendering backend through their
// shared lifecycle: create the window, bind the backend to its native
// handle, keep the output surface sized to the framebuffer once per frame,
// and tear both down in order.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/tversted/skylight/backend"
	"github.com/tversted/skylight/window"
)

// mainView is the backend view bound to the window surface.
const mainView backend.ViewID = 0

// clearColor is the packed 0xRRGGBBAA the main view clears to.
const clearColor uint32 = 0x103030ff

// Config are the startup parameters of a lifecycle. Created once, never
// mutated.
type Config struct {
	Title  string
	Width  int
	Height int
	Mode   window.Mode
	Debug  backend.DebugFlags
}

// Lifecycle owns one window and the backend context rendering into it. It
// moves strictly forward through its states; none is revisited, and a
// second concurrent instance is not supported.
type Lifecycle struct {
	cfg  Config
	win  window.Window
	gpu  backend.Backend
	gate ResetGate

	state    State
	size     window.Size
	stats    frameStats
	released bool
}

// New creates the host window for cfg. The window system is initialized
// here and nowhere else; the backend is not touched until Init.
func New(cfg Config) (*Lifecycle, error) {
	win, err := window.New(window.Config{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Mode:    cfg.Mode,
		Profile: cfg.Debug&backend.DebugProfiler != 0,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}

	return newLifecycle(cfg, win, backend.NewWGPU()), nil
}

// newLifecycle wires an existing window and backend together. The reset
// gate and the active surface size are both seeded with the creation-time
// framebuffer size, so the first frame resets the backend only if the
// framebuffer disagrees with it.
func newLifecycle(cfg Config, win window.Window, gpu backend.Backend) *Lifecycle {
	size := win.FramebufferSize()

	return &Lifecycle{
		cfg:   cfg,
		win:   win,
		gpu:   gpu,
		gate:  NewResetGate(size),
		size:  size,
		state: StateCreated,
	}
}

func (l *Lifecycle) State() State {
	return l.state
}

// Init resolves the window's native handle and starts the backend against
// it. Failure is fatal for the run; the lifecycle must not proceed to Run.
func (l *Lifecycle) Init() error {
	if l.state != StateCreated {
		return fmt.Errorf("init: lifecycle is %s, want %s", l.state, StateCreated)
	}

	pd, err := ResolvePlatformData(l.win.NativeHandle())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendInit, err)
	}

	err = l.gpu.Init(backend.InitParams{
		Renderer: rendererFor(runtime.GOOS),
		// resolution stays 0x0: defer to the first observed framebuffer size
		Reset:    backend.ResetVsync,
		Platform: pd,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendInit, err)
	}

	l.gpu.SetDebug(l.cfg.Debug)
	l.gpu.SetViewClear(mainView, backend.ClearColor|backend.ClearDepth, clearColor, 1.0, 0)

	l.state = StateBackendInitialized
	return nil
}

// Run blocks in the frame loop until the window requests close.
func (l *Lifecycle) Run() error {
	if l.state != StateBackendInitialized {
		return fmt.Errorf("run: lifecycle is %s, want %s", l.state, StateBackendInitialized)
	}

	l.win.MakeCurrent()
	l.win.SetKeyEventsEnabled(true)
	l.state = StateRunning

	for !l.win.ShouldClose() {
		l.tick()
	}

	slog.Info("Close requested, leaving run loop", slog.Uint64("frames", l.stats.frames))

	l.state = StateClosed
	return nil
}

func (l *Lifecycle) tick() {
	pumpEvents(l.win)

	size := l.win.FramebufferSize()
	if l.gate.Observe(size) {
		slog.Debug("Resize backend surface",
			slog.Int("width", int(size.Width)),
			slog.Int("height", int(size.Height)),
		)

		l.gpu.Reset(size.Width, size.Height, backend.ResetVsync)
		l.size = size
	}

	l.gpu.SetViewRect(mainView, 0, 0, uint16(size.Width), uint16(size.Height))
	l.gpu.Touch(mainView)

	l.drawOverlay()

	l.stats.tick()

	// an empty frame is still submitted so the backend frame counter
	// advances
	l.gpu.Frame(false)
}

// Shutdown releases the backend and the window, in that order: the backend
// borrows native handles that must not outlive the window. Valid exactly
// once, after the run loop has exited.
func (l *Lifecycle) Shutdown() error {
	if l.state != StateClosed {
		return fmt.Errorf("shutdown: lifecycle is %s, want %s", l.state, StateClosed)
	}

	if l.released {
		return errors.New("shutdown: already released")
	}
	l.released = true

	l.gpu.Shutdown()
	l.win.Terminate()
	return nil
}

// rendererFor picks the backend renderer by platform policy. There is no
// runtime negotiation.
func rendererFor(goos string) backend.RendererType {
	if goos == "darwin" {
		return backend.RendererMetal
	}

	return backend.RendererVulkan
}

package window

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	queue []Event
}

// New creates the host window. This is the only place the window system is
// initialized; it must happen before any backend call.
func New(cfg Config) (Window, error) {
	// validate the caller's values before defaults and clamping get a
	// chance to paper over them
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("window config: %w", err)
	}

	cfg = cfg.withDefaults()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// The backend owns the GPU device, so no client context is created.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	width, height := cfg.Width, cfg.Height

	var monitor *glfw.Monitor
	switch cfg.Mode {
	case ModeFullscreen:
		monitor = glfw.GetPrimaryMonitor()

	case ModeBorderless:
		monitor = glfw.GetPrimaryMonitor()

		// Match the monitor's current video mode so no mode switch happens.
		mode := monitor.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width, height = mode.Width, mode.Height
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: win}

	if cfg.Profile {
		w.prof = profile.Start(profile.CPUProfile)
	}

	w.observeEvents()

	slog.Info("Window created",
		slog.String("title", cfg.Title),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("mode", cfg.Mode.String()),
	)

	return w, nil
}

func (g *glfwWindow) FramebufferSize() Size {
	width, height := g.win.GetFramebufferSize()
	return Size{Width: uint32(width), Height: uint32(height)}
}

func (g *glfwWindow) ShouldClose() bool {
	return g.win.ShouldClose()
}

func (g *glfwWindow) RequestClose() {
	g.win.SetShouldClose(true)
}

func (g *glfwWindow) MakeCurrent() {
	// The window is created with ClientAPI=NoAPI; the backend binds the GPU
	// device itself, so there is no client context to make current here.
}

func (g *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (g *glfwWindow) DrainEvents() []Event {
	if len(g.queue) == 0 {
		return nil
	}

	drained := g.queue
	g.queue = nil
	return drained
}

func (g *glfwWindow) SetKeyEventsEnabled(enabled bool) {
	if !enabled {
		g.win.SetKeyCallback(nil)
		return
	}

	g.win.SetKeyCallback(func(_ *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		g.queue = append(g.queue, Event{
			Time:   glfw.GetTime(),
			Kind:   EventKey,
			Key:    keyOf(glfwKey),
			Action: actionOf(action),
		})
	})
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

// observeEvents registers the always-on callbacks. These events are queued
// so the run loop can observe them; only key events carry lifecycle
// meaning and those are enabled separately.
func (g *glfwWindow) observeEvents() {
	g.win.SetMouseButtonCallback(func(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		g.queue = append(g.queue, Event{
			Time:   glfw.GetTime(),
			Kind:   EventMouseButton,
			Button: MouseButton(btn),
			Action: actionOf(action),
		})
	})

	g.win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		g.queue = append(g.queue, Event{
			Time: glfw.GetTime(),
			Kind: EventCursorPos,
			X:    xpos,
			Y:    ypos,
		})
	})

	g.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		g.queue = append(g.queue, Event{
			Time:    glfw.GetTime(),
			Kind:    EventFocus,
			Focused: focused,
		})
	})
}

func keyOf(glfwKey glfw.Key) Key {
	switch {
	case glfwKey >= glfw.Key0 && glfwKey <= glfw.Key9:
		return Key0 + Key(glfwKey-glfw.Key0)
	case glfwKey >= glfw.KeyA && glfwKey <= glfw.KeyZ:
		return KeyA + Key(glfwKey-glfw.KeyA)
	}

	switch glfwKey {
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeyEnter:
		return KeyEnter
	case glfw.KeyTab:
		return KeyTab
	case glfw.KeyBackspace:
		return KeyBackspace
	case glfw.KeySpace:
		return KeySpace
	case glfw.KeyRight:
		return KeyRight
	case glfw.KeyLeft:
		return KeyLeft
	case glfw.KeyDown:
		return KeyDown
	case glfw.KeyUp:
		return KeyUp
	}

	slog.Warn(
		"Unknown key code",
		slog.String("key", glfw.GetKeyName(glfwKey, 0)),
	)

	return KeyUnknown
}

func actionOf(action glfw.Action) Action {
	switch action {
	case glfw.Press:
		return Press
	case glfw.Repeat:
		return Repeat
	default:
		return Release
	}
}

package app

import (
	"log/slog"

	"github.com/tversted/skylight/window"
)

// pumpEvents polls the window system once and drains every event queued at
// that moment, in arrival order. The only event with lifecycle meaning is
// the quit key, which flags the window for close; everything else is
// observed and logged, deliberately nothing more.
func pumpEvents(win window.Window) {
	win.PollEvents()

	for _, ev := range win.DrainEvents() {
		slog.Debug("Window event", slog.Any("event", ev))

		if ev.Kind == window.EventKey && ev.Key == window.KeyEscape && ev.Action == window.Press {
			win.RequestClose()
		}
	}
}

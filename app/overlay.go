package app

import "github.com/tversted/skylight/backend"

// drawOverlay rewrites the debug-text overlay for the current frame. The
// glyph drawing itself belongs to the backend; this only feeds it lines.
func (l *Lifecycle) drawOverlay() {
	if l.cfg.Debug&backend.DebugText == 0 {
		return
	}

	l.gpu.DebugTextClear()

	l.gpu.DebugTextPrintf(0, 1, 0x0f, "Color can be changed with ANSI \x1b[9;me\x1b[10;ms\x1b[11;mc\x1b[12;ma\x1b[13;mp\x1b[14;me\x1b[0m code too.")
	l.gpu.DebugTextPrintf(80, 1, 0x0f, "\x1b[;0m    \x1b[;1m    \x1b[; 2m    \x1b[; 3m    \x1b[; 4m    \x1b[; 5m    \x1b[; 6m    \x1b[; 7m    \x1b[0m")
	l.gpu.DebugTextPrintf(80, 2, 0x0f, "\x1b[;8m    \x1b[;9m    \x1b[;10m    \x1b[;11m    \x1b[;12m    \x1b[;13m    \x1b[;14m    \x1b[;15m    \x1b[0m")

	l.gpu.DebugTextPrintf(0, 4, 0x3f, "%s: %dx%d (%s)", l.cfg.Title, l.size.Width, l.size.Height, l.cfg.Mode)

	if l.cfg.Debug&backend.DebugStats != 0 {
		l.gpu.DebugTextPrintf(0, 6, 0x8f, "frame %d: %.1f fps, avg %.2f ms, max %.2f ms",
			l.stats.frames,
			l.stats.fps(),
			float64(l.stats.avg.Microseconds())/1000,
			float64(l.stats.max.Microseconds())/1000,
		)
	}
}

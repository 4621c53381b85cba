package backend

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// debugText buffers the debug overlay lines written during a frame. Glyph
// rendering is not part of this backend; the buffer is surfaced through
// the log instead, at most once per second.
type debugText struct {
	lines     []debugLine
	lastFlush time.Time
}

type debugLine struct {
	x, y uint16
	attr uint8
	text string
}

func (t *debugText) clear() {
	t.lines = t.lines[:0]
}

func (t *debugText) printf(x, y uint16, attr uint8, format string, args ...any) {
	t.lines = append(t.lines, debugLine{
		x:    x,
		y:    y,
		attr: attr,
		text: fmt.Sprintf(format, args...),
	})
}

func (t *debugText) flush(enabled bool) {
	if !enabled || len(t.lines) == 0 {
		return
	}

	now := time.Now()
	if now.Sub(t.lastFlush) < time.Second {
		return
	}
	t.lastFlush = now

	texts := make([]string, len(t.lines))
	for i, line := range t.lines {
		texts[i] = line.text
	}

	slog.Debug("Debug text",
		slog.Int("lines", len(t.lines)),
		slog.String("text", strings.Join(texts, "\n")),
	)
}

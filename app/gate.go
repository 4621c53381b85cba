package app

import "github.com/tversted/skylight/window"

// ResetGate tracks the last observed framebuffer size and decides when the
// backend's output surface must be reallocated. The zero value treats the
// first observed size as a change; NewResetGate seeds the gate so a first
// frame at the seed size passes without a reset.
type ResetGate struct {
	last window.Size
	seen bool
}

func NewResetGate(seed window.Size) ResetGate {
	return ResetGate{last: seed, seen: true}
}

// Observe reports whether size differs from the previous observation and
// records it. At most one reset per distinct change; a size that toggles
// A, B, A across ticks reports a change each time.
func (g *ResetGate) Observe(size window.Size) bool {
	if g.seen && g.last == size {
		return false
	}

	g.last = size
	g.seen = true
	return true
}

package window

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Mode selects how the window is placed on screen.
type Mode int

const (
	ModeWindowed Mode = iota
	ModeFullscreen

	// ModeBorderless is fullscreen at the monitor's current video mode,
	// without a mode switch.
	ModeBorderless
)

func (m Mode) String() string {
	switch m {
	case ModeWindowed:
		return "windowed"
	case ModeFullscreen:
		return "fullscreen"
	case ModeBorderless:
		return "borderless"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Geometry bounds applied to the requested window size. 16384 is the
// smallest max texture dimension reported by current desktop GPUs.
const (
	minDimension = 1
	maxDimension = 16384
)

// Config holds the immutable creation parameters of a window.
type Config struct {
	Title  string
	Width  int
	Height int
	Mode   Mode

	// Profile starts CPU profiling for the lifetime of the window.
	Profile bool
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "skylight"
	}

	if c.Width == 0 {
		c.Width = 1280
	}

	if c.Height == 0 {
		c.Height = 720
	}

	c.Width = clamp(c.Width, minDimension, maxDimension)
	c.Height = clamp(c.Height, minDimension, maxDimension)

	return c
}

// validate checks the caller-supplied values, before withDefaults runs. A
// zero dimension is not an error, it selects the default size.
func (c Config) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("negative window size %dx%d", c.Width, c.Height)
	}

	switch c.Mode {
	case ModeWindowed, ModeFullscreen, ModeBorderless:
		return nil
	default:
		return fmt.Errorf("unknown window mode %d", int(c.Mode))
	}
}

func clamp[T constraints.Ordered](value, lo, hi T) T {
	return min(max(value, lo), hi)
}

package backend

import (
	"testing"
	"time"
)

func TestColorOf(t *testing.T) {
	cases := []struct {
		rgba       uint32
		r, g, b, a float64
	}{
		{0xff0000ff, 1, 0, 0, 1},
		{0x00ff0080, 0, 1, 0, 128.0 / 255},
		{0x103030ff, 16.0 / 255, 48.0 / 255, 48.0 / 255, 1},
		{0x00000000, 0, 0, 0, 0},
	}

	for _, c := range cases {
		got := colorOf(c.rgba)
		if got.R != c.r || got.G != c.g || got.B != c.b || got.A != c.a {
			t.Errorf("colorOf(%08x) = %+v", c.rgba, got)
		}
	}
}

func TestViewStateRetained(t *testing.T) {
	b := NewWGPU()

	b.SetViewClear(0, ClearColor|ClearDepth, 0x103030ff, 1.0, 0)
	b.SetViewRect(0, 0, 0, 1280, 720)

	v := b.view(0)
	if v.clear != ClearColor|ClearDepth || v.rgba != 0x103030ff {
		t.Errorf("clear settings not retained: %+v", v)
	}

	if v.width != 1280 || v.height != 720 {
		t.Errorf("rect not retained: %+v", v)
	}

	// the rect on view 0 doubles as the fallback surface size
	if b.fallbackWidth != 1280 || b.fallbackHeight != 720 {
		t.Errorf("fallback size = %dx%d", b.fallbackWidth, b.fallbackHeight)
	}

	if v.touched {
		t.Error("view must start untouched")
	}

	b.Touch(0)
	if !b.view(0).touched {
		t.Error("touch not recorded")
	}
}

func TestViewGetOrCreate(t *testing.T) {
	b := NewWGPU()

	first := b.view(3)
	second := b.view(3)

	if first != second {
		t.Error("view must return the same retained state")
	}

	if len(b.views) != 1 {
		t.Errorf("views = %d, want 1", len(b.views))
	}
}

func TestDebugTextBuffer(t *testing.T) {
	var text debugText

	text.printf(0, 1, 0x0f, "frame %d", 7)
	text.printf(0, 2, 0x3f, "second line")

	if len(text.lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(text.lines))
	}

	if text.lines[0].text != "frame 7" {
		t.Errorf("line text = %q", text.lines[0].text)
	}

	if text.lines[1].y != 2 || text.lines[1].attr != 0x3f {
		t.Errorf("line position not kept: %+v", text.lines[1])
	}

	text.clear()
	if len(text.lines) != 0 {
		t.Error("clear must drop all lines")
	}
}

func TestDebugTextFlushThrottles(t *testing.T) {
	var text debugText
	text.printf(0, 0, 0, "line")

	text.flush(true)
	first := text.lastFlush
	if first.IsZero() {
		t.Fatal("first flush must run")
	}

	text.flush(true)
	if text.lastFlush != first {
		t.Error("second flush within a second must be dropped")
	}

	text.lastFlush = time.Now().Add(-2 * time.Second)
	text.flush(true)
	if text.lastFlush == first {
		t.Error("flush after the interval must run")
	}
}

func TestDebugTextFlushDisabled(t *testing.T) {
	var text debugText
	text.printf(0, 0, 0, "line")

	text.flush(false)
	if !text.lastFlush.IsZero() {
		t.Error("disabled flush must not run")
	}
}

func TestPresentModeOf(t *testing.T) {
	fifo := presentModeOf(ResetVsync)
	immediate := presentModeOf(ResetNone)

	if fifo == immediate {
		t.Error("vsync must select a different present mode")
	}
}

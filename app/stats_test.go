package app

import (
	"testing"
	"time"
)

func TestFrameStatsCountsFrames(t *testing.T) {
	var stats frameStats

	for range 5 {
		stats.tick()
	}

	if stats.frames != 5 {
		t.Errorf("frames = %d, want 5", stats.frames)
	}
}

func TestFrameStatsTracksMax(t *testing.T) {
	var stats frameStats

	stats.tick()
	stats.lastTime = stats.lastTime.Add(-20 * time.Millisecond)
	stats.tick()

	if stats.max < 20*time.Millisecond {
		t.Errorf("max = %v, want at least the slow frame", stats.max)
	}

	if stats.avg <= 0 {
		t.Errorf("avg = %v, want positive after two frames", stats.avg)
	}

	if stats.fps() <= 0 {
		t.Errorf("fps = %v, want positive", stats.fps())
	}
}

func TestFrameStatsZeroFPSBeforeFrames(t *testing.T) {
	var stats frameStats

	if stats.fps() != 0 {
		t.Errorf("fps = %v before any frame, want 0", stats.fps())
	}
}

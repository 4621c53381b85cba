package app

import "time"

// frameStats keeps a rolling view of frame pacing for the debug overlay.
type frameStats struct {
	frames uint64
	avg    time.Duration
	max    time.Duration

	lastTime time.Time
}

// tick records the start of a new frame and folds the previous frame's
// duration into the rolling average.
func (s *frameStats) tick() {
	const window = 64

	now := time.Now()

	if s.frames > 0 {
		d := now.Sub(s.lastTime)
		s.max = max(s.max, d)

		if s.frames < window/2 {
			s.avg = d
		} else {
			s.avg = ((window-1)*s.avg + d) / window
		}
	}

	s.lastTime = now
	s.frames++
}

func (s *frameStats) fps() float64 {
	if s.avg <= 0 {
		return 0
	}

	return 1.0 / s.avg.Seconds()
}

package render

import "time"

// FrameStats counts frames and reports a rate once per second
type FrameStats struct {
	frames      int
	windowStart time.Time
}

// Frame records one frame finishing at now. Once a second has passed since
// the counting window opened it returns the frame count and true, then
// starts a new window.
func (s *FrameStats) Frame(now time.Time) (fps int, ok bool) {
	if s.windowStart.IsZero() {
		s.windowStart = now
	}
	s.frames++
	if now.Sub(s.windowStart) < time.Second {
		return 0, false
	}
	fps = s.frames
	s.frames = 0
	s.windowStart = now
	return fps, true
}

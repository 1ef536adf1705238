// Package stopwatch times simulation runs the way the original timer.h
// helper does: start once, optionally restart between repeats, read
// elapsed time at any point without stopping.
package stopwatch

import "time"

// Stopwatch measures wall-clock elapsed time. The zero value is not
// usable; call Start first.
type Stopwatch struct {
	start   time.Time
	stopped time.Duration
	running bool
}

// Start begins timing from now, discarding any previous state.
func (s *Stopwatch) Start() {
	s.start = time.Now()
	s.stopped = 0
	s.running = true
}

// Restart is Start: a fresh base point for the next interval, kept as a
// distinct name to match the mirrored start/restart/stop/elapsed API.
func (s *Stopwatch) Restart() {
	s.Start()
}

// Stop freezes the stopwatch; Elapsed after Stop keeps returning the
// duration at the moment Stop was called.
func (s *Stopwatch) Stop() time.Duration {
	if s.running {
		s.stopped = time.Since(s.start)
		s.running = false
	}
	return s.stopped
}

// Elapsed returns the duration since Start (or since the last Restart),
// or the frozen duration if Stop has been called.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return time.Since(s.start)
	}
	return s.stopped
}

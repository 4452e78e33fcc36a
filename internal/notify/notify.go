// Package notify schedules auto-dismissal of transient notifications.
package notify

import (
	"sync"
	"time"
)

// Scheduler holds at most one pending callback. Scheduling a new one stops
// the previous timer, so only the latest notification is ever dismissed.
type Scheduler struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// Schedule stops any pending callback and runs fn after d. It returns the
// generation of the new schedule; fn receives the same value.
func (s *Scheduler) Schedule(d time.Duration, fn func(gen uint64)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(d, func() {
		// a timer that already fired before Stop must not act for a newer schedule
		if s.Current() != gen {
			return
		}
		fn(gen)
	})
	return gen
}

// Current returns the generation of the latest schedule.
func (s *Scheduler) Current() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Stop cancels the pending callback, if any.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

package notify

import (
	"testing"
	"time"
)

func TestScheduleFires(t *testing.T) {
	var s Scheduler
	fired := make(chan uint64, 1)

	gen := s.Schedule(10*time.Millisecond, func(g uint64) { fired <- g })

	select {
	case got := <-fired:
		if got != gen {
			t.Errorf("fired gen = %d, want %d", got, gen)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestScheduleSupersedes(t *testing.T) {
	var s Scheduler
	fired := make(chan uint64, 2)

	first := s.Schedule(20*time.Millisecond, func(g uint64) { fired <- g })
	second := s.Schedule(40*time.Millisecond, func(g uint64) { fired <- g })
	if second <= first {
		t.Fatalf("generations not increasing: %d then %d", first, second)
	}

	select {
	case got := <-fired:
		if got != second {
			t.Errorf("fired gen = %d, want %d", got, second)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}

	select {
	case got := <-fired:
		t.Errorf("superseded callback fired with gen %d", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStop(t *testing.T) {
	var s Scheduler
	fired := make(chan uint64, 1)

	s.Schedule(10*time.Millisecond, func(g uint64) { fired <- g })
	s.Stop()

	select {
	case <-fired:
		t.Error("callback fired after Stop")
	case <-time.After(60 * time.Millisecond):
	}
}

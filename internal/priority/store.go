package priority

import (
	"sync"

	"github.com/focusnice/focusnice/internal/logger"
)

// Record remembers the one process whose niceness is currently adjusted and
// the value it had before the adjustment.
type Record struct {
	PID  int `json:"pid"`
	Nice int `json:"nice"`
}

// Store is the single-slot priority record. A nil record is the explicit
// empty state; the store never holds more than one record, and every new
// record is preceded by a Restore of the previous one.
//
// The mutex exists only because the termination-signal path calls Restore
// concurrently with the event loop.
type Store struct {
	mu  sync.Mutex
	ctl Controller
	rec *Record
}

// NewStore creates an empty store backed by ctl.
func NewStore(ctl Controller) *Store {
	return &Store{ctl: ctl}
}

// Restore puts the recorded process back to its original niceness and
// empties the store. Calling it with an empty store is a no-op: no syscall,
// no log line. The set itself is best effort; the target process may
// already be gone, so a failure is logged once and never retried.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec == nil {
		return
	}

	log := logger.WithComponent("priority")
	log.Info().
		Int("pid", s.rec.PID).
		Int("niceness", s.rec.Nice).
		Msg("resetting priority")

	if err := s.ctl.Set(s.rec.PID, s.rec.Nice); err != nil {
		log.Debug().Err(err).Int("pid", s.rec.PID).Msg("restore was best-effort")
	}
	s.rec = nil
}

// Acquire reads pid's current niceness and records it as the active slot.
// On a read failure (process vanished, permission denied) the store stays
// empty and the caller must abandon the transition.
func (s *Store) Acquire(pid int) (int, error) {
	nice, err := s.ctl.Get(pid)
	if err != nil {
		logger.WithComponent("priority").Error().
			Err(err).
			Int("pid", pid).
			Msg("failed to read priority")
		return 0, err
	}

	s.mu.Lock()
	s.rec = &Record{PID: pid, Nice: nice}
	s.mu.Unlock()

	return nice, nil
}

// Current returns a snapshot of the active record, if any.
func (s *Store) Current() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec == nil {
		return Record{}, false
	}
	return *s.rec, true
}

package telemetry

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot is the telemetry view handed to the UI.
type Snapshot struct {
	Sample              Sample
	HasSample           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline reports that the monitor has been unreachable for several polls
// or never answered at all.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2 || (!s.HasSample && s.LastError != nil)
}

// Store holds the latest reading. The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a poll result. On error the previous sample is kept and
// the failure counted.
func (s *Store) Update(sample Sample, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Sample = sample.Clone()
	s.snapshot.HasSample = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Sample = s.snapshot.Sample.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

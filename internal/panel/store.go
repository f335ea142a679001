package panel

import (
	"encoding/json"
	"sync"
	"time"
)

// Store coordinates concurrent updates to the outcome. Attempts are tagged
// with a monotonically increasing sequence number; resolutions for anything
// but the latest issued attempt are ignored, so the newest request wins
// regardless of the order responses arrive in.
type Store struct {
	mu      sync.Mutex
	seq     uint64
	outcome Outcome
}

// Begin starts a new attempt for action. It moves the outcome to Loading
// synchronously, clears any prior result and error, and returns the sequence
// number the attempt must resolve with.
func (s *Store) Begin(action Action) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.outcome = Outcome{
		Phase:   PhaseLoading,
		Action:  action,
		Seq:     s.seq,
		Updated: time.Now(),
	}
	return s.seq
}

// Resolve records the result of attempt seq and reports whether it was
// applied. Stale sequence numbers leave the outcome untouched.
func (s *Store) Resolve(seq uint64, payload json.RawMessage, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}

	outcome := Outcome{
		Action:  s.outcome.Action,
		Seq:     seq,
		Updated: time.Now(),
	}
	if err != nil {
		outcome.Phase = PhaseFailure
		outcome.Err = err.Error()
	} else {
		outcome.Phase = PhaseSuccess
		outcome.Result = clonePayload(payload)
	}
	s.outcome = outcome
	return true
}

// Outcome returns a copy of the current snapshot.
func (s *Store) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.outcome
	snap.Result = clonePayload(s.outcome.Result)
	return snap
}

// Busy reports whether the latest attempt is still outstanding.
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome.Phase == PhaseLoading
}

func clonePayload(payload json.RawMessage) json.RawMessage {
	if len(payload) == 0 {
		return nil
	}
	dup := make(json.RawMessage, len(payload))
	copy(dup, payload)
	return dup
}

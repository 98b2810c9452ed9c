// Package eventlog appends simulation events to an injected sink as
// JSON lines. The core never decides where its log goes; callers
// hand in any io.Writer.
package eventlog

import (
	"encoding/json"
	"io"
	"sync"

	"hobbit_sim/internal/sim"
)

type record struct {
	Kind  string    `json:"kind"`
	Event sim.Event `json:"event"`
}

// Sink writes one JSON object per line per event.
type Sink struct {
	mu      sync.Mutex
	enc     *json.Encoder
	lastErr error
}

func New(w io.Writer) *Sink {
	return &Sink{enc: json.NewEncoder(w)}
}

// Log appends one event.
func (s *Sink) Log(ev sim.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(record{Kind: ev.Kind(), Event: ev}); err != nil {
		if s.lastErr == nil {
			s.lastErr = err
		}
		return err
	}
	return nil
}

// Emit adapts the sink to the runner's emit hook. Write failures are
// kept for Err instead of interrupting the run.
func (s *Sink) Emit(ev sim.Event) { _ = s.Log(ev) }

// Err reports the first write failure, if any.
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

package exec

import (
	"strconv"
	"sync/atomic"
)

// IDSource issues the process-wide order and execution identifiers. Both
// counters strictly increase from 1, are shared across all sessions, and
// are never reset or reused within the process lifetime.
type IDSource struct {
	orderID atomic.Uint64
	execID  atomic.Uint64
}

// NewIDSource creates a source with both counters at zero.
func NewIDSource() *IDSource {
	return &IDSource{}
}

// NextOrderID returns the next order identifier.
func (s *IDSource) NextOrderID() uint64 {
	return s.orderID.Add(1)
}

// NextExecID returns the next execution identifier.
func (s *IDSource) NextExecID() uint64 {
	return s.execID.Add(1)
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

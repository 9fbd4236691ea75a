package obs

import (
	"strconv"
	"sync/atomic"
	"time"
)

// TraceID tags every log line produced while handling one inbound message.
type TraceID uint64

func (t TraceID) String() string {
	return strconv.FormatUint(uint64(t), 16)
}

// TraceGenerator creates monotonically increasing trace IDs.
type TraceGenerator struct {
	next uint64
}

// NewTraceGenerator returns a generator seeded with the given value. A zero
// seed uses the current time so restarts do not repeat ids.
func NewTraceGenerator(seed uint64) *TraceGenerator {
	if seed == 0 {
		seed = uint64(time.Now().UTC().UnixNano())
	}
	return &TraceGenerator{next: seed}
}

// Next returns the next trace ID.
func (g *TraceGenerator) Next() TraceID {
	if g == nil {
		return 0
	}
	return TraceID(atomic.AddUint64(&g.next, 1))
}

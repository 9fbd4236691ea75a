package obs

import (
	"sync/atomic"
	"time"

	"main/internal/fix"
)

const maxMsgKind = int(fix.MsgKindSecurityStatusRequest)

// Metrics collects per-kind message counters and handler latency stats.
type Metrics struct {
	inboundCounts  [maxMsgKind + 1]uint64
	outboundCounts [maxMsgKind + 1]uint64
	rejectCounts   [maxMsgKind + 1]uint64
	dropCounts     uint64

	handlerLatency LatencyStats
}

// LatencyStats aggregates duration samples in nanoseconds.
type LatencyStats struct {
	count uint64
	sum   uint64
	min   uint64
	max   uint64
}

// LatencySnapshot is a point-in-time view of latency stats.
type LatencySnapshot struct {
	Count uint64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// Snapshot captures the current metrics values.
type Snapshot struct {
	InboundCounts  map[fix.MsgKind]uint64
	OutboundCounts map[fix.MsgKind]uint64
	RejectCounts   map[fix.MsgKind]uint64
	Drops          uint64
	HandlerLatency LatencySnapshot
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncInbound counts one received message.
func (m *Metrics) IncInbound(kind fix.MsgKind) {
	if m == nil {
		return
	}
	if idx := int(kind); idx >= 0 && idx < len(m.inboundCounts) {
		atomic.AddUint64(&m.inboundCounts[idx], 1)
	}
}

// IncOutbound counts one transmitted message.
func (m *Metrics) IncOutbound(kind fix.MsgKind) {
	if m == nil {
		return
	}
	if idx := int(kind); idx >= 0 && idx < len(m.outboundCounts) {
		atomic.AddUint64(&m.outboundCounts[idx], 1)
	}
}

// IncRejected counts one inbound message rejected by validation.
func (m *Metrics) IncRejected(kind fix.MsgKind) {
	if m == nil {
		return
	}
	if idx := int(kind); idx >= 0 && idx < len(m.rejectCounts) {
		atomic.AddUint64(&m.rejectCounts[idx], 1)
	}
}

// IncDrop counts one outbound message dropped by the gateway.
func (m *Metrics) IncDrop() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.dropCounts, 1)
}

// ObserveHandler measures one inbound dispatch.
func (m *Metrics) ObserveHandler(d time.Duration) {
	if m == nil {
		return
	}
	m.handlerLatency.Observe(d)
}

// Snapshot returns a copy of the current metrics values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	inbound := make(map[fix.MsgKind]uint64)
	outbound := make(map[fix.MsgKind]uint64)
	rejected := make(map[fix.MsgKind]uint64)
	for i := 0; i <= maxMsgKind; i++ {
		if v := atomic.LoadUint64(&m.inboundCounts[i]); v > 0 {
			inbound[fix.MsgKind(i)] = v
		}
		if v := atomic.LoadUint64(&m.outboundCounts[i]); v > 0 {
			outbound[fix.MsgKind(i)] = v
		}
		if v := atomic.LoadUint64(&m.rejectCounts[i]); v > 0 {
			rejected[fix.MsgKind(i)] = v
		}
	}
	return Snapshot{
		InboundCounts:  inbound,
		OutboundCounts: outbound,
		RejectCounts:   rejected,
		Drops:          atomic.LoadUint64(&m.dropCounts),
		HandlerLatency: m.handlerLatency.Snapshot(),
	}
}

// Observe records a duration sample.
func (l *LatencyStats) Observe(d time.Duration) {
	if d < 0 {
		return
	}
	nanos := uint64(d)
	atomic.AddUint64(&l.count, 1)
	atomic.AddUint64(&l.sum, nanos)

	for {
		min := atomic.LoadUint64(&l.min)
		if min != 0 && nanos >= min {
			break
		}
		if atomic.CompareAndSwapUint64(&l.min, min, nanos) {
			break
		}
	}

	for {
		max := atomic.LoadUint64(&l.max)
		if nanos <= max {
			break
		}
		if atomic.CompareAndSwapUint64(&l.max, max, nanos) {
			break
		}
	}
}

// Snapshot returns the aggregated latency stats.
func (l *LatencyStats) Snapshot() LatencySnapshot {
	count := atomic.LoadUint64(&l.count)
	if count == 0 {
		return LatencySnapshot{}
	}
	sum := atomic.LoadUint64(&l.sum)
	min := atomic.LoadUint64(&l.min)
	max := atomic.LoadUint64(&l.max)
	return LatencySnapshot{
		Count: count,
		Min:   time.Duration(min),
		Max:   time.Duration(max),
		Avg:   time.Duration(sum / count),
	}
}

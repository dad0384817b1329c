// Package metrics samples Go runtime allocation statistics around a
// workload.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time allocation reading.
type MemorySnapshot struct {
	TotalAlloc uint64 // cumulative bytes allocated
	Mallocs    uint64 // cumulative heap objects allocated
	HeapAlloc  uint64 // bytes in use
	NumGC      uint32 // completed GC cycles
}

// MemoryDelta is the allocation activity between two snapshots.
type MemoryDelta struct {
	Allocated uint64
	Mallocs   uint64
	GCCycles  uint32
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct {
	read func(*runtime.MemStats)
}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{read: runtime.ReadMemStats}
}

// Snapshot reads current memory statistics. It stops the world briefly, so
// callers sample around a workload rather than inside it.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	mc.read(&m)
	return MemorySnapshot{
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		HeapAlloc:  m.HeapAlloc,
		NumGC:      m.NumGC,
	}
}

// Since returns the activity between before and s. Counters are cumulative,
// so a snapshot taken earlier than before yields zero rather than wrapping.
func (s MemorySnapshot) Since(before MemorySnapshot) MemoryDelta {
	var d MemoryDelta
	if s.TotalAlloc > before.TotalAlloc {
		d.Allocated = s.TotalAlloc - before.TotalAlloc
	}
	if s.Mallocs > before.Mallocs {
		d.Mallocs = s.Mallocs - before.Mallocs
	}
	if s.NumGC > before.NumGC {
		d.GCCycles = s.NumGC - before.NumGC
	}
	return d
}

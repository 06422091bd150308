package reduction

import "sync/atomic"

// Stats accumulates counters across reductions. It is safe for concurrent use,
// and a nil *Stats records nothing.
type Stats struct {
	runs         atomic.Uint64
	normalized   atomic.Uint64
	steps        atomic.Uint64
	contractions atomic.Uint64
	peakSize     atomic.Uint64
}

// StatsSnapshot holds a copy of the counters.
type StatsSnapshot struct {
	Runs         uint64
	Normalized   uint64
	Steps        uint64
	Contractions uint64
	PeakSize     uint64
}

func (s *Stats) record(res Result) {
	if s == nil {
		return
	}
	s.runs.Add(1)
	if res.Term != nil && IsNormal(res.Term) {
		s.normalized.Add(1)
	}
	s.steps.Add(uint64(res.Steps))
	s.contractions.Add(uint64(res.Contractions))
	peak := uint64(res.PeakSize)
	for {
		cur := s.peakSize.Load()
		if peak <= cur || s.peakSize.CompareAndSwap(cur, peak) {
			break
		}
	}
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Runs:         s.runs.Load(),
		Normalized:   s.normalized.Load(),
		Steps:        s.steps.Load(),
		Contractions: s.contractions.Load(),
		PeakSize:     s.peakSize.Load(),
	}
}

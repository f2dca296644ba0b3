package pipeline

import "sync/atomic"

// RunStats counts the outcomes of one Run. Counters are updated
// concurrently by worker goroutines.
type RunStats struct {
	// Total is the number of discovered files.
	Total int

	// Renamed files got a new name.
	Renamed atomic.Int64

	// Fallback counts files named "meme_<N>" for lack of usable text.
	// They are also counted in Renamed when the rename succeeds.
	Fallback atomic.Int64

	// Skipped files failed extraction and kept their name.
	Skipped atomic.Int64

	// Failed files could not be allocated a name or renamed.
	Failed atomic.Int64

	// Cancelled files were never started because the run was interrupted.
	Cancelled atomic.Int64
}

// LogAttrs returns the counters as slog key/value pairs.
func (s *RunStats) LogAttrs() []any {
	return []any{
		"total", s.Total,
		"renamed", s.Renamed.Load(),
		"fallback", s.Fallback.Load(),
		"skipped", s.Skipped.Load(),
		"failed", s.Failed.Load(),
		"cancelled", s.Cancelled.Load(),
	}
}

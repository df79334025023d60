package convert

import (
	"time"

	"cng2jpg/internal/scan"
)

// Summary counts what a run did. It is returned even when the run fails, and
// then reflects the work completed before the failure.
type Summary struct {
	RunID       string
	Src         string
	Dst         string
	InPlace     bool
	Scanned     int
	Ignored     int
	Converted   int
	Removed     int
	Merged      int
	Unpaired    int
	Unparsable  int
	DirsCreated int
	Bytes       int64
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Duration is the wall time between start and finish.
func (s Summary) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// EntryResult describes the outcome of one processed .cng file.
type EntryResult struct {
	Entry  scan.Entry
	Output string
	Bytes  int64
	// Spread is the merged output path when this file completed a pair.
	Spread string
}

// Observer receives progress events. Implementations must not block for long;
// events are delivered on the run goroutine.
type Observer interface {
	OnStart(total int, totalBytes int64)
	OnEntryDone(idx, total int, res EntryResult)
}

type nopObserver struct{}

func (nopObserver) OnStart(int, int64) {}

func (nopObserver) OnEntryDone(int, int, EntryResult) {}

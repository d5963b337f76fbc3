// Package dirty records the byte ranges written to a savegame container
// during an edit session and flushes them to stable storage on request.
//
// A Tracker wraps a save.Accessor and is itself an Accessor, so editors
// write through it without knowing it is there.
package dirty

import (
	"context"
	"sort"

	"github.com/joshuapare/savekit/save"
)

const (
	// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
	// A full write-changes pass on either title touches fewer than 64 bytes.
	defaultRangeCapacity = 64
)

// FlushMode controls durability when a session ends.
type FlushMode int

const (
	// FlushNone forgets the recorded ranges without syncing. Writes stay in
	// the OS page cache until the kernel writes them back.
	FlushNone FlushMode = iota

	// FlushSync calls Sync on the wrapped accessor (fdatasync for files).
	FlushSync
)

// Range represents a dirty byte range (absolute container offsets).
type Range struct {
	Off int64 `json:"off"` // Absolute offset in container
	Len int64 `json:"len"` // Length in bytes
}

var _ save.Accessor = (*Tracker)(nil)

// Tracker accumulates dirty ranges for one accessor.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	a      save.Accessor
	ranges []Range // Dirty ranges (coalesced on demand)
}

// NewTracker wraps a.
func NewTracker(a save.Accessor) *Tracker {
	return &Tracker{
		a:      a,
		ranges: make([]Range, 0, defaultRangeCapacity),
	}
}

// ReadU8 forwards to the wrapped accessor.
func (t *Tracker) ReadU8(off int) (uint8, error) { return t.a.ReadU8(off) }

// WriteU8 forwards to the wrapped accessor and records the byte on success.
func (t *Tracker) WriteU8(off int, v uint8) error {
	if err := t.a.WriteU8(off, v); err != nil {
		return err
	}
	t.Add(off, 1)
	return nil
}

// Snapshot forwards to the wrapped accessor.
func (t *Tracker) Snapshot() ([]byte, error) { return t.a.Snapshot() }

// Size forwards to the wrapped accessor.
func (t *Tracker) Size() (int64, error) { return t.a.Size() }

// Sync forwards to the wrapped accessor.
func (t *Tracker) Sync() error { return t.a.Sync() }

// Add records a dirty range.
func (t *Tracker) Add(off, length int) {
	t.ranges = append(t.ranges, Range{
		Off: int64(off),
		Len: int64(length),
	})
}

// Dirty reports whether anything was written since the last flush or reset.
func (t *Tracker) Dirty() bool { return len(t.ranges) > 0 }

// Ranges returns the recorded ranges sorted and merged.
func (t *Tracker) Ranges() []Range { return t.coalesce() }

// Bytes returns the number of distinct bytes written.
func (t *Tracker) Bytes() int64 {
	var n int64
	for _, r := range t.coalesce() {
		n += r.Len
	}
	return n
}

// Flush ends a session: with FlushSync the container is synced, then the
// recorded ranges are cleared. Nothing happens when no byte was written.
//
// The context is checked before syncing; a cancelled flush keeps the ranges
// so it can be retried.
func (t *Tracker) Flush(ctx context.Context, mode FlushMode) error {
	if len(t.ranges) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if mode == FlushSync {
		if err := t.a.Sync(); err != nil {
			return err
		}
	}
	t.ranges = t.ranges[:0]
	return nil
}

// Reset clears all tracked ranges.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// coalesce sorts the ranges and merges overlapping/adjacent ones.
//
// Returns a new slice of non-overlapping, sorted ranges.
func (t *Tracker) coalesce() []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	sorted := make([]Range, len(t.ranges))
	copy(sorted, t.ranges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Off < sorted[j].Off
	})

	merged := make([]Range, 0, len(sorted))
	current := sorted[0]

	for i := 1; i < len(sorted); i++ {
		next := sorted[i]

		// Check if next overlaps or is adjacent to current
		if next.Off <= current.Off+current.Len {
			end := current.Off + current.Len
			nextEnd := next.Off + next.Len
			if nextEnd > end {
				end = nextEnd
			}
			current.Len = end - current.Off
		} else {
			merged = append(merged, current)
			current = next
		}
	}

	// Don't forget the last range
	merged = append(merged, current)

	return merged
}

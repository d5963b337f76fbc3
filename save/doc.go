// Package save provides offset-addressed access to savegame containers.
//
// # Overview
//
// A container is a fixed-size binary file holding a fixed number of
// equal-size slots. Fields inside a slot are addressed by absolute offset and
// read or written one byte at a time; multi-byte integers are little-endian
// and composed from single-byte accesses.
//
// # Accessors
//
// Two Accessor implementations exist:
//
//   - File opens the container for every primitive access and closes it
//     again, so other processes may keep the file open while it is edited.
//   - Buffer edits an in-memory copy and is used by tests and tooling.
//
// Heuristic scans (health, catalog) never go through the per-byte path; they
// take one Snapshot of the whole container per call.
//
// # Thread Safety
//
// Accessors hold no locks. Concurrent calls against the same container must
// be serialized by the caller.
//
// # Related Packages
//
//   - github.com/joshuapare/savekit/save/catalog: slot enumeration
//   - github.com/joshuapare/savekit/save/health: health field scanner
//   - github.com/joshuapare/savekit/save/dirty: write tracking and durable flush
//   - github.com/joshuapare/savekit/save/tr2, save/tr5: per-title codecs
package save

// Package health locates a character's health value inside a savegame slot.
//
// The health field has no fixed offset: records before it grow and shrink
// with save history. A candidate is accepted only when both hold:
//
//   - the little-endian u16 at the candidate is in [1, 1000], and
//   - the four bytes a fixed distance before it form a known animation-state
//     signature.
//
// Either check alone admits false positives. The scan walks a per-level
// bracket in ascending order and the first match wins.
package health

import (
	"github.com/joshuapare/savekit/internal/buf"
	"github.com/joshuapare/savekit/internal/format"
	"github.com/joshuapare/savekit/pkg/types"
)

// Signature is a known animation-state fingerprint.
type Signature struct {
	Bytes   [format.SignatureLen]byte
	State   string
	Vehicle bool
}

// Bracket is an inclusive range of slot-relative candidate offsets.
type Bracket struct {
	Min int
	Max int
}

// Shift returns b with both bounds moved by delta.
func (b Bracket) Shift(delta int) Bracket {
	return Bracket{Min: b.Min + delta, Max: b.Max + delta}
}

// Scanner holds the per-title scan parameters.
type Scanner struct {
	// Step is the stride between candidates.
	Step int
	// Window is how many bytes before the value the signature starts.
	Window int
	// Guard stops the scan once candidate+Guard reaches the end of the container.
	Guard int
	// Signatures is the exhaustive table of recognised states.
	Signatures []Signature
}

// Match is a located health field.
type Match struct {
	Offset    int // absolute container offset
	Value     uint16
	Signature Signature
}

// Locate scans data for the health field of the slot starting at slotOff.
// It returns an error matching types.ErrNotLocatable when the bracket holds
// no candidate with a plausible value and a known signature.
func (s *Scanner) Locate(data []byte, slotOff int, b Bracket) (Match, error) {
	for off := b.Min; off <= b.Max; off += s.Step {
		idx := slotOff + off
		if idx+s.Guard >= len(data) {
			break
		}
		v, ok := buf.U16At(data, idx)
		if !ok {
			break
		}
		if !format.ValidHealth(v) {
			continue
		}
		q, ok := buf.Quad(data, idx-s.Window)
		if !ok {
			continue
		}
		if sig, ok := s.Lookup(q); ok {
			return Match{Offset: idx, Value: v, Signature: sig}, nil
		}
	}
	return Match{}, types.NotLocatable("health")
}

// Lookup returns the table entry for q.
func (s *Scanner) Lookup(q [format.SignatureLen]byte) (Signature, bool) {
	for _, sig := range s.Signatures {
		if sig.Bytes == q {
			return sig, true
		}
	}
	return Signature{}, false
}

// Package enumerate implements the sequence enumerator and gap filler: it
// greedily groups page-number candidates into monotonically-increasing,
// same-scheme runs, parks runs whose density drops too low, and
// synthesizes missing interior candidates for schemes that support
// extrapolation.
package enumerate

import (
	"github.com/openscan/pagenum/internal/model"
	"github.com/openscan/pagenum/internal/scheme"
)

// MinSequenceLength is the shortest run kept after enumeration; shorter
// runs are discarded entirely.
const MinSequenceLength = 2

// Enumerate groups candidates (pageCandidates[p] holds page p's candidates,
// in extraction order) into sequences, parking and discarding as it goes
// whenever a sequence's density falls below threshold. The threshold
// differs by pass (pass 1: 0.3, pass 2: 0.05 by default).
func Enumerate(pageCandidates [][]model.Candidate, registry *scheme.Registry, threshold float64) []model.Sequence {
	var active []model.Sequence
	var parked []model.Sequence

	for p, candidates := range pageCandidates {
		for _, c := range candidates {
			if idx, ok := findAppendTarget(active, c, p, registry); ok {
				active[idx].Append(c)
			} else {
				active = append(active, model.Sequence{
					Scheme:  c.Scheme,
					Entries: []model.Candidate{c},
				})
			}
		}

		// Snapshot before removal: deleting from active while ranging over it
		// can skip a sequence immediately following a removed one. Ranging
		// over the snapshot and filtering into active[:0] (the same backing
		// array) avoids that, since each write lands at or before the
		// element currently being read.
		//
		// Density is measured up to the current page p, not the sequence's
		// last entry, so a run that stops growing loses density page by page.
		snapshot := active
		active = active[:0]
		for _, seq := range snapshot {
			density := 1.0
			if span := p - seq.StartPage(); span > 0 {
				density = float64(seq.Len()) / float64(span)
			}
			if density < threshold {
				parked = append(parked, seq)
			} else {
				active = append(active, seq)
			}
		}
	}

	// End of document: park everything still active.
	parked = append(parked, active...)

	kept := parked[:0]
	for _, seq := range parked {
		if seq.Len() >= MinSequenceLength {
			kept = append(kept, seq)
		}
	}
	return kept
}

// findAppendTarget returns the index of the first active sequence that c
// may be appended to: same scheme, is_increase holds between the tail and
// c, c is not identical to the tail, and the page actually advances.
func findAppendTarget(active []model.Sequence, c model.Candidate, page int, registry *scheme.Registry) (int, bool) {
	for i, seq := range active {
		tail := seq.Entries[len(seq.Entries)-1]
		if tail.Scheme != c.Scheme {
			continue
		}
		if page == tail.Page {
			continue
		}
		if c.Equal(tail) {
			continue
		}
		s := registry.Scheme(c.Scheme)
		if s.IsIncrease(tail.NumValue, page-tail.Page, c.NumValue) {
			return i, true
		}
	}
	return 0, false
}

package model

// Sequence is an ordered, same-scheme run of candidates across strictly
// increasing page indices, with NumValue advancing by exactly the page
// delta between consecutive entries.
type Sequence struct {
	Scheme  SchemeHandle
	Entries []Candidate
}

// StartPage returns the page index of the first entry, or -1 if empty.
func (s Sequence) StartPage() int {
	if len(s.Entries) == 0 {
		return -1
	}
	return s.Entries[0].Page
}

// EndPage returns the page index of the last entry, or -1 if empty.
func (s Sequence) EndPage() int {
	if len(s.Entries) == 0 {
		return -1
	}
	return s.Entries[len(s.Entries)-1].Page
}

// StartValue returns the NumValue of the first entry.
func (s Sequence) StartValue() int64 {
	if len(s.Entries) == 0 {
		return 0
	}
	return s.Entries[0].NumValue
}

// Len returns the number of entries.
func (s Sequence) Len() int {
	return len(s.Entries)
}

// Density is len/span: span is (EndPage - StartPage), or 1 when the
// sequence has not yet spanned more than one page.
func (s Sequence) Density() float64 {
	span := s.EndPage() - s.StartPage()
	if span == 0 {
		return 1
	}
	return float64(s.Len()) / float64(span)
}

// Append adds a candidate to the end of the sequence. Callers are
// responsible for verifying scheme match and monotonic page/value deltas
// before calling; Append itself does not re-derive them.
func (s *Sequence) Append(c Candidate) {
	s.Entries = append(s.Entries, c)
}

// Clone returns a deep-enough copy (entries slice is copied, candidates are
// value types) so callers can branch a sequence without aliasing.
func (s Sequence) Clone() Sequence {
	entries := make([]Candidate, len(s.Entries))
	copy(entries, s.Entries)
	return Sequence{Scheme: s.Scheme, Entries: entries}
}

package enumerate

import (
	"github.com/openscan/pagenum/internal/model"
	"github.com/openscan/pagenum/internal/scheme"
)

// FillGaps produces a sequence spanning every page from seq's first to last
// entry, synthesizing a candidate for each gap page when seq's scheme
// supports extrapolation. Schemes that do not support
// extrapolation are returned unchanged (cloned).
func FillGaps(seq model.Sequence, registry *scheme.Registry) model.Sequence {
	s := registry.Scheme(seq.Scheme)
	if !s.SupportsExtrapolation() {
		return seq.Clone()
	}

	start := seq.StartPage()
	startValue := seq.StartValue()

	byPage := make(map[int]model.Candidate, seq.Len())
	for _, c := range seq.Entries {
		byPage[c.Page] = c
	}

	filled := model.Sequence{Scheme: seq.Scheme}
	for p := start; p <= seq.EndPage(); p++ {
		if c, ok := byPage[p]; ok {
			filled.Append(c)
			continue
		}
		expected := startValue + int64(p-start)
		value := s.FromNum(expected)
		filled.Append(model.NewSynthetic(p, value, expected, seq.Scheme))
	}
	return filled
}

// FillAll applies FillGaps to every sequence in seqs.
func FillAll(seqs []model.Sequence, registry *scheme.Registry) []model.Sequence {
	out := make([]model.Sequence, len(seqs))
	for i, seq := range seqs {
		out[i] = FillGaps(seq, registry)
	}
	return out
}

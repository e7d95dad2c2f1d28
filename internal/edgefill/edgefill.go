// Package edgefill implements the optional opportunistic edge filler: it
// back-fills from the first confirmed page number towards the start of the
// document, and forward-fills from the last confirmed page number towards
// the end.
package edgefill

import (
	"github.com/openscan/pagenum/internal/model"
	"github.com/openscan/pagenum/internal/scheme"
)

// Fill returns a new assignment slice with synthetic candidates
// extrapolated into the leading and trailing "blank" regions of
// assignment. The input slice is not mutated.
func Fill(assignment []*model.Candidate, registry *scheme.Registry) []*model.Candidate {
	out := make([]*model.Candidate, len(assignment))
	copy(out, assignment)

	firstIdx := -1
	for i, c := range out {
		if c != nil {
			firstIdx = i
			break
		}
	}
	if firstIdx == -1 {
		return out
	}

	fillBackward(out, firstIdx, registry)
	fillForward(out, firstIdx, registry)

	return out
}

// fillBackward walks from firstIdx down to page 0, extrapolating one step
// per page, stopping early if the numeral value would drop below 1.
func fillBackward(out []*model.Candidate, firstIdx int, registry *scheme.Registry) {
	anchor := out[firstIdx]
	s := registry.Scheme(anchor.Scheme)

	value := anchor.NumValue
	for p := firstIdx - 1; p >= 0; p-- {
		value--
		if value < 1 {
			break
		}
		out[p] = synthetic(p, value, anchor.Scheme, s)
	}
}

// fillForward finds the last present entry (at or after firstIdx) and
// extrapolates one step per page from it, in its scheme, to the end of the
// document. Pages after that entry are written without checking their
// current contents.
func fillForward(out []*model.Candidate, firstIdx int, registry *scheme.Registry) {
	if firstIdx == -1 {
		return
	}
	lastIdx := firstIdx
	for p := len(out) - 1; p > firstIdx; p-- {
		if out[p] != nil {
			lastIdx = p
			break
		}
	}
	anchor := out[lastIdx]
	s := registry.Scheme(anchor.Scheme)

	value := anchor.NumValue
	for p := lastIdx + 1; p < len(out); p++ {
		value++
		out[p] = synthetic(p, value, anchor.Scheme, s)
	}
}

func synthetic(page int, value int64, h model.SchemeHandle, s scheme.Scheme) *model.Candidate {
	c := model.NewSynthetic(page, s.FromNum(value), value, h)
	return &c
}

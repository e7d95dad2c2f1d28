package enumerate

import (
	"testing"

	"github.com/openscan/pagenum/internal/model"
	"github.com/openscan/pagenum/internal/scheme"
)

func arabicHandle(t *testing.T, r *scheme.Registry) model.SchemeHandle {
	t.Helper()
	h, ok := r.Match("1")
	if !ok {
		t.Fatal("expected arabic to match \"1\"")
	}
	return h
}

func cand(page int, h model.SchemeHandle, value int64) model.Candidate {
	return model.NewObserved(page, "", value, h, model.WordObservation{})
}

func TestEnumerate_MonotonicRunGroupedTogether(t *testing.T) {
	r := scheme.NewRegistry(nil)
	h := arabicHandle(t, r)

	pages := make([][]model.Candidate, 10)
	for p := 0; p < 10; p++ {
		pages[p] = []model.Candidate{cand(p, h, int64(p+1))}
	}

	seqs := Enumerate(pages, r, 0.3)
	if len(seqs) != 1 {
		t.Fatalf("expected 1 sequence, got %d", len(seqs))
	}
	if seqs[0].Len() != 10 {
		t.Fatalf("expected length 10, got %d", seqs[0].Len())
	}
	if seqs[0].StartValue() != 1 {
		t.Errorf("StartValue = %d, want 1", seqs[0].StartValue())
	}
}

func TestEnumerate_DiscardsShortSequences(t *testing.T) {
	r := scheme.NewRegistry(nil)
	h := arabicHandle(t, r)

	pages := [][]model.Candidate{
		{cand(0, h, 100)},
	}
	seqs := Enumerate(pages, r, 0.3)
	if len(seqs) != 0 {
		t.Fatalf("expected single-entry sequence discarded, got %d sequences", len(seqs))
	}
}

func TestEnumerate_ParksLowDensitySequence(t *testing.T) {
	r := scheme.NewRegistry(nil)
	h := arabicHandle(t, r)

	// Two entries 20 pages apart: the first run's density at page 4 is
	// 1/4 = 0.25, below the pass-1 threshold of 0.3, so it is parked with a
	// single entry; the page-20 candidate then starts its own run. Both are
	// shorter than MinSequenceLength and are discarded.
	pages := make([][]model.Candidate, 21)
	pages[0] = []model.Candidate{cand(0, h, 1)}
	pages[20] = []model.Candidate{cand(20, h, 21)}

	seqs := Enumerate(pages, r, 0.3)
	if len(seqs) != 0 {
		t.Fatalf("expected sparse sequence parked and discarded, got %+v", seqs)
	}
}

func TestEnumerate_DifferentSchemesDoNotMerge(t *testing.T) {
	r := scheme.NewRegistry(nil)
	arabic := arabicHandle(t, r)
	roman, ok := r.Match("iii")
	if !ok {
		t.Fatal("expected roman to match \"iii\"")
	}

	pages := [][]model.Candidate{
		{cand(0, roman, 3), cand(0, arabic, 3)},
		{cand(1, roman, 4), cand(1, arabic, 4)},
	}
	seqs := Enumerate(pages, r, 0.3)
	if len(seqs) != 2 {
		t.Fatalf("expected 2 separate sequences (one per scheme), got %d", len(seqs))
	}
}

func TestFillGaps_SynthesizesInteriorValues(t *testing.T) {
	r := scheme.NewRegistry(nil)
	h := arabicHandle(t, r)

	seq := model.Sequence{Scheme: h, Entries: []model.Candidate{
		cand(0, h, 1),
		cand(1, h, 2),
		cand(3, h, 4),
		cand(4, h, 5),
	}}

	filled := FillGaps(seq, r)
	if filled.Len() != 5 {
		t.Fatalf("expected 5 entries after filling page 2, got %d", filled.Len())
	}
	gap := filled.Entries[2]
	if !gap.Synthetic {
		t.Errorf("expected page 2 entry to be synthetic")
	}
	if gap.NumValue != 3 || gap.Value != "3" {
		t.Errorf("expected synthesized value \"3\", got %q (%d)", gap.Value, gap.NumValue)
	}
	if gap.Observation != nil {
		t.Errorf("synthetic candidate must not carry an observation")
	}
}

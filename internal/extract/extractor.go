// Package extract implements the Candidate Extractor: for
// every OCR word on every page, it decides whether the word is a
// page-number candidate, optionally consulting a classifier filter, and
// samples a handful of non-matching words per page as negative training
// material for the classifier.
package extract

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/openscan/pagenum/internal/model"
	"github.com/openscan/pagenum/internal/ocrsrc"
	"github.com/openscan/pagenum/internal/scheme"
)

// NegativesPerPage is the number of non-matching words sampled per page as
// negative classifier training material, and the threshold at which the
// edge policy (below) starts skipping central words.
const NegativesPerPage = 10

// marginFraction is the width of the margin excluded, on each side, from
// the "central" region the edge policy protects once enough negatives have
// accumulated: a 20% margin on every side leaves a central 60% x 60% box.
const marginFraction = 0.2

// Filter is the classifier prefilter, present only in pass 2.
// pageIndex is the effective (post-skip) page index.
type Filter func(pageIndex int, word model.WordObservation) (keep bool, prob model.Prob)

// Result is the extractor's per-page output.
type Result struct {
	PageMatches    [][]model.Candidate
	PageNonMatches [][]model.WordObservation
	PageInfo       []model.PageInfo
}

// Extract runs the candidate extractor over it, honoring skip (which may be
// nil) and optionally consulting filter (nil in pass 1).
func Extract(ctx context.Context, it ocrsrc.PageIterator, skip map[int]bool, registry *scheme.Registry, rnd *rand.Rand, filter Filter) (Result, error) {
	var result Result

	rawIdx := 0
	skipCount := 0
	for {
		page, ok, err := it.Next(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("extract.Extract: %w", err)
		}
		if !ok {
			break
		}

		if skip[rawIdx] {
			skipCount++
			rawIdx++
			continue
		}
		effIdx := rawIdx - skipCount
		rawIdx++

		matches, nonMatches, info := extractPage(effIdx, page, registry, rnd, filter)
		result.PageMatches = append(result.PageMatches, matches)
		result.PageNonMatches = append(result.PageNonMatches, nonMatches)
		result.PageInfo = append(result.PageInfo, info)
	}

	return result, nil
}

func extractPage(effIdx int, page ocrsrc.Page, registry *scheme.Registry, rnd *rand.Rand, filter Filter) ([]model.Candidate, []model.WordObservation, model.PageInfo) {
	var info model.PageInfo
	info.Width, info.Height = page.Width, page.Height

	var matches []model.Candidate
	var nonMatchPool []model.WordObservation
	negativesSoFar := 0

	for _, w := range page.Words {
		info.AddWord(w)

		if negativesSoFar >= NegativesPerPage && whollyCentral(w.BBox, page.Width, page.Height) {
			continue
		}

		_, syntacticallyMatches := registry.Match(w.Text)
		numericLike := syntacticallyMatches || scheme.EligibleForComposite(w.Text)

		var prob model.Prob
		haveProb := false
		if filter != nil && numericLike {
			keep, p := filter(effIdx, w)
			if !keep {
				nonMatchPool = append(nonMatchPool, w)
				negativesSoFar++
				continue
			}
			prob = p
			haveProb = true
		}

		if cand, ok := matchCandidate(effIdx, w, registry); ok {
			if haveProb {
				pr := prob
				cand.Prob = &pr
			}
			matches = append(matches, cand)
			continue
		}

		nonMatchPool = append(nonMatchPool, w)
		negativesSoFar++
	}

	negatives := sampleNegatives(rnd, nonMatchPool, NegativesPerPage)
	return matches, negatives, info
}

// matchCandidate runs the scheme scan: try every registered
// scheme in order, then attempt composite discovery on a miss.
func matchCandidate(effIdx int, w model.WordObservation, registry *scheme.Registry) (model.Candidate, bool) {
	if h, ok := registry.Match(w.Text); ok {
		val, err := registry.Scheme(h).NumeralValue(w.Text)
		if err != nil {
			return model.Candidate{}, false
		}
		return model.NewObserved(effIdx, w.Text, val, h, w), true
	}

	if scheme.EligibleForComposite(w.Text) {
		if h, ok := registry.DiscoverComposite(w.Text); ok {
			val, err := registry.Scheme(h).NumeralValue(w.Text)
			if err == nil {
				return model.NewObserved(effIdx, w.Text, val, h, w), true
			}
		}
	}

	return model.Candidate{}, false
}

// whollyCentral reports whether box lies entirely within the central 60% x
// 60% of a page of the given dimensions.
func whollyCentral(box model.BBox, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	marginX := float64(width) * marginFraction
	marginY := float64(height) * marginFraction
	return float64(box.X1) >= marginX &&
		float64(box.X2) <= float64(width)-marginX &&
		float64(box.Y1) >= marginY &&
		float64(box.Y2) <= float64(height)-marginY
}

// sampleNegatives draws n samples uniformly, with replacement, from pool.
// It returns nil if pool is empty.
func sampleNegatives(rnd *rand.Rand, pool []model.WordObservation, n int) []model.WordObservation {
	if len(pool) == 0 {
		return nil
	}
	out := make([]model.WordObservation, n)
	for i := range out {
		out[i] = pool[rnd.Intn(len(pool))]
	}
	return out
}

// Package confidence implements the Confidence Aggregator
// and the Arabic sub-continuation heuristic it depends on.
package confidence

import (
	"math"

	"github.com/openscan/pagenum/internal/model"
	"github.com/openscan/pagenum/internal/scheme"
)

// Result holds the document confidence plus the intermediate observables
// that produced it, useful for logging and tests.
type Result struct {
	Percent       int
	FoundOrSynth  int
	Found         int
	ProbAvg       float64
	SynthRatio    float64
	RefinedSeqs   int
	SeqOffset     int
	PagesPerSeq   float64
	FactorPresent float64
	FactorFound   float64
	FactorSynth   float64
	FactorProb    float64
	FactorDensity float64
}

// Aggregate computes the document confidence from the final per-page
// assignment and the refined sequences produced by regrouping pass 2's
// output.
func Aggregate(assignment []*model.Candidate, refinedSequences []model.Sequence, registry *scheme.Registry) Result {
	total := len(assignment)
	if total == 0 {
		return Result{}
	}

	var foundOrSynth, found int
	var probSum float64
	for _, c := range assignment {
		if c == nil {
			continue
		}
		foundOrSynth++
		if !c.Synthetic {
			found++
			if c.Prob != nil {
				probSum += c.Prob.PTrue
			}
		}
	}

	probAvg := 0.0
	if found > 0 {
		probAvg = probSum / float64(found)
	}

	synthRatio := 0.0
	if foundOrSynth > 0 {
		synthRatio = float64(found) / float64(foundOrSynth)
	}

	seqOffset := SeqOffset(refinedSequences, registry)
	denom := max(1, len(refinedSequences)-seqOffset)
	pagesPerSeq := float64(total) / float64(denom)

	f1 := math.Min(1, float64(foundOrSynth)/float64(total)+0.20)
	f2 := math.Min(1, float64(found)/float64(total)+0.70)
	f3 := math.Min(1, synthRatio+2.0/3.0)
	f4 := math.Min(1, probAvg+0.10)
	f5 := math.Min(1, pagesPerSeq/math.Min(30, float64(total))+0.05)

	c := f1 * f2 * f3 * f4 * f5

	return Result{
		Percent:       int(math.Round(c * 100)),
		FoundOrSynth:  foundOrSynth,
		Found:         found,
		ProbAvg:       probAvg,
		SynthRatio:    synthRatio,
		RefinedSeqs:   len(refinedSequences),
		SeqOffset:     seqOffset,
		PagesPerSeq:   pagesPerSeq,
		FactorPresent: f1,
		FactorFound:   f2,
		FactorSynth:   f3,
		FactorProb:    f4,
		FactorDensity: f5,
	}
}

// SeqOffset counts Arabic refined sequences that look like a later
// "sub-continuation" of an earlier Arabic sequence: a short
// forward jump in both page and value that tracks closely enough to
// suggest the pair is really one run the enumerator split in two.
func SeqOffset(refinedSequences []model.Sequence, registry *scheme.Registry) int {
	var arabic []model.Sequence
	for _, seq := range refinedSequences {
		if registry.Scheme(seq.Scheme).Name() == "arabic" {
			arabic = append(arabic, seq)
		}
	}

	offset := 0
	for i, a := range arabic {
		for j, b := range arabic {
			if j == i {
				continue
			}
			if b.StartPage() <= a.StartPage() {
				continue
			}
			leaf := int64(b.StartPage() - a.StartPage())
			val := b.StartValue() - a.StartValue()
			if leaf > 0 && leaf < 20 && val > 0 && val < 20 && (leaf-val) > 0 && (leaf-val) < 5 {
				offset++
				break
			}
		}
	}
	return offset
}

// Package pipeline implements the Two-Pass Driver: it wires
// the extractor, enumerator, gap filler, trellis solver, classifier, edge
// filler and confidence aggregator into the full inference run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/openscan/pagenum/internal/classify"
	"github.com/openscan/pagenum/internal/confidence"
	"github.com/openscan/pagenum/internal/edgefill"
	"github.com/openscan/pagenum/internal/enumerate"
	"github.com/openscan/pagenum/internal/extract"
	"github.com/openscan/pagenum/internal/model"
	"github.com/openscan/pagenum/internal/ocrsrc"
	"github.com/openscan/pagenum/internal/scheme"
	"github.com/openscan/pagenum/internal/svcctx"
	"github.com/openscan/pagenum/internal/trellis"
)

const (
	defaultPass1Threshold = 0.3
	defaultPass2Threshold = 0.05
	pass1LinkFactor       = 3
	pass2LinkFactor       = 1
)

// Config controls the driver's behavior; all fields have sane defaults via
// DefaultConfig.
type Config struct {
	ClassifierKind    classify.Kind
	Pass1Threshold    float64
	Pass2Threshold    float64
	TwoPass           bool
	OpportunisticFill bool
}

// DefaultConfig returns the default driver configuration: naive Bayes,
// pass-1 threshold 0.3, pass-2 threshold 0.05, two-pass and opportunistic
// fill both enabled.
func DefaultConfig() Config {
	return Config{
		ClassifierKind:    classify.NaiveBayes,
		Pass1Threshold:    defaultPass1Threshold,
		Pass2Threshold:    defaultPass2Threshold,
		TwoPass:           true,
		OpportunisticFill: true,
	}
}

// Output is the driver's final result, ready for JSON serialization.
type Output struct {
	TotalPages       int
	Assignment       []*model.Candidate
	PageInfo         []model.PageInfo
	RefinedSequences []model.Sequence
	Confidence       confidence.Result
	TrainingFailed   bool
}

// Run executes the full two-pass inference over source, honoring skip
// (pages to drop before effective-index renumbering; may be nil).
func Run(ctx context.Context, source ocrsrc.PageSource, skip map[int]bool, cfg Config) (*Output, error) {
	registry := scheme.NewRegistry(svcctx.LoggerFrom(ctx))
	svc := svcctx.From(ctx)

	pass1Result, err := runExtract(ctx, source, skip, registry, svc, nil)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Run: pass 1: %w", err)
	}
	totalPages := len(pass1Result.PageInfo)

	seqs1 := enumerate.Enumerate(pass1Result.PageMatches, registry, cfg.Pass1Threshold)
	filled1 := enumerate.FillAll(seqs1, registry)
	assignment1 := trellis.Build(filled1, totalPages, pass1LinkFactor).Solve()

	if !cfg.TwoPass {
		return finish(totalPages, assignment1, filled1, pass1Result.PageInfo, registry, cfg, false), nil
	}

	standardizer, clf, trainErr := trainClassifier(cfg.ClassifierKind, pass1Result, assignment1, svc)
	if trainErr != nil {
		// Training failure falls back to the pass-1 result unchanged.
		return finish(totalPages, assignment1, filled1, pass1Result.PageInfo, registry, cfg, true), nil
	}

	filterFn := func(pageIdx int, w model.WordObservation) (bool, model.Prob) {
		info := model.PageInfo{}
		if pageIdx >= 0 && pageIdx < len(pass1Result.PageInfo) {
			info = pass1Result.PageInfo[pageIdx]
		}
		feats := classify.Extract(w, info, pageIdx)
		std := standardizer.Transform(feats[:])
		prob := clf.PredictProba(std)
		return prob.PTrue > 0.5, prob
	}

	pass2Result, err := runExtract(ctx, source, skip, registry, svc, filterFn)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Run: pass 2: %w", err)
	}

	seqs2 := enumerate.Enumerate(pass2Result.PageMatches, registry, cfg.Pass2Threshold)
	filled2 := enumerate.FillAll(seqs2, registry)
	assignment2 := trellis.Build(filled2, totalPages, pass2LinkFactor).Solve()

	refined := regroup(assignment2, registry, cfg.Pass2Threshold)

	return finish(totalPages, assignment2, refined, pass1Result.PageInfo, registry, cfg, false), nil
}

func runExtract(ctx context.Context, source ocrsrc.PageSource, skip map[int]bool, registry *scheme.Registry, svc *svcctx.Services, filter extract.Filter) (extract.Result, error) {
	it, err := source.Open(ctx)
	if err != nil {
		return extract.Result{}, err
	}
	defer it.Close()
	return extract.Extract(ctx, it, skip, registry, svc.Rand, filter)
}

// trainClassifier builds the feature/label matrix from pass 1's best path
// (non-synthetic winners are positives, that page's sampled negatives are
// negatives) and fits a standardized classifier on it.
func trainClassifier(kind classify.Kind, pass1 extract.Result, assignment1 []*model.Candidate, svc *svcctx.Services) (*classify.Standardizer, classify.Classifier, error) {
	var X [][]float64
	var y []int

	for page, c := range assignment1 {
		if c == nil || c.Synthetic || c.Observation == nil {
			continue
		}
		info := pass1.PageInfo[page]
		f := classify.Extract(*c.Observation, info, page)
		X = append(X, f[:])
		y = append(y, 1)
	}
	for page, negatives := range pass1.PageNonMatches {
		if page >= len(assignment1) {
			continue
		}
		if c := assignment1[page]; c == nil || c.Synthetic || c.Observation == nil {
			continue
		}
		info := pass1.PageInfo[page]
		for _, w := range negatives {
			f := classify.Extract(w, info, page)
			X = append(X, f[:])
			y = append(y, 0)
		}
	}

	if len(X) == 0 {
		return nil, nil, model.ErrTrainingUnderdetermined
	}

	standardizer := classify.NewStandardizer(X)
	Xstd := standardizer.TransformAll(X)

	clf := classify.New(kind)
	if err := clf.Fit(Xstd, y, svc.Rand); err != nil {
		return nil, nil, err
	}
	return standardizer, clf, nil
}

// regroup re-enumerates the single-candidate-per-page best-path stream into
// refined sequences.
func regroup(assignment []*model.Candidate, registry *scheme.Registry, threshold float64) []model.Sequence {
	stream := make([][]model.Candidate, len(assignment))
	for p, c := range assignment {
		if c != nil {
			stream[p] = []model.Candidate{*c}
		}
	}
	return enumerate.Enumerate(stream, registry, threshold)
}

func finish(totalPages int, assignment []*model.Candidate, sequences []model.Sequence, pageInfo []model.PageInfo, registry *scheme.Registry, cfg Config, trainingFailed bool) *Output {
	final := assignment
	if cfg.OpportunisticFill {
		final = edgefill.Fill(assignment, registry)
	}
	conf := confidence.Aggregate(final, sequences, registry)

	return &Output{
		TotalPages:       totalPages,
		Assignment:       final,
		PageInfo:         pageInfo,
		RefinedSequences: sequences,
		Confidence:       conf,
		TrainingFailed:   trainingFailed,
	}
}

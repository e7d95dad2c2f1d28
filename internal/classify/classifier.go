package classify

import (
	"math/rand"

	"github.com/openscan/pagenum/internal/model"
)

// Classifier is the shared binary-classifier interface: fit on
// standardized feature rows and their 0/1 labels, then predict
// (p_false, p_true) for a single row. rnd is used for initialization where
// applicable (logistic regression); naive Bayes ignores it.
type Classifier interface {
	Fit(X [][]float64, y []int, rnd *rand.Rand) error
	PredictProba(x []float64) model.Prob
}

// Kind selects which Classifier implementation the two-pass driver builds.
type Kind string

const (
	NaiveBayes         Kind = "naivebayes"
	LogisticRegression Kind = "logisticregression"
)

// New returns a fresh, untrained classifier of the requested kind.
func New(kind Kind) Classifier {
	switch kind {
	case LogisticRegression:
		return NewLogistic()
	default:
		return NewNaiveBayes()
	}
}

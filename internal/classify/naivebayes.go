package classify

import (
	"math"
	"math/rand"

	"github.com/openscan/pagenum/internal/model"
)

// minVariance floors per-feature variance to avoid a zero-width Gaussian
// collapsing the likelihood to infinity on a perfectly constant feature.
const minVariance = 1e-6

// NaiveBayesModel is a Gaussian naive-Bayes binary classifier.
type NaiveBayesModel struct {
	meanPos, varPos []float64
	meanNeg, varNeg []float64
	logPriorPos     float64
	logPriorNeg     float64
}

// NewNaiveBayes returns an untrained Gaussian naive-Bayes classifier.
func NewNaiveBayes() *NaiveBayesModel {
	return &NaiveBayesModel{}
}

// Fit implements Classifier. rnd is unused: naive Bayes has no randomized
// initialization.
func (m *NaiveBayesModel) Fit(X [][]float64, y []int, rnd *rand.Rand) error {
	var posX, negX [][]float64
	for i, x := range X {
		if y[i] == 1 {
			posX = append(posX, x)
		} else {
			negX = append(negX, x)
		}
	}
	if len(posX) == 0 || len(negX) == 0 {
		return model.ErrTrainingUnderdetermined
	}

	m.meanPos, m.varPos = meanVar(posX)
	m.meanNeg, m.varNeg = meanVar(negX)
	m.logPriorPos = math.Log(float64(len(posX)) / float64(len(X)))
	m.logPriorNeg = math.Log(float64(len(negX)) / float64(len(X)))
	return nil
}

// PredictProba implements Classifier.
func (m *NaiveBayesModel) PredictProba(x []float64) model.Prob {
	logPos := m.logPriorPos
	logNeg := m.logPriorNeg
	for j, v := range x {
		logPos += gaussianLogPDF(v, m.meanPos[j], m.varPos[j])
		logNeg += gaussianLogPDF(v, m.meanNeg[j], m.varNeg[j])
	}

	maxLog := math.Max(logPos, logNeg)
	pPos := math.Exp(logPos - maxLog)
	pNeg := math.Exp(logNeg - maxLog)
	sum := pPos + pNeg
	return model.Prob{PFalse: pNeg / sum, PTrue: pPos / sum}
}

func meanVar(X [][]float64) (mean, variance []float64) {
	n := len(X[0])
	mean = make([]float64, n)
	variance = make([]float64, n)

	for _, x := range X {
		for j, v := range x {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(len(X))
	}

	for _, x := range X {
		for j, v := range x {
			d := v - mean[j]
			variance[j] += d * d
		}
	}
	for j := range variance {
		variance[j] /= float64(len(X))
		if variance[j] < minVariance {
			variance[j] = minVariance
		}
	}
	return mean, variance
}

func gaussianLogPDF(x, mean, variance float64) float64 {
	return -0.5*math.Log(2*math.Pi*variance) - (x-mean)*(x-mean)/(2*variance)
}

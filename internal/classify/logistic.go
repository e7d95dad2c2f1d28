package classify

import (
	"math"
	"math/rand"

	"github.com/openscan/pagenum/internal/model"
)

// logisticC is the L2-regularization strength, C=1.0.
const logisticC = 1.0

const (
	logisticLearningRate = 0.1
	logisticEpochs       = 200
	logisticInitScale    = 0.01
)

// LogisticModel is an L2-regularized logistic-regression binary classifier,
// trained by batch gradient descent.
type LogisticModel struct {
	weights []float64
	bias    float64
}

// NewLogistic returns an untrained logistic-regression classifier.
func NewLogistic() *LogisticModel {
	return &LogisticModel{}
}

// Fit implements Classifier. rnd seeds the small random weight
// initialization; a nil rnd leaves weights zero-initialized.
func (m *LogisticModel) Fit(X [][]float64, y []int, rnd *rand.Rand) error {
	if len(X) == 0 {
		return model.ErrTrainingUnderdetermined
	}
	posCount, negCount := 0, 0
	for _, label := range y {
		if label == 1 {
			posCount++
		} else {
			negCount++
		}
	}
	if posCount == 0 || negCount == 0 {
		return model.ErrTrainingUnderdetermined
	}

	nFeatures := len(X[0])
	m.weights = make([]float64, nFeatures)
	if rnd != nil {
		for i := range m.weights {
			m.weights[i] = rnd.NormFloat64() * logisticInitScale
		}
	}
	m.bias = 0

	n := float64(len(X))
	lambda := 1.0 / logisticC

	for epoch := 0; epoch < logisticEpochs; epoch++ {
		gradW := make([]float64, nFeatures)
		gradB := 0.0

		for i, x := range X {
			z := m.bias
			for j, v := range x {
				z += m.weights[j] * v
			}
			p := sigmoid(z)
			errTerm := p - float64(y[i])
			for j, v := range x {
				gradW[j] += errTerm * v
			}
			gradB += errTerm
		}

		for j := range m.weights {
			m.weights[j] -= logisticLearningRate * (gradW[j]/n + lambda*m.weights[j]/n)
		}
		m.bias -= logisticLearningRate * gradB / n
	}

	return nil
}

// PredictProba implements Classifier.
func (m *LogisticModel) PredictProba(x []float64) model.Prob {
	z := m.bias
	for j, v := range x {
		if j >= len(m.weights) {
			break
		}
		z += m.weights[j] * v
	}
	p1 := sigmoid(z)
	return model.Prob{PFalse: 1 - p1, PTrue: p1}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

package classify

import "math"

// Standardizer holds a saved per-feature mean and population standard
// deviation, fit once on a training set and reused for both training and
// inference inputs.
type Standardizer struct {
	Mean []float64
	Std  []float64
}

// NewStandardizer computes mean and population stddev per feature over X.
func NewStandardizer(X [][]float64) *Standardizer {
	if len(X) == 0 {
		return &Standardizer{}
	}
	n := len(X[0])
	mean := make([]float64, n)
	for _, x := range X {
		for j, v := range x {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(len(X))
	}

	std := make([]float64, n)
	for _, x := range X {
		for j, v := range x {
			d := v - mean[j]
			std[j] += d * d
		}
	}
	for j := range std {
		std[j] = math.Sqrt(std[j] / float64(len(X)))
		if std[j] == 0 {
			std[j] = 1
		}
	}

	return &Standardizer{Mean: mean, Std: std}
}

// Transform returns a standardized copy of x.
func (s *Standardizer) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for j, v := range x {
		if j >= len(s.Mean) {
			out[j] = v
			continue
		}
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return out
}

// TransformAll standardizes every row of X.
func (s *Standardizer) TransformAll(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, x := range X {
		out[i] = s.Transform(x)
	}
	return out
}

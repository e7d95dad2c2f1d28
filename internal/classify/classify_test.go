package classify

import (
	"math/rand"
	"testing"

	"github.com/openscan/pagenum/internal/model"
)

func TestExtract_Length(t *testing.T) {
	w := model.WordObservation{BBox: model.BBox{X1: 1, Y1: 2, X2: 10, Y2: 20}, FontSize: 12}
	info := model.PageInfo{Width: 1000, Height: 500, ContentBBox: model.BBox{X1: 0, Y1: 0, X2: 999, Y2: 499}}
	f := Extract(w, info, 0)
	if len(f) != NumFeatures {
		t.Fatalf("feature vector length = %d, want %d", len(f), NumFeatures)
	}
	if f[39] != 12 {
		t.Errorf("f[39] (font size) = %v, want 12", f[39])
	}
	if f[19] != 1 {
		t.Errorf("f[19] (parity, even page) = %v, want 1", f[19])
	}
}

func TestExtract_OddPageParitySign(t *testing.T) {
	w := model.WordObservation{BBox: model.BBox{X1: 1, Y1: 2, X2: 10, Y2: 20}}
	info := model.PageInfo{Width: 1000, Height: 500}
	f := Extract(w, info, 1)
	if f[19] != -1 {
		t.Errorf("f[19] (parity, odd page) = %v, want -1", f[19])
	}
	if f[20] != f[0]*f[19] {
		t.Errorf("f[20] should be f[0]*f[19]")
	}
}

func TestStandardizer_ZeroMeanUnitVariance(t *testing.T) {
	X := [][]float64{{1, 10}, {2, 20}, {3, 30}}
	s := NewStandardizer(X)
	out := s.TransformAll(X)

	var mean float64
	for _, row := range out {
		mean += row[0]
	}
	mean /= float64(len(out))
	if mean > 1e-9 || mean < -1e-9 {
		t.Errorf("standardized mean = %v, want ~0", mean)
	}
}

func linearlySeparableData() ([][]float64, []int) {
	X := [][]float64{
		{0, 0}, {0.1, -0.1}, {-0.1, 0.1},
		{10, 10}, {9.9, 10.1}, {10.1, 9.9},
	}
	y := []int{0, 0, 0, 1, 1, 1}
	return X, y
}

func TestNaiveBayes_SeparatesClasses(t *testing.T) {
	X, y := linearlySeparableData()
	m := NewNaiveBayes()
	if err := m.Fit(X, y, nil); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	p := m.PredictProba([]float64{10, 10})
	if p.PTrue <= p.PFalse {
		t.Errorf("expected positive class favored near training positives, got %+v", p)
	}
	p = m.PredictProba([]float64{0, 0})
	if p.PFalse <= p.PTrue {
		t.Errorf("expected negative class favored near training negatives, got %+v", p)
	}
}

func TestNaiveBayes_EmptyClassReturnsUnderdetermined(t *testing.T) {
	X := [][]float64{{1}, {2}}
	y := []int{0, 0}
	m := NewNaiveBayes()
	if err := m.Fit(X, y, nil); err != model.ErrTrainingUnderdetermined {
		t.Fatalf("Fit error = %v, want ErrTrainingUnderdetermined", err)
	}
}

func TestLogistic_SeparatesClasses(t *testing.T) {
	X, y := linearlySeparableData()
	m := NewLogistic()
	rnd := rand.New(rand.NewSource(42))
	if err := m.Fit(X, y, rnd); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	p := m.PredictProba([]float64{10, 10})
	if p.PTrue <= 0.5 {
		t.Errorf("expected p_true > 0.5 near training positives, got %+v", p)
	}
	p = m.PredictProba([]float64{0, 0})
	if p.PTrue >= 0.5 {
		t.Errorf("expected p_true < 0.5 near training negatives, got %+v", p)
	}
}

func TestLogistic_EmptyClassReturnsUnderdetermined(t *testing.T) {
	X := [][]float64{{1}, {2}}
	y := []int{1, 1}
	m := NewLogistic()
	if err := m.Fit(X, y, nil); err != model.ErrTrainingUnderdetermined {
		t.Fatalf("Fit error = %v, want ErrTrainingUnderdetermined", err)
	}
}

// Package classify implements the feature extractor and classifier
// trainer: a fixed 40-dimensional geometric/typographic feature vector per
// word observation, feature standardization, and a shared classifier
// interface with naive-Bayes and logistic-regression implementations.
package classify

import (
	"math"

	"github.com/openscan/pagenum/internal/model"
)

// NumFeatures is the width of the feature vector.
const NumFeatures = 40

// Extract computes the 40-dimensional feature vector for word w, found on
// page pageIndex described by info.
func Extract(w model.WordObservation, info model.PageInfo, pageIndex int) [NumFeatures]float64 {
	var f [NumFeatures]float64

	x1 := float64(w.BBox.X1)
	y1 := float64(w.BBox.Y1)
	x2 := float64(w.BBox.X2)
	y2 := float64(w.BBox.Y2)

	f[0], f[1], f[2], f[3] = x1, y1, x2, y2

	f[4] = x1 * x1
	f[5] = y1 * y1
	f[6] = x2 * x2
	f[7] = y2 * y2
	f[8] = x1 * y1
	f[9] = x1 * x2
	f[10] = x1 * y2
	f[11] = y1 * x2
	f[12] = y1 * y2
	f[13] = x2 * y2

	if info.Height != 0 {
		f[14] = math.Floor(float64(info.Width) / float64(info.Height))
	}

	f[15] = float64(info.ContentBBox.X1)
	f[16] = float64(info.ContentBBox.Y1)
	f[17] = float64(info.ContentBBox.X2)
	f[18] = float64(info.ContentBBox.Y2)

	if pageIndex%2 == 0 {
		f[19] = 1
	} else {
		f[19] = -1
	}

	// 20-38 is 19 slots; it multiplies the 19 preceding features (0-18, the
	// bbox/product/ratio/content-bbox block) by the parity sign, leaving the
	// parity feature itself (19) unmultiplied by itself.
	for i := 0; i <= 18; i++ {
		f[20+i] = f[i] * f[19]
	}

	f[39] = w.FontSize

	return f
}

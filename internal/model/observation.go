package model

// BBox is an axis-aligned bounding box in page coordinates, (x1,y1) top-left
// and (x2,y2) bottom-right.
type BBox struct {
	X1, Y1, X2, Y2 int
}

// Union returns the smallest box containing both b and o.
// An empty BBox result of a nil-union is the zero value's caller concern;
// Union always returns a valid box given two valid boxes.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		X1: min(b.X1, o.X1),
		Y1: min(b.Y1, o.Y1),
		X2: max(b.X2, o.X2),
		Y2: max(b.Y2, o.Y2),
	}
}

// WordObservation is a single OCR word on a page, supplied by the external
// OCR collaborator.
type WordObservation struct {
	BBox       BBox
	Text       string
	FontSize   float64
	Confidence int // OCR word confidence, 0-100
}

// PageInfo describes page-level geometry derived from its words.
type PageInfo struct {
	Width, Height int
	ContentBBox   BBox
	sawWord       bool
}

// AddWord folds a word's bbox into the page's content bbox union. Called for
// every word on the page, including rejected ones.
func (p *PageInfo) AddWord(w WordObservation) {
	if !p.sawWord {
		p.ContentBBox = w.BBox
		p.sawWord = true
		return
	}
	p.ContentBBox = p.ContentBBox.Union(w.BBox)
}

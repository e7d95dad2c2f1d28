// Package ocrsrc defines the external OCR and scandata collaborator
// interfaces and ships a tolerant hOCR-derived JSON reader as the concrete
// OCR source, plus a PDF page-count cross-check (not a text source).
package ocrsrc

import (
	"context"
	"fmt"

	"github.com/openscan/pagenum/internal/model"
)

// Page is one page's geometry and word observations, as handed back by a
// PageIterator. Dimensions come from the OCR page header; Words is the
// flattened paragraph/line/word tree the collaborator exposes.
type Page struct {
	Width, Height int
	Words         []model.WordObservation
}

// PageIterator streams pages one at a time so a caller's per-page working
// set can be released before the next page is read.
type PageIterator interface {
	// Next returns the next page. ok is false (with a nil error) once the
	// stream is exhausted.
	Next(ctx context.Context) (page Page, ok bool, err error)

	// Close releases any resources the iterator holds.
	Close() error
}

// PageSource opens a PageIterator over some document.
type PageSource interface {
	Open(ctx context.Context) (PageIterator, error)
}

// ScandataSource provides the optional leaf skip list: pages
// present in the OCR stream but absent from access formats (e.g. blank
// leaves removed during production). Callers must subtract these from the
// stream and re-number downstream indices densely.
type ScandataSource interface {
	SkipPages(ctx context.Context) (map[int]bool, error)
}

// wrapIOError tags an error as an external-collaborator I/O failure, which
// is always fatal to the run.
func wrapIOError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, model.ErrExternalIO, err)
}

package ocrsrc

import (
	"context"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// CheckPDFPageCount cross-validates that a PDF's page count matches the
// number of pages a JSONSource declares, for books whose scans were
// delivered as both an OCR JSON sidecar and the original paginated PDF. It
// is a best-effort sanity check, not a text source: pagenum's word-level
// geometry always comes from the OCR collaborator, never from
// re-deriving text layout out of the PDF content stream.
func CheckPDFPageCount(ctx context.Context, pdfPath string, wantPages int) error {
	f, err := os.Open(pdfPath)
	if err != nil {
		return wrapIOError("ocrsrc.CheckPDFPageCount", err)
	}
	defer f.Close()

	got, err := api.PageCount(f, nil)
	if err != nil {
		return wrapIOError("ocrsrc.CheckPDFPageCount", err)
	}
	if got != wantPages {
		return fmt.Errorf("pagenum: %s has %d pages, OCR source declares %d", pdfPath, got, wantPages)
	}
	return nil
}

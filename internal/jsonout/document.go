// Package jsonout builds and serializes the engine's output document: one
// JSON object per run, with a per-page confidence, assigned page-number
// string, and the classifier/OCR confidences behind it, pretty-printed
// with a 4-space indent.
package jsonout

import (
	"encoding/json"
	"math"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/openscan/pagenum/internal/model"
)

// FormatVersion is the fixed output schema version.
const FormatVersion = "2"

// PageOutput is one page's entry in the output document.
type PageOutput struct {
	LeafNum    int
	Confidence *int
	PageNumber string
	PageProb   *int
	WordConf   *int
}

// Document is the top-level output document.
type Document struct {
	Identifier              *string
	FormatVersion           string
	ArchiveHocrToolsVersion string
	Confidence              int
	Pages                   []PageOutput
}

// Build assembles a Document from the final per-page assignment. leafNums
// maps effective page index to leaf number (scandata mapping); a nil
// leafNums defaults leaf number to the page index itself.
func Build(identifier *string, archiveVersion string, docConfidencePercent int, assignment []*model.Candidate, leafNums []int) Document {
	pages := make([]PageOutput, len(assignment))
	for i, c := range assignment {
		leaf := i
		if leafNums != nil && i < len(leafNums) {
			leaf = leafNums[i]
		}
		pages[i] = buildPage(leaf, c)
	}
	return Document{
		Identifier:              identifier,
		FormatVersion:           FormatVersion,
		ArchiveHocrToolsVersion: archiveVersion,
		Confidence:              docConfidencePercent,
		Pages:                   pages,
	}
}

func buildPage(leaf int, c *model.Candidate) PageOutput {
	out := PageOutput{LeafNum: leaf}
	if c == nil {
		return out
	}
	out.PageNumber = c.Value

	if c.Prob != nil {
		confidence := intPercent(math.Min(c.Prob.PTrue+0.10, 1))
		prob := intPercent(c.Prob.PTrue)
		out.Confidence = &confidence
		out.PageProb = &prob
	}
	if c.Observation != nil {
		wordConf := c.Observation.Confidence
		out.WordConf = &wordConf
	}
	return out
}

func intPercent(p float64) int {
	return int(math.Round(p * 100))
}

type wireDocument struct {
	Identifier              *string    `json:"identifier"`
	FormatVersion           string     `json:"format-version"`
	ArchiveHocrToolsVersion string     `json:"archive-hocr-tools-version"`
	Confidence              int        `json:"confidence"`
	Pages                   []wirePage `json:"pages"`
}

type wirePage struct {
	LeafNum    int    `json:"leafNum"`
	Confidence *int   `json:"confidence"`
	PageNumber string `json:"pageNumber"`
	PageProb   *int   `json:"pageProb"`
	WordConf   *int   `json:"wordConf"`
}

// Marshal serializes doc to its wire schema, pretty-printed with a 4-space
// indent via github.com/tidwall/pretty rather than encoding/json's own
// indenter, to match the byte-for-byte output convention other archive
// tooling in this ecosystem uses.
func Marshal(doc Document) ([]byte, error) {
	wire := wireDocument{
		Identifier:              doc.Identifier,
		FormatVersion:           doc.FormatVersion,
		ArchiveHocrToolsVersion: doc.ArchiveHocrToolsVersion,
		Confidence:              doc.Confidence,
		Pages:                   make([]wirePage, len(doc.Pages)),
	}
	for i, p := range doc.Pages {
		wire.Pages[i] = wirePage{
			LeafNum:    p.LeafNum,
			Confidence: p.Confidence,
			PageNumber: p.PageNumber,
			PageProb:   p.PageProb,
			WordConf:   p.WordConf,
		}
	}

	raw, err := json.Marshal(wire)
	if err != nil {
		return nil, err
	}
	return prettyIndent(raw), nil
}

func prettyIndent(raw []byte) []byte {
	return pretty.PrettyOptions(raw, &pretty.Options{Indent: "    "})
}

// WithIdentifierOverride patches an already-serialized document's
// identifier field in place, for the CLI's --identifier override: it
// avoids re-threading the override through Build when the document was
// already built from the OCR source's own declared identifier.
func WithIdentifierOverride(marshaled []byte, identifier string) ([]byte, error) {
	patched, err := sjson.SetBytes(marshaled, "identifier", identifier)
	if err != nil {
		return nil, err
	}
	return prettyIndent(patched), nil
}

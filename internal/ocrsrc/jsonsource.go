package ocrsrc

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/tidwall/gjson"

	"github.com/openscan/pagenum/internal/model"
)

// JSONSource reads a hOCR-derived page/word document:
//
//	{
//	  "identifier": "...",
//	  "pages": [
//	    {"width": 1500, "height": 2200, "words": [
//	      {"text": "1", "bbox": [x1,y1,x2,y2], "fontsize": 12.5, "confidence": 95}
//	    ]}
//	  ]
//	}
//
// Fields are read with github.com/tidwall/gjson rather than a fully-typed
// encoding/json struct, so a document with extra or partially-populated
// fields (the common case for upstream hOCR conversions) still loads; any
// field absent from a word or page takes its zero value.
type JSONSource struct {
	Path string
}

// Identifier reads just the top-level "identifier" field, used by the CLI
// to default the output document's identifier when no override is given.
func (s JSONSource) Identifier(ctx context.Context) (string, error) {
	data, err := readFileRetrying(ctx, s.Path)
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(data, "identifier").String(), nil
}

// Open implements PageSource.
func (s JSONSource) Open(ctx context.Context) (PageIterator, error) {
	data, err := readFileRetrying(ctx, s.Path)
	if err != nil {
		return nil, err
	}

	pages := gjson.GetBytes(data, "pages")
	if !pages.IsArray() {
		return nil, wrapIOError("ocrsrc.JSONSource.Open", fmt.Errorf("%q: \"pages\" is not an array", s.Path))
	}

	return &jsonIterator{pages: pages.Array()}, nil
}

type jsonIterator struct {
	pages []gjson.Result
	idx   int
}

func (it *jsonIterator) Next(ctx context.Context) (Page, bool, error) {
	if it.idx >= len(it.pages) {
		return Page{}, false, nil
	}
	raw := it.pages[it.idx]
	it.idx++

	page := Page{
		Width:  int(raw.Get("width").Int()),
		Height: int(raw.Get("height").Int()),
	}

	wordsResult := raw.Get("words")
	if wordsResult.IsArray() {
		for _, w := range wordsResult.Array() {
			page.Words = append(page.Words, decodeWord(w))
		}
	}
	return page, true, nil
}

func (it *jsonIterator) Close() error { return nil }

func decodeWord(w gjson.Result) model.WordObservation {
	bbox := w.Get("bbox").Array()
	var b model.BBox
	if len(bbox) == 4 {
		b = model.BBox{
			X1: int(bbox[0].Int()),
			Y1: int(bbox[1].Int()),
			X2: int(bbox[2].Int()),
			Y2: int(bbox[3].Int()),
		}
	}
	return model.WordObservation{
		BBox:       b,
		Text:       w.Get("text").String(),
		FontSize:   w.Get("fontsize").Float(),
		Confidence: int(w.Get("confidence").Int()),
	}
}

// readFileRetrying reads a file, retrying transient failures (e.g. the
// document sitting on a flaky network mount) before surfacing a fatal
// ExternalIOFailure.
func readFileRetrying(ctx context.Context, path string) ([]byte, error) {
	var data []byte
	err := retry.Do(
		func() error {
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			data = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
	)
	if err != nil {
		return nil, wrapIOError("ocrsrc.readFile", err)
	}
	return data, nil
}

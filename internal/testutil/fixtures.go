// Package testutil provides small t.Helper()-based fixture builders shared
// across this module's package tests: word/page builders and an in-memory
// ocrsrc.PageSource fake, so individual test files don't each hand-roll
// their own page iterator.
package testutil

import (
	"context"
	"testing"

	"github.com/openscan/pagenum/internal/model"
	"github.com/openscan/pagenum/internal/ocrsrc"
)

// Word builds a WordObservation at the given bounding box.
func Word(t *testing.T, text string, x1, y1, x2, y2 int) model.WordObservation {
	t.Helper()
	return model.WordObservation{Text: text, BBox: model.BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}}
}

// Page builds an ocrsrc.Page of the given dimensions and words.
func Page(t *testing.T, width, height int, words ...model.WordObservation) ocrsrc.Page {
	t.Helper()
	return ocrsrc.Page{Width: width, Height: height, Words: words}
}

// FakeSource is an in-memory ocrsrc.PageSource over a fixed page list.
type FakeSource struct {
	Pages []ocrsrc.Page
}

func (s FakeSource) Open(ctx context.Context) (ocrsrc.PageIterator, error) {
	return &fakeIterator{pages: s.Pages}, nil
}

type fakeIterator struct {
	pages []ocrsrc.Page
	idx   int
}

func (it *fakeIterator) Next(ctx context.Context) (ocrsrc.Page, bool, error) {
	if it.idx >= len(it.pages) {
		return ocrsrc.Page{}, false, nil
	}
	p := it.pages[it.idx]
	it.idx++
	return p, true, nil
}

func (it *fakeIterator) Close() error { return nil }

// MustOpen opens source and fails the test on error.
func MustOpen(t *testing.T, source ocrsrc.PageSource) ocrsrc.PageIterator {
	t.Helper()
	it, err := source.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return it
}

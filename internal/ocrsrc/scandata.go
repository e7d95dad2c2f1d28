package ocrsrc

import (
	"context"

	"github.com/tidwall/gjson"
)

// JSONScandataSource reads a scandata-style skip list:
//
//	{"skip_pages": [3, 4, 17]}
//
// from a JSON file, the shape the optional scandata collaborator exposes.
type JSONScandataSource struct {
	Path string
}

// SkipPages implements ScandataSource.
func (s JSONScandataSource) SkipPages(ctx context.Context) (map[int]bool, error) {
	data, err := readFileRetrying(ctx, s.Path)
	if err != nil {
		return nil, err
	}

	skip := make(map[int]bool)
	for _, v := range gjson.GetBytes(data, "skip_pages").Array() {
		skip[int(v.Int())] = true
	}
	return skip, nil
}

// NoScandata is a ScandataSource with no skipped pages, used when the
// caller has no scandata collaborator available.
type NoScandata struct{}

func (NoScandata) SkipPages(ctx context.Context) (map[int]bool, error) {
	return nil, nil
}

package mock

import "docdex"

var _ docdex.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of docdex.PageExtractor.
type PageExtractor struct {
	ExtractFn func(html, pageURL string) (*docdex.Extraction, error)
}

func (e *PageExtractor) Extract(html, pageURL string) (*docdex.Extraction, error) {
	return e.ExtractFn(html, pageURL)
}

package mock

import "docdex"

var _ docdex.TextConverter = (*TextConverter)(nil)

// TextConverter is a mock implementation of docdex.TextConverter.
type TextConverter struct {
	ConvertFn func(html string) (string, error)
}

func (c *TextConverter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

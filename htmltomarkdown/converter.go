// Package htmltomarkdown provides a docdex.TextConverter that renders
// document content HTML as markdown-flavored plain text.
package htmltomarkdown

import (
	"strings"

	"docdex"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// Ensure Converter implements docdex.TextConverter at compile time.
var _ docdex.TextConverter = (*Converter)(nil)

// Converter wraps html-to-markdown to produce the stored document body.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms content HTML into retrievable body text. Failures are
// EEXTERNAL: the crawler skips the page and continues.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docdex.Errorf(docdex.EINVALID, "empty HTML input")
	}

	text, err := c.conv.ConvertString(html)
	if err != nil {
		return "", docdex.Errorf(docdex.EEXTERNAL, "text conversion: %v", err)
	}

	return text, nil
}

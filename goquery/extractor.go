// Package goquery provides a CSS-selector implementation of
// docdex.PageExtractor for MDC-style reference pages: a breadcrumb
// hierarchy, an h1#title heading, and pageToc/pageText content regions.
package goquery

import (
	"net/url"
	"strings"

	"docdex"

	"github.com/PuerkitoBio/goquery"
)

// minBreadcrumb is the smallest breadcrumb trail of a real reference page.
// Shallower pages are redirects or index pages and are rejected.
const minBreadcrumb = 3

// Ensure Extractor implements docdex.PageExtractor at compile time.
var _ docdex.PageExtractor = (*Extractor)(nil)

// Extractor extracts document content and outbound links from MDC-style
// reference pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes a fetched page. Outbound links are collected from the
// body region whether or not the page is accepted, so rejected pages still
// feed the crawl.
func (e *Extractor) Extract(html, pageURL string) (*docdex.Extraction, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, docdex.Errorf(docdex.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docdex.Errorf(docdex.EINVALID, "failed to parse HTML: %v", err)
	}

	var crumbs []string
	doc.Find("div.hierarchy ol li a").Each(func(_ int, sel *goquery.Selection) {
		crumbs = append(crumbs, strings.TrimSpace(sel.Text()))
	})

	title := strings.TrimSpace(doc.Find("h1#title").First().Text())
	toc := doc.Find("div#pageToc")
	body := doc.Find("div#pageText")

	result := &docdex.Extraction{
		Links: extractLinks(body, base),
	}

	// The section is the second-to-last breadcrumb entry.
	var section string
	if len(crumbs) >= 2 {
		section = crumbs[len(crumbs)-2]
	}

	moved := doc.Find("a.pageMoved").Length() > 0

	if len(crumbs) < minBreadcrumb || moved ||
		section == "" || title == "" ||
		toc.Children().Length() == 0 || body.Children().Length() == 0 {
		return result, nil
	}

	tocHTML, err := goquery.OuterHtml(toc)
	if err != nil {
		return nil, err
	}
	bodyHTML, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, err
	}

	result.Accepted = true
	result.Section = section
	result.Title = title
	result.ContentHTML = tocHTML + "\n" + bodyHTML

	return result, nil
}

// extractLinks collects the resolved outbound link URLs from the body region.
func extractLinks(body *goquery.Selection, base *url.URL) []string {
	var links []string
	body.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		links = append(links, resolved)
	})
	return links
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink reports whether href uses a scheme that cannot be crawled.
func isNonHTTPLink(href string) bool {
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}

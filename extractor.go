package docdex

// Extraction holds the result of extracting one fetched page.
//
// A rejected page (Accepted false) carries no document fields but still
// lists its outbound links, so the crawl can pass through navigation and
// index pages without ingesting them.
type Extraction struct {
	// Accepted reports whether the page qualifies as a document.
	Accepted bool

	// Section is the page's containing section, taken from its
	// breadcrumb trail.
	Section string

	// Title is the page title.
	Title string

	// ContentHTML is the document body as HTML, with page chrome removed.
	ContentHTML string

	// Links are the absolute outbound link URLs found in the body.
	Links []string
}

// PageExtractor extracts document content and outbound links from a fetched
// page. Implementations encode the acceptance heuristic for one page layout;
// alternative document sources can be substituted without touching the
// crawler's traversal logic.
type PageExtractor interface {
	// Extract processes raw HTML fetched from pageURL. Relative links are
	// resolved against pageURL.
	Extract(html, pageURL string) (*Extraction, error)
}

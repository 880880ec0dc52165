package crawl_test

import (
	"context"
	"testing"
	"time"

	"docdex"
	"docdex/crawl"
	"docdex/mock"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// page describes a scripted crawl target for newSitemapCrawler.
type page struct {
	extraction *docdex.Extraction
	fetchErr   error
}

// newSitemapCrawler builds a Crawler over an in-memory site. Fetch counts
// per URL are recorded in the returned map, saved documents in the slice.
func newSitemapCrawler(t *testing.T, site map[string]page) (*crawl.Crawler, map[string]int, *[]docdex.Document) {
	t.Helper()

	fetched := make(map[string]int)
	var saved []docdex.Document
	var nextID int64

	c := &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetched[url]++
				p, ok := site[url]
				require.True(t, ok, "fetched unknown URL %q", url)
				if p.fetchErr != nil {
					return "", p.fetchErr
				}
				return "<html>" + url + "</html>", nil
			},
		},
		Extractor: &mock.PageExtractor{
			ExtractFn: func(html, pageURL string) (*docdex.Extraction, error) {
				return site[pageURL].extraction, nil
			},
		},
		Converter: &mock.TextConverter{
			ConvertFn: func(html string) (string, error) { return html, nil },
		},
		Codec: &mock.TextCodec{},
		Documents: &mock.DocumentService{
			CreateDocumentFn: func(ctx context.Context, doc *docdex.Document) error {
				nextID++
				doc.ID = nextID
				saved = append(saved, *doc)
				return nil
			},
		},
		Indexer: &mock.DocumentIndexer{
			IndexDocumentFn: func(ctx context.Context, docID int64, section, title string) error {
				return nil
			},
		},
		Logger:      zerolog.Nop(),
		RetryDelays: []time.Duration{},
	}

	return c, fetched, &saved
}

func TestCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("visits reachable pages exactly once", func(t *testing.T) {
		t.Parallel()

		// A links to B, B links to C, C links back to A and out of scope.
		site := map[string]page{
			"https://docs.example.com/ref/a": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "A",
				ContentHTML: "<p>a</p>",
				Links:       []string{"https://docs.example.com/ref/b"},
			}},
			"https://docs.example.com/ref/b": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "B",
				ContentHTML: "<p>b</p>",
				Links:       []string{"https://docs.example.com/ref/c"},
			}},
			"https://docs.example.com/ref/c": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "C",
				ContentHTML: "<p>c</p>",
				Links: []string{
					"https://docs.example.com/ref/a",
					"https://elsewhere.example.com/other",
				},
			}},
		}

		c, fetched, saved := newSitemapCrawler(t, site)
		result, err := c.Crawl(context.Background(), "https://docs.example.com/ref/a")
		require.NoError(t, err)

		assert.Equal(t, 3, result.Visited)
		assert.Equal(t, 3, result.Saved)
		assert.Equal(t, 0, result.Skipped)
		assert.Equal(t, 0, result.Failed)

		assert.Equal(t, 1, fetched["https://docs.example.com/ref/a"])
		assert.Equal(t, 1, fetched["https://docs.example.com/ref/b"])
		assert.Equal(t, 1, fetched["https://docs.example.com/ref/c"])
		assert.Zero(t, fetched["https://elsewhere.example.com/other"])

		require.Len(t, *saved, 3)
		assert.Equal(t, "A", (*saved)[0].Title)
		assert.Equal(t, "https://docs.example.com/ref/a", (*saved)[0].URI)
	})

	t.Run("rejected pages contribute links but are not saved", func(t *testing.T) {
		t.Parallel()

		site := map[string]page{
			"https://docs.example.com/ref/index": {extraction: &docdex.Extraction{
				Accepted: false,
				Links:    []string{"https://docs.example.com/ref/index/page"},
			}},
			"https://docs.example.com/ref/index/page": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "Page",
				ContentHTML: "<p>p</p>",
			}},
		}

		c, _, saved := newSitemapCrawler(t, site)
		result, err := c.Crawl(context.Background(), "https://docs.example.com/ref/index")
		require.NoError(t, err)

		assert.Equal(t, 2, result.Visited)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, *saved, 1)
		assert.Equal(t, "Page", (*saved)[0].Title)
	})

	t.Run("fetch failure is counted and crawl continues", func(t *testing.T) {
		t.Parallel()

		site := map[string]page{
			"https://docs.example.com/ref/a": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "A",
				ContentHTML: "<p>a</p>",
				Links: []string{
					"https://docs.example.com/ref/broken",
					"https://docs.example.com/ref/b",
				},
			}},
			"https://docs.example.com/ref/broken": {
				fetchErr: docdex.Errorf(docdex.EEXTERNAL, "boom"),
			},
			"https://docs.example.com/ref/b": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "B",
				ContentHTML: "<p>b</p>",
			}},
		}

		c, fetched, saved := newSitemapCrawler(t, site)
		result, err := c.Crawl(context.Background(), "https://docs.example.com/ref/a")
		require.NoError(t, err)

		assert.Equal(t, 3, result.Visited)
		assert.Equal(t, 2, result.Saved)
		assert.Equal(t, 1, result.Failed)
		assert.Len(t, *saved, 2)

		// One initial attempt, no backoff retries were configured.
		assert.Equal(t, 1, fetched["https://docs.example.com/ref/broken"])
	})

	t.Run("duplicate document is skipped", func(t *testing.T) {
		t.Parallel()

		c, _, _ := newSitemapCrawler(t, map[string]page{
			"https://docs.example.com/ref/a": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "A",
				ContentHTML: "<p>a</p>",
			}},
		})
		c.Documents = &mock.DocumentService{
			CreateDocumentFn: func(ctx context.Context, doc *docdex.Document) error {
				return docdex.Errorf(docdex.ECONFLICT, "document already exists")
			},
		}

		result, err := c.Crawl(context.Background(), "https://docs.example.com/ref/a")
		require.NoError(t, err)

		assert.Equal(t, 1, result.Visited)
		assert.Equal(t, 0, result.Saved)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("store failure aborts the crawl", func(t *testing.T) {
		t.Parallel()

		c, _, _ := newSitemapCrawler(t, map[string]page{
			"https://docs.example.com/ref/a": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "A",
				ContentHTML: "<p>a</p>",
				Links:       []string{"https://docs.example.com/ref/b"},
			}},
			"https://docs.example.com/ref/b": {extraction: &docdex.Extraction{Accepted: false}},
		})
		c.Documents = &mock.DocumentService{
			CreateDocumentFn: func(ctx context.Context, doc *docdex.Document) error {
				return docdex.Errorf(docdex.EINTERNAL, "disk full")
			},
		}

		_, err := c.Crawl(context.Background(), "https://docs.example.com/ref/a")
		require.Error(t, err)
		assert.Equal(t, docdex.EINTERNAL, docdex.ErrorCode(err))
	})

	t.Run("max pages bounds the traversal", func(t *testing.T) {
		t.Parallel()

		site := map[string]page{
			"https://docs.example.com/ref/a": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "A",
				ContentHTML: "<p>a</p>",
				Links: []string{
					"https://docs.example.com/ref/b",
					"https://docs.example.com/ref/c",
				},
			}},
			"https://docs.example.com/ref/b": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "B",
				ContentHTML: "<p>b</p>",
			}},
			"https://docs.example.com/ref/c": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "C",
				ContentHTML: "<p>c</p>",
			}},
		}

		c, fetched, _ := newSitemapCrawler(t, site)
		c.MaxPages = 2

		result, err := c.Crawl(context.Background(), "https://docs.example.com/ref/a")
		require.NoError(t, err)

		assert.Equal(t, 2, result.Visited)
		assert.Zero(t, fetched["https://docs.example.com/ref/c"])
	})

	t.Run("seed fragment is stripped before crawling", func(t *testing.T) {
		t.Parallel()

		c, fetched, _ := newSitemapCrawler(t, map[string]page{
			"https://docs.example.com/ref/a": {extraction: &docdex.Extraction{
				Accepted:    true,
				Section:     "Reference",
				Title:       "A",
				ContentHTML: "<p>a</p>",
			}},
		})

		result, err := c.Crawl(context.Background(), "https://docs.example.com/ref/a#section")
		require.NoError(t, err)

		assert.Equal(t, 1, result.Visited)
		assert.Equal(t, 1, fetched["https://docs.example.com/ref/a"])
	})

	t.Run("empty seed is invalid", func(t *testing.T) {
		t.Parallel()

		c, _, _ := newSitemapCrawler(t, nil)
		_, err := c.Crawl(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, docdex.EINVALID, docdex.ErrorCode(err))
	})

	t.Run("canceled context stops the crawl", func(t *testing.T) {
		t.Parallel()

		c, _, _ := newSitemapCrawler(t, map[string]page{
			"https://docs.example.com/ref/a": {extraction: &docdex.Extraction{Accepted: false}},
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Crawl(ctx, "https://docs.example.com/ref/a")
		require.ErrorIs(t, err, context.Canceled)
	})
}

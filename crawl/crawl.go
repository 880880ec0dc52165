// Package crawl provides scoped breadth-first crawling of documentation
// pages: traversal, fetching, extraction, storage and indexing of each
// accepted page.
package crawl

import (
	"context"
	"net/url"
	"strings"
	"time"

	"docdex"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// defaultMaxPages limits the number of pages fetched to prevent runaway crawls.
	defaultMaxPages = 10000
)

// Crawler performs a sequential breadth-first traversal of the pages
// reachable from a seed URL, bounded by the seed's URL prefix. Accepted
// pages are converted, compressed, stored and indexed; rejected pages still
// contribute their outbound links to the worklist.
type Crawler struct {
	Fetcher   docdex.Fetcher
	Extractor docdex.PageExtractor
	Converter docdex.TextConverter
	Codec     docdex.TextCodec
	Documents docdex.DocumentService
	Indexer   docdex.DocumentIndexer
	Limiter   *DomainLimiter
	Logger    zerolog.Logger

	// MaxPages bounds the number of fetched pages. Defaults to
	// defaultMaxPages when <= 0.
	MaxPages int

	// RetryDelays overrides the fetch retry backoff. Defaults to
	// DefaultRetryDelays when nil.
	RetryDelays []time.Duration
}

// Result holds the outcome of a crawl operation.
type Result struct {
	// Visited counts in-scope pages fetched (or attempted).
	Visited int
	// Saved counts pages stored and indexed as documents.
	Saved int
	// Skipped counts pages rejected by the extractor or already stored.
	Skipped int
	// Failed counts pages lost to fetch, extraction or conversion errors.
	Failed int
}

// Crawl traverses all pages reachable from seedURL within the seed's URL
// prefix. Failures on individual pages are logged and skipped; the crawl
// continues until the worklist empties or MaxPages is reached.
func (c *Crawler) Crawl(ctx context.Context, seedURL string) (*Result, error) {
	seed := stripFragment(seedURL)
	if _, err := url.Parse(seed); err != nil || seed == "" {
		return nil, docdex.Errorf(docdex.EINVALID, "invalid seed URL %q", seedURL)
	}

	logger := c.Logger.With().
		Str("run_id", uuid.New().String()).
		Str("seed", seed).
		Logger()

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(seed)

	var result Result
	for result.Visited < maxPages {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			return &result, ctx.Err()
		}

		// Out-of-scope links are dropped unvisited. Scope is the seed's
		// URL prefix, so the seed itself always qualifies.
		if !strings.HasPrefix(link, seed) {
			continue
		}
		result.Visited++

		if c.Limiter != nil {
			if u, err := url.Parse(link); err == nil {
				if err := c.Limiter.Wait(ctx, u.Host); err != nil {
					return &result, err
				}
			}
		}

		logger.Info().Str("url", link).Msg("fetching")

		retryLog := func(format string, args ...any) {
			logger.Debug().Msgf(format, args...)
		}
		html, err := FetchWithRetry(ctx, link, c.Fetcher.Fetch, retryLog, delays)
		if err != nil {
			result.Failed++
			logger.Warn().Err(err).Str("url", link).Msg("fetch failed, skipping")
			continue
		}

		extracted, err := c.Extractor.Extract(html, link)
		if err != nil {
			result.Failed++
			logger.Warn().Err(err).Str("url", link).Msg("extraction failed, skipping")
			continue
		}

		// Rejected pages still feed the worklist so the traversal can
		// pass through navigation and index pages.
		for _, l := range extracted.Links {
			frontier.Push(l)
		}

		if !extracted.Accepted {
			result.Skipped++
			logger.Debug().Str("url", link).Msg("page rejected")
			continue
		}

		if err := c.saveDocument(ctx, logger, link, extracted, &result); err != nil {
			return &result, err
		}
	}

	logger.Info().
		Int("visited", result.Visited).
		Int("saved", result.Saved).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("crawl finished")

	return &result, nil
}

// saveDocument converts, compresses, stores and indexes one accepted page.
// Only a store or index failure that is not a benign duplicate aborts the
// crawl; conversion failures skip the page.
func (c *Crawler) saveDocument(ctx context.Context, logger zerolog.Logger, link string, extracted *docdex.Extraction, result *Result) error {
	text, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.Failed++
		logger.Warn().Err(err).Str("url", link).Msg("text conversion failed, skipping")
		return nil
	}

	blob, err := c.Codec.Compress(text)
	if err != nil {
		return err
	}

	doc := &docdex.Document{
		Section: extracted.Section,
		Title:   extracted.Title,
		Text:    blob,
		URI:     link,
	}
	if err := c.Documents.CreateDocument(ctx, doc); err != nil {
		if docdex.ErrorCode(err) == docdex.ECONFLICT {
			result.Skipped++
			logger.Debug().Str("url", link).Msg("already ingested")
			return nil
		}
		return err
	}

	if err := c.Indexer.IndexDocument(ctx, doc.ID, doc.Section, doc.Title); err != nil {
		return err
	}

	result.Saved++
	logger.Info().
		Str("section", doc.Section).
		Str("title", doc.Title).
		Msg("imported")

	return nil
}

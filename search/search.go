// Package search evaluates multi-term AND queries against the word index
// and disambiguates the outcome.
package search

import (
	"context"
	"strings"

	"docdex"
)

// Kind classifies a query outcome. NoMatch and Ambiguous are first-class
// results, not errors.
type Kind int

// Query outcomes.
const (
	NoMatch Kind = iota
	Unique
	Ambiguous
)

// Result holds the outcome of a search.
type Result struct {
	Kind Kind

	// Text is the decompressed document body. Set only for Unique.
	Text string

	// Candidates lists the matching documents in display-name order.
	// Set only for Ambiguous.
	Candidates []docdex.DocumentHeader
}

// Engine answers boolean AND queries over exact lowercase term matches.
type Engine struct {
	Documents docdex.DocumentService
	Words     docdex.WordStore
	Codec     docdex.TextCodec
}

// Search intersects the document sets of all terms left to right. Empty
// terms are ignored; if no term remains the query is EINVALID. An empty
// intersection short-circuits to NoMatch.
func (e *Engine) Search(ctx context.Context, terms []string) (*Result, error) {
	var matched []int64
	first := true

	for _, term := range terms {
		term = strings.TrimSpace(strings.ToLower(term))
		if term == "" {
			continue
		}

		ids, err := e.Words.DocumentIDsForTerm(ctx, term)
		if err != nil {
			return nil, err
		}

		if first {
			matched = ids
			first = false
		} else {
			matched = intersect(matched, ids)
		}

		if len(matched) == 0 {
			return &Result{Kind: NoMatch}, nil
		}
	}

	if first {
		return nil, docdex.Errorf(docdex.EINVALID, "at least one search term required")
	}

	if len(matched) == 1 {
		doc, err := e.Documents.FindDocumentByID(ctx, matched[0])
		if err != nil {
			return nil, err
		}
		text, err := e.Codec.Decompress(doc.Text)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: Unique, Text: text}, nil
	}

	candidates, err := e.Documents.FindHeadersByIDs(ctx, matched)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: Ambiguous, Candidates: candidates}, nil
}

// intersect returns the elements common to two ascending-sorted ID slices,
// preserving order.
func intersect(a, b []int64) []int64 {
	var out []int64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

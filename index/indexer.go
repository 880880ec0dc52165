// Package index builds the word-level inverted index over document
// sections and titles.
package index

import (
	"context"

	"docdex"
)

// Compile-time interface verification.
var _ docdex.DocumentIndexer = (*Indexer)(nil)

// Indexer records word associations for documents. Word IDs are cached in
// memory for the lifetime of the indexing run, so each term hits the store
// at most once. Not safe for concurrent callers: intended for
// single-threaded batch use.
type Indexer struct {
	words docdex.WordStore
	cache map[string]int64
}

// NewIndexer creates a new Indexer over the given word store.
func NewIndexer(words docdex.WordStore) *Indexer {
	return &Indexer{
		words: words,
		cache: make(map[string]int64),
	}
}

// EnsureWord returns the ID for a term, checking the in-memory cache, then
// the store, and inserting the word only when it has never been seen.
func (ix *Indexer) EnsureWord(ctx context.Context, term string) (int64, error) {
	if id, ok := ix.cache[term]; ok {
		return id, nil
	}

	id, err := ix.words.FindWordID(ctx, term)
	if err == nil {
		ix.cache[term] = id
		return id, nil
	}
	if docdex.ErrorCode(err) != docdex.ENOTFOUND {
		return 0, err
	}

	id, err = ix.words.CreateWord(ctx, term)
	if err != nil {
		return 0, err
	}
	ix.cache[term] = id
	return id, nil
}

// IndexDocument tokenizes the document's section and title and records an
// association for every resulting term.
func (ix *Indexer) IndexDocument(ctx context.Context, docID int64, section, title string) error {
	for _, tok := range docdex.PathTokens(section, title) {
		wordID, err := ix.EnsureWord(ctx, tok.Term)
		if err != nil {
			return err
		}
		if err := ix.words.CreateAssociation(ctx, wordID, docID, tok.IsTitle); err != nil {
			return err
		}
	}
	return nil
}

// Rebuild resets the word index and re-indexes every stored document,
// returning the number of documents indexed. Documents themselves are
// untouched.
func (ix *Indexer) Rebuild(ctx context.Context, docs docdex.DocumentService) (int, error) {
	if err := ix.words.ResetIndex(ctx); err != nil {
		return 0, err
	}
	// Word IDs from the previous table generation are stale.
	ix.cache = make(map[string]int64)

	headers, err := docs.FindDocumentHeaders(ctx)
	if err != nil {
		return 0, err
	}

	for i, h := range headers {
		if err := ix.IndexDocument(ctx, h.ID, h.Section, h.Title); err != nil {
			return i, err
		}
	}
	return len(headers), nil
}

package docdex

import "context"

// WordStore persists words and their document associations. A word row is
// never updated; associations are append-only and carry no uniqueness
// constraint (multiplicity is irrelevant to query semantics).
type WordStore interface {
	// ResetIndex drops and recreates the word and association tables.
	// Stored documents are untouched.
	ResetIndex(ctx context.Context) error

	// CreateWord inserts a new word and returns its ID.
	// Returns ECONFLICT if the word already exists.
	CreateWord(ctx context.Context, term string) (int64, error)

	// FindWordID returns the ID of an existing word.
	// Returns ENOTFOUND if the word has never been indexed.
	FindWordID(ctx context.Context, term string) (int64, error)

	// CreateAssociation records that a word appears in a document's
	// title (isTitle true) or section path (isTitle false).
	CreateAssociation(ctx context.Context, wordID, docID int64, isTitle bool) error

	// DocumentIDsForTerm returns the distinct IDs of documents associated
	// with the term, ascending. The term is lowercased before lookup; an
	// unknown term yields an empty set, not an error.
	DocumentIDsForTerm(ctx context.Context, term string) ([]int64, error)
}

// DocumentIndexer records word associations for a document's section and
// title. Implementations are intended for single-threaded batch use.
type DocumentIndexer interface {
	IndexDocument(ctx context.Context, docID int64, section, title string) error
}

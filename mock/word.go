package mock

import (
	"context"

	"docdex"
)

var _ docdex.WordStore = (*WordStore)(nil)

// WordStore is a mock implementation of docdex.WordStore.
type WordStore struct {
	ResetIndexFn         func(ctx context.Context) error
	CreateWordFn         func(ctx context.Context, term string) (int64, error)
	FindWordIDFn         func(ctx context.Context, term string) (int64, error)
	CreateAssociationFn  func(ctx context.Context, wordID, docID int64, isTitle bool) error
	DocumentIDsForTermFn func(ctx context.Context, term string) ([]int64, error)
}

func (s *WordStore) ResetIndex(ctx context.Context) error {
	return s.ResetIndexFn(ctx)
}

func (s *WordStore) CreateWord(ctx context.Context, term string) (int64, error) {
	return s.CreateWordFn(ctx, term)
}

func (s *WordStore) FindWordID(ctx context.Context, term string) (int64, error) {
	return s.FindWordIDFn(ctx, term)
}

func (s *WordStore) CreateAssociation(ctx context.Context, wordID, docID int64, isTitle bool) error {
	return s.CreateAssociationFn(ctx, wordID, docID, isTitle)
}

func (s *WordStore) DocumentIDsForTerm(ctx context.Context, term string) ([]int64, error) {
	return s.DocumentIDsForTermFn(ctx, term)
}

var _ docdex.DocumentIndexer = (*DocumentIndexer)(nil)

// DocumentIndexer is a mock implementation of docdex.DocumentIndexer.
type DocumentIndexer struct {
	IndexDocumentFn func(ctx context.Context, docID int64, section, title string) error
}

func (ix *DocumentIndexer) IndexDocument(ctx context.Context, docID int64, section, title string) error {
	return ix.IndexDocumentFn(ctx, docID, section, title)
}

package mock

import (
	"context"

	"docdex"
)

var _ docdex.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docdex.DocumentService.
type DocumentService struct {
	CreateDocumentFn      func(ctx context.Context, doc *docdex.Document) error
	FindDocumentByIDFn    func(ctx context.Context, id int64) (*docdex.Document, error)
	FindDocumentHeadersFn func(ctx context.Context) ([]docdex.DocumentHeader, error)
	FindHeadersByIDsFn    func(ctx context.Context, ids []int64) ([]docdex.DocumentHeader, error)
	ResetFn               func(ctx context.Context) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *docdex.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id int64) (*docdex.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocumentHeaders(ctx context.Context) ([]docdex.DocumentHeader, error) {
	return s.FindDocumentHeadersFn(ctx)
}

func (s *DocumentService) FindHeadersByIDs(ctx context.Context, ids []int64) ([]docdex.DocumentHeader, error) {
	return s.FindHeadersByIDsFn(ctx, ids)
}

func (s *DocumentService) Reset(ctx context.Context) error {
	return s.ResetFn(ctx)
}

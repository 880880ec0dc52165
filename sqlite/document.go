package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"docdex"

	"github.com/cespare/xxhash/v2"
)

// Compile-time interface verification.
var _ docdex.DocumentService = (*DocumentService)(nil)

// DocumentService implements docdex.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashText computes xxHash of the stored text blob and returns a hex string.
func hashText(text []byte) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64(text))
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document and assigns its store-generated ID.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *docdex.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ContentHash = hashText(doc.Text)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO docs (section, title, text, content_hash, uri)
		VALUES (?, ?, ?, ?, ?)
	`, doc.Section, doc.Title, doc.Text, doc.ContentHash, doc.URI)
	if err != nil {
		return conflictError(err, "document %q or URI %q already exists", doc.Section+"."+doc.Title, doc.URI)
	}

	doc.ID, err = result.LastInsertId()
	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id int64) (*docdex.Document, error) {
	var doc docdex.Document

	err := s.db.QueryRowContext(ctx, `
		SELECT id, section, title, text, content_hash, uri
		FROM docs
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Section, &doc.Title, &doc.Text, &doc.ContentHash, &doc.URI)

	if err == sql.ErrNoRows {
		return nil, docdex.Errorf(docdex.ENOTFOUND, "document %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocumentHeaders retrieves the headers of all stored documents.
func (s *DocumentService) FindDocumentHeaders(ctx context.Context) ([]docdex.DocumentHeader, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, section, title FROM docs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHeaders(rows)
}

// FindHeadersByIDs retrieves the headers of the given documents, ordered by
// display name.
func (s *DocumentService) FindHeadersByIDs(ctx context.Context, ids []int64) ([]docdex.DocumentHeader, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, section, title
		FROM docs
		WHERE id IN (`+placeholders+`)
		ORDER BY section || '.' || title
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHeaders(rows)
}

// Reset drops and recreates all tables, documents and index alike.
func (s *DocumentService) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		DROP TABLE IF EXISTS doc_words;
		DROP TABLE IF EXISTS words;
		DROP TABLE IF EXISTS docs;
	`)
	if err != nil {
		return err
	}
	return s.db.createSchema()
}

func scanHeaders(rows *sql.Rows) ([]docdex.DocumentHeader, error) {
	var headers []docdex.DocumentHeader
	for rows.Next() {
		var h docdex.DocumentHeader
		if err := rows.Scan(&h.ID, &h.Section, &h.Title); err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, rows.Err()
}

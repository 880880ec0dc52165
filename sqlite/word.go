package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"docdex"
)

// Compile-time interface verification.
var _ docdex.WordStore = (*WordStore)(nil)

// WordStore implements docdex.WordStore using SQLite.
type WordStore struct {
	db *DB
}

// NewWordStore creates a new WordStore.
func NewWordStore(db *DB) *WordStore {
	return &WordStore{db: db}
}

// ResetIndex drops and recreates the word and association tables. Stored
// documents are untouched.
func (s *WordStore) ResetIndex(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		DROP TABLE IF EXISTS doc_words;
		DROP TABLE IF EXISTS words;
	`)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, indexSchema)
	return err
}

// CreateWord inserts a new word and returns its store-generated ID.
func (s *WordStore) CreateWord(ctx context.Context, term string) (int64, error) {
	result, err := s.db.ExecContext(ctx, "INSERT INTO words (word) VALUES (?)", term)
	if err != nil {
		return 0, conflictError(err, "word %q already exists", term)
	}
	return result.LastInsertId()
}

// FindWordID returns the ID of an existing word.
func (s *WordStore) FindWordID(ctx context.Context, term string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM words WHERE word = ?", term).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, docdex.Errorf(docdex.ENOTFOUND, "word %q not found", term)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateAssociation records a (word, document, class) membership fact.
// Append-only; no uniqueness is enforced.
func (s *WordStore) CreateAssociation(ctx context.Context, wordID, docID int64, isTitle bool) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO doc_words (word_id, doc_id, is_title)
		VALUES (?, ?, ?)
	`, wordID, docID, isTitle)
	return err
}

// DocumentIDsForTerm returns the distinct IDs of documents associated with
// the term, ascending. An unknown term yields an empty set.
func (s *WordStore) DocumentIDsForTerm(ctx context.Context, term string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT dw.doc_id
		FROM words w
		INNER JOIN doc_words dw ON dw.word_id = w.id
		WHERE w.word = ?
		ORDER BY dw.doc_id
	`, strings.ToLower(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

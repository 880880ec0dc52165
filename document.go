package docdex

import "context"

// Document represents one crawled reference page. Text holds the page body
// after HTML-to-text conversion and compression; it is stored for retrieval
// but never indexed.
type Document struct {
	ID          int64
	Section     string
	Title       string
	Text        []byte // compressed body, see TextCodec
	ContentHash string
	URI         string
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Section == "" {
		return Errorf(EINVALID, "document section required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.URI == "" {
		return Errorf(EINVALID, "document URI required")
	}
	return nil
}

// DocumentHeader identifies a document without its body. It is the unit of
// both index rebuilds and disambiguation listings.
type DocumentHeader struct {
	ID      int64
	Section string
	Title   string
}

// Name returns the document's display name, "section.title".
func (h DocumentHeader) Name() string {
	return h.Section + "." + h.Title
}

// DocumentService represents a service for managing stored documents.
type DocumentService interface {
	// CreateDocument creates a new document and assigns its ID.
	// Returns ECONFLICT if a document with the same (section, title)
	// pair or the same URI already exists.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id int64) (*Document, error)

	// FindDocumentHeaders retrieves the headers of all stored documents,
	// in no particular order. Used for full index rebuilds.
	FindDocumentHeaders(ctx context.Context) ([]DocumentHeader, error)

	// FindHeadersByIDs retrieves the headers of the given documents,
	// ordered by display name. Used for disambiguation listings.
	FindHeadersByIDs(ctx context.Context, ids []int64) ([]DocumentHeader, error)

	// Reset drops and recreates the document store, including the word
	// index tables that reference it. Destructive; used only for a full
	// rebuild.
	Reset(ctx context.Context) error
}

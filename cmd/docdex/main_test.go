package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"docdex"
	"docdex/deflate"
	"docdex/index"
	"docdex/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main bound to a database under t.TempDir().
func newTestMain(t *testing.T) *Main {
	t.Helper()
	return &Main{DBPath: filepath.Join(t.TempDir(), "docdex.db")}
}

// run executes one CLI invocation, returning stdout, stderr and the error.
func run(t *testing.T, m *Main, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

// seedDocuments stores and indexes documents directly through the sqlite
// services, the same path the crawler takes.
func seedDocuments(t *testing.T, m *Main, docs []*docdex.Document) {
	t.Helper()

	db := sqlite.NewDB(m.DBPath)
	require.NoError(t, db.Open())
	defer db.Close()

	ctx := context.Background()
	documents := sqlite.NewDocumentService(db)
	indexer := index.NewIndexer(sqlite.NewWordStore(db))
	codec := deflate.NewCodec()

	for _, doc := range docs {
		blob, err := codec.Compress(string(doc.Text))
		require.NoError(t, err)
		doc.Text = blob
		require.NoError(t, documents.CreateDocument(ctx, doc))
		require.NoError(t, indexer.IndexDocument(ctx, doc.ID, doc.Section, doc.Title))
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no command prints help and errors", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout, _, err := run(t, m)
		require.Error(t, err)
		assert.Contains(t, stdout, "Usage:")
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout, _, err := run(t, m, "help")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Usage:")
	})

	t.Run("reset-store creates a fresh database", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout, _, err := run(t, m, "reset-store")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Store reset.")
	})

	t.Run("query against an empty store finds nothing", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		_, _, err := run(t, m, "reset-store")
		require.NoError(t, err)

		stdout, _, err := run(t, m, "query", "array")
		require.Error(t, err)

		var ee *ExitError
		require.True(t, errors.As(err, &ee))
		assert.Equal(t, exitNoMatch, ee.Code)
		assert.Contains(t, stdout, "No documents matched the given terms.")
	})
}

func TestMain_Run_Query(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *Main {
		m := newTestMain(t)
		_, _, err := run(t, m, "reset-store")
		require.NoError(t, err)

		seedDocuments(t, m, []*docdex.Document{
			{
				Section: "Core JavaScript Reference",
				Title:   "Array",
				Text:    []byte("# Array\n\nThe Array object."),
				URI:     "https://docs.example.com/ref/array",
			},
			{
				Section: "Core JavaScript Reference",
				Title:   "Array.length",
				Text:    []byte("# Array.length\n\nNumber of elements."),
				URI:     "https://docs.example.com/ref/array.length",
			},
			{
				Section: "Core JavaScript Reference",
				Title:   "String",
				Text:    []byte("# String\n\nThe String object."),
				URI:     "https://docs.example.com/ref/string",
			},
		})
		return m
	}

	t.Run("unique match prints the document text", func(t *testing.T) {
		t.Parallel()

		m := seed(t)
		stdout, _, err := run(t, m, "query", "string")
		require.NoError(t, err)
		assert.Contains(t, stdout, "The String object.")
	})

	t.Run("intersection narrows to a unique match", func(t *testing.T) {
		t.Parallel()

		// "reference" matches every document; "array.length" pins it down.
		m := seed(t)
		stdout, _, err := run(t, m, "query", "reference", "array.length")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Number of elements.")
	})

	t.Run("ambiguous match lists candidates and exits 2", func(t *testing.T) {
		t.Parallel()

		m := seed(t)
		stdout, _, err := run(t, m, "query", "reference")
		require.Error(t, err)

		var ee *ExitError
		require.True(t, errors.As(err, &ee))
		assert.Equal(t, exitAmbiguous, ee.Code)
		assert.Contains(t, stdout, "Please be more specific.")
		assert.Contains(t, stdout, "Core JavaScript Reference.Array\n")
		assert.Contains(t, stdout, "Core JavaScript Reference.Array.length\n")
		assert.Contains(t, stdout, "Core JavaScript Reference.String\n")
	})

	t.Run("query terms are case-insensitive", func(t *testing.T) {
		t.Parallel()

		m := seed(t)
		stdout, _, err := run(t, m, "query", "STRING")
		require.NoError(t, err)
		assert.Contains(t, stdout, "The String object.")
	})
}

func TestMain_Run_RebuildIndex(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	_, _, err := run(t, m, "reset-store")
	require.NoError(t, err)

	seedDocuments(t, m, []*docdex.Document{
		{
			Section: "Core JavaScript Reference",
			Title:   "Boolean",
			Text:    []byte("# Boolean"),
			URI:     "https://docs.example.com/ref/boolean",
		},
	})

	stdout, _, err := run(t, m, "rebuild-index")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Indexed 1 documents.")

	stdout, _, err = run(t, m, "query", "boolean")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# Boolean")
}

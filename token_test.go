package docdex_test

import (
	"testing"

	"docdex"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "splits on underscores and keeps version numbers whole",
			input: "Core_JavaScript_1.5_Reference",
			want:  []string{"core", "javascript", "1.5", "reference"},
		},
		{
			name:  "a run of dots is a delimiter",
			input: "Object...prototype",
			want:  []string{"object", "prototype"},
		},
		{
			name:  "a single dot is kept",
			input: "Array.length",
			want:  []string{"array.length"},
		},
		{
			name:  "hyphens are kept",
			input: "non-standard",
			want:  []string{"non-standard"},
		},
		{
			name:  "lowercases and drops punctuation",
			input: "The Array (object)!",
			want:  []string{"the", "array", "object"},
		},
		{
			name:  "empty input yields no tokens",
			input: "",
			want:  nil,
		},
		{
			name:  "delimiters only yields no tokens",
			input: " \t,;/ ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docdex.Tokenize(tt.input))
		})
	}
}

func TestPathTokens_ClassesAndComposites(t *testing.T) {
	t.Parallel()

	got := docdex.PathTokens("Core_JavaScript_1.5_Reference", "Array")

	want := []docdex.PathToken{
		{Term: "core", IsTitle: false},
		{Term: "javascript", IsTitle: false},
		{Term: "1.5", IsTitle: false},
		{Term: "reference", IsTitle: false},
		{Term: "array", IsTitle: true},
		{Term: "core_javascript_1.5_reference.array", IsTitle: true},
		{Term: "core_javascript_1.5_reference", IsTitle: true},
		{Term: "array", IsTitle: true},
	}
	assert.Equal(t, want, got)
}

func TestPathTokens_CompositeIsNotResplit(t *testing.T) {
	t.Parallel()

	got := docdex.PathTokens("Reference", "Object")

	// The join dot must not merge section and title into split tokens;
	// the merged form appears only as the whole-path composite.
	var terms []string
	for _, tok := range got {
		terms = append(terms, tok.Term)
	}
	assert.Contains(t, terms, "reference")
	assert.Contains(t, terms, "object")
	assert.Contains(t, terms, "reference.object")
}

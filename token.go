package docdex

import (
	"regexp"
	"strings"
)

// Tokenization splits on any run of characters outside [A-Za-z0-9.-], with
// one exception: a run of two or more consecutive dots is always a
// delimiter. "1.5" survives as a single token; "Object...prototype" splits.
var (
	dotRunRe    = regexp.MustCompile(`\.{2,}`)
	delimiterRe = regexp.MustCompile(`[^a-zA-Z0-9.-]+`)
)

// Tokenize splits free text into normalized word tokens. Tokens are
// lowercased and trimmed; empty tokens are discarded.
func Tokenize(s string) []string {
	s = dotRunRe.ReplaceAllString(s, " ")

	var tokens []string
	for _, tok := range delimiterRe.Split(s, -1) {
		tok = strings.TrimSpace(strings.ToLower(tok))
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// PathToken is one indexable term for a document, tagged with the class of
// association it produces.
type PathToken struct {
	Term    string
	IsTitle bool
}

// PathTokens produces the terms indexed for a document: the split tokens of
// its section (section-class) and title (title-class), plus three synthetic
// title-class composites: the lowercased "section.title" path, the bare
// section, and the bare title. The composites are added whole rather than
// re-split, so the join dot never merges adjacent section and title words.
// Only the section/title path is indexed; body text is not.
func PathTokens(section, title string) []PathToken {
	var tokens []PathToken
	for _, t := range Tokenize(section) {
		tokens = append(tokens, PathToken{Term: t, IsTitle: false})
	}
	for _, t := range Tokenize(title) {
		tokens = append(tokens, PathToken{Term: t, IsTitle: true})
	}
	for _, c := range []string{section + "." + title, section, title} {
		c = strings.TrimSpace(strings.ToLower(c))
		if c == "" || c == "." {
			continue
		}
		tokens = append(tokens, PathToken{Term: c, IsTitle: true})
	}
	return tokens
}

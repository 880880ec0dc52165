package docdex

// TextConverter converts a document's content HTML into the plain text that
// is stored and returned to the user. The output is retrievable body text
// only; it is never indexed.
type TextConverter interface {
	Convert(html string) (string, error)
}

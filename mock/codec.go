package mock

import "docdex"

var _ docdex.TextCodec = (*TextCodec)(nil)

// TextCodec is a mock implementation of docdex.TextCodec. The zero value
// passes text through uncompressed.
type TextCodec struct {
	CompressFn   func(text string) ([]byte, error)
	DecompressFn func(data []byte) (string, error)
}

func (c *TextCodec) Compress(text string) ([]byte, error) {
	if c.CompressFn == nil {
		return []byte(text), nil
	}
	return c.CompressFn(text)
}

func (c *TextCodec) Decompress(data []byte) (string, error) {
	if c.DecompressFn == nil {
		return string(data), nil
	}
	return c.DecompressFn(data)
}

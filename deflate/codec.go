// Package deflate provides a DEFLATE implementation of docdex.TextCodec
// for the compressed document body blobs.
package deflate

import (
	"bytes"
	"io"

	"docdex"

	"github.com/klauspost/compress/flate"
)

// Ensure Codec implements docdex.TextCodec at compile time.
var _ docdex.TextCodec = (*Codec)(nil)

// Codec compresses and decompresses document body text with raw DEFLATE.
type Codec struct {
	level int
}

// Option configures a Codec.
type Option func(*Codec)

// WithLevel sets the compression level (flate.BestSpeed through
// flate.BestCompression). Defaults to flate.DefaultCompression.
func WithLevel(level int) Option {
	return func(c *Codec) {
		c.level = level
	}
}

// NewCodec creates a new Codec.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{level: flate.DefaultCompression}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compress deflates text into a storable blob.
func (c *Codec) Compress(text string) ([]byte, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write([]byte(text)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress is the exact inverse of Compress.
func (c *Codec) Decompress(data []byte) (string, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	text, err := io.ReadAll(r)
	if err != nil {
		return "", docdex.Errorf(docdex.EINVALID, "corrupt compressed text: %v", err)
	}

	return string(text), nil
}

package docdex

// TextCodec compresses document body text for storage and restores it at
// query time. Decompress is the exact inverse of Compress.
type TextCodec interface {
	Compress(text string) ([]byte, error)
	Decompress(data []byte) (string, error)
}

package sparsebitmap

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// WriteTo serializes the bitmap as its integer buffer's byte stream:
// a 32-bit big-endian length prefix followed by that many big-endian
// 32-bit pair elements. sizeinwords is not persisted; it is
// reconstructed on load from the gaps.
func (b *Bitmap) WriteTo(w io.Writer) (int64, error) {
	return b.buffer.WriteTo(w)
}

// ReadFrom replaces the bitmap's contents with the inverse of WriteTo,
// reconstructing sizeinwords by summing buffer[2k]+1 over all pairs.
func (b *Bitmap) ReadFrom(r io.Reader) (int64, error) {
	buf := NewInt32Buffer()
	n, err := buf.ReadFrom(r)
	if err != nil {
		return n, err
	}
	if buf.Len()%2 != 0 {
		return n, errors.Wrap(ErrTruncated, "odd number of elements in buffer")
	}

	var sizeinwords int32
	for i := 0; i < buf.Len(); i += 2 {
		sizeinwords += buf.At(i) + 1
	}

	b.buffer = buf
	b.sizeinwords = sizeinwords
	return n, nil
}

// Serialize returns the bitmap's byte-stream encoding.
func (b *Bitmap) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize is the inverse of Serialize.
func Deserialize(data []byte) (*Bitmap, error) {
	b := New()
	if _, err := b.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return b, nil
}

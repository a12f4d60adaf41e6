package sparsebitmap

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// defaultBufferCapacity is the initial backing-array capacity for a fresh
// Int32Buffer.
const defaultBufferCapacity = 32

// Int32Buffer is a growable, append-only sequence of 32-bit signed
// integers. It backs Bitmap's encoded (gap, word) pairs, but is otherwise
// a plain container with no bitmap-specific knowledge.
type Int32Buffer struct {
	data []int32
}

// NewInt32Buffer returns an empty buffer with the default initial capacity.
func NewInt32Buffer() *Int32Buffer {
	return &Int32Buffer{data: make([]int32, 0, defaultBufferCapacity)}
}

// Push appends v to the end of the buffer.
func (b *Int32Buffer) Push(v int32) {
	b.data = append(b.data, v)
}

// At returns the element at index i.
func (b *Int32Buffer) At(i int) int32 {
	return b.data[i]
}

// SetAt overwrites the element at index i.
func (b *Int32Buffer) SetAt(i int, v int32) {
	b.data[i] = v
}

// Len returns the number of elements currently stored.
func (b *Int32Buffer) Len() int {
	return len(b.data)
}

// Clear empties the buffer without releasing its backing array.
func (b *Int32Buffer) Clear() {
	b.data = b.data[:0]
}

// Equal reports whether b and other have the same length and
// element-wise equal contents.
func (b *Int32Buffer) Equal(other *Int32Buffer) bool {
	if other == nil || len(b.data) != len(other.data) {
		return false
	}
	for i, v := range b.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// Hash computes a deterministic rolling hash: h starts at 0, and for each
// element x, h = 31*h + x.
func (b *Int32Buffer) Hash() int32 {
	var h int32
	for _, x := range b.data {
		h = 31*h + x
	}
	return h
}

// Clone returns a deep copy of the buffer.
func (b *Int32Buffer) Clone() *Int32Buffer {
	data := make([]int32, len(b.data))
	copy(data, b.data)
	return &Int32Buffer{data: data}
}

// Trim shrinks the backing array's capacity down to its length and
// returns the new size in bytes (length * 4).
func (b *Int32Buffer) Trim() int32 {
	trimmed := make([]int32, len(b.data))
	copy(trimmed, b.data)
	b.data = trimmed
	return int32(len(b.data)) * 4
}

// WriteTo serializes the buffer as a 32-bit big-endian length prefix
// followed by that many big-endian 32-bit elements, satisfying
// io.WriterTo.
func (b *Int32Buffer) WriteTo(w io.Writer) (int64, error) {
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(b.data)))
	n, err := w.Write(hdr[:])
	total := int64(n)
	if err != nil {
		return total, errors.Wrap(err, "sparsebitmap: writing buffer length")
	}

	var elem [4]byte
	for i, v := range b.data {
		binary.BigEndian.PutUint32(elem[:], uint32(v))
		n, err := w.Write(elem[:])
		total += int64(n)
		if err != nil {
			return total, errors.Wrapf(err, "sparsebitmap: writing element %d", i)
		}
	}

	return total, nil
}

// ReadFrom replaces the buffer's contents with the inverse of WriteTo,
// satisfying io.ReaderFrom.
func (b *Int32Buffer) ReadFrom(r io.Reader) (int64, error) {
	var hdr [4]byte
	n, err := io.ReadFull(r, hdr[:])
	total := int64(n)
	if err != nil {
		return total, errors.Wrap(ErrTruncated, "reading buffer length")
	}

	length := binary.BigEndian.Uint32(hdr[:])
	data := make([]int32, length)

	var elem [4]byte
	for i := range data {
		n, err := io.ReadFull(r, elem[:])
		total += int64(n)
		if err != nil {
			return total, errors.Wrapf(ErrTruncated, "reading element %d: %s", i, err)
		}
		data[i] = int32(binary.BigEndian.Uint32(elem[:]))
	}

	b.data = data
	return total, nil
}

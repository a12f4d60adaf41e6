// Package sparsebitmap implements a compressed sparse bitmap over
// non-negative 32-bit positions.
// See: https://github.com/lemire/sparsebitmap
package sparsebitmap

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Bitmap is a sparse bitmap encoded as a flat sequence of (gap, word)
// pairs. A populated word is a 32-bit literal covering 32 consecutive
// positions; the gap before it counts the fully-empty words skipped
// since the previous pair.
type Bitmap struct {
	// buffer holds the encoded pairs, two int32s per pair: gap, word.
	buffer *Int32Buffer

	// sizeinwords is one plus the absolute word index of the last pair,
	// or 0 for an empty bitmap.
	sizeinwords int32
}

// New returns an empty bitmap.
func New() *Bitmap {
	return &Bitmap{buffer: NewInt32Buffer()}
}

// BitmapOf builds a bitmap from a sorted, non-decreasing sequence of
// positions, calling Set for each in turn.
func BitmapOf(positions ...int32) (*Bitmap, error) {
	b := New()
	for _, p := range positions {
		if err := b.Set(p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Set places bit p (0-indexed) into the bitmap. Positions must be set in
// non-decreasing order; Set fails with ErrOutOfOrder if p would require
// rewriting a pair other than the trailing one.
func (b *Bitmap) Set(p int32) error {
	offset := p - b.sizeinwords*32

	if offset < -32 {
		return errors.Wrapf(ErrOutOfOrder, "position %d precedes the current window (sizeinwords=%d)", p, b.sizeinwords)
	}

	if offset < 0 {
		last := b.buffer.Len() - 1
		word := b.buffer.At(last)
		word |= int32(1) << uint(offset+32)
		b.buffer.SetAt(last, word)
		return nil
	}

	k := offset / 32
	bit := offset - k*32
	b.buffer.Push(k)
	b.buffer.Push(int32(1) << uint(bit))
	b.sizeinwords += k + 1

	return nil
}

// Add is the expert append: it places word verbatim at absolute word
// index off, which must be >= the bitmap's current sizeinwords. Unlike
// Set, Add accepts zero-valued words (they contribute nothing to
// enumeration but still occupy a pair).
func (b *Bitmap) Add(word, off int32) error {
	if off < b.sizeinwords {
		return errors.Wrapf(ErrOutOfOrder, "add at word offset %d precedes sizeinwords %d", off, b.sizeinwords)
	}

	b.buffer.Push(off - b.sizeinwords)
	b.buffer.Push(word)
	b.sizeinwords = off + 1

	return nil
}

// Cardinality returns the number of set positions.
func (b *Bitmap) Cardinality() int32 {
	var c int32
	for i := 1; i < b.buffer.Len(); i += 2 {
		c += int32(bits.OnesCount32(uint32(b.buffer.At(i))))
	}
	return c
}

// ToArray materializes the set positions in ascending order.
func (b *Bitmap) ToArray() []int32 {
	out := make([]int32, 0, b.Cardinality())
	it := b.GetIntIterator()
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// SizeInBytes reports the size of the encoded buffer in bytes.
func (b *Bitmap) SizeInBytes() int32 {
	return int32(b.buffer.Len()) * 4
}

// Trim shrinks the backing buffer's capacity to its length and returns
// the resulting size in bytes.
func (b *Bitmap) Trim() int32 {
	return b.buffer.Trim()
}

// Clear resets the bitmap to empty.
func (b *Bitmap) Clear() {
	b.buffer.Clear()
	b.sizeinwords = 0
}

// Clone returns a deep, independent copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{buffer: b.buffer.Clone(), sizeinwords: b.sizeinwords}
}

// Equal reports structural equality: same buffer length and
// element-wise equal buffers. Two bitmaps representing the same set of
// bits are only guaranteed equal if both were built in canonical form
// (no zero-word pairs from Set, and Set always merging into the
// trailing pair when applicable).
func (b *Bitmap) Equal(other *Bitmap) bool {
	if other == nil {
		return false
	}
	return b.buffer.Equal(other.buffer)
}

// HashCode returns the buffer's rolling hash.
func (b *Bitmap) HashCode() int32 {
	return b.buffer.Hash()
}

// GetIntIterator returns a forward-only cursor over the bitmap's set
// positions.
func (b *Bitmap) GetIntIterator() *BitIterator {
	return newBitIterator(b.buffer)
}

// GetSkippableIterator returns a forward cursor over the bitmap's
// (offset, word) pairs that supports leaping to a minimum offset.
func (b *Bitmap) GetSkippableIterator() SkippableIterator {
	return newBitmapSkipIterator(b.buffer)
}

// And returns a fresh bitmap holding the intersection of b and other.
func (b *Bitmap) And(other *Bitmap) (*Bitmap, error) {
	result := New()
	if err := mergeAnd2By2(b, other, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Or returns a fresh bitmap holding the union of b and other.
func (b *Bitmap) Or(other *Bitmap) (*Bitmap, error) {
	result := New()
	if err := mergeOr2By2(b, other, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Xor returns a fresh bitmap holding the symmetric difference of b and
// other.
func (b *Bitmap) Xor(other *Bitmap) (*Bitmap, error) {
	result := New()
	if err := mergeXor2By2(b, other, result); err != nil {
		return nil, err
	}
	return result, nil
}

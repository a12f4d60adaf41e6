package sparsebitmap

// SkippableIterator is a forward, single-pass, non-restartable cursor
// over (word, offset) pairs that can leap directly to the first pair
// with offset >= min. It is the substrate the skip-driven kernels in
// skipand.go are built on.
//
// AdvanceUntil on the n-ary iterator produced by FastAndIterators is not
// implemented and returns ErrUnsupported. The iterator over a single
// bitmap never returns an error; the other kernels' iterators return
// whatever error one of their inputs returns.
type SkippableIterator interface {
	HasValue() bool
	Word() int32
	WordOffset() int32
	Advance() error
	AdvanceUntil(min int32) error
}

// bitmapSkipIterator walks one bitmap's encoded pairs directly.
type bitmapSkipIterator struct {
	buffer *Int32Buffer
	pos    int
	p      int32
}

func newBitmapSkipIterator(buf *Int32Buffer) *bitmapSkipIterator {
	it := &bitmapSkipIterator{buffer: buf}
	if buf.Len() > 0 {
		it.p = buf.At(0)
	}
	return it
}

func (it *bitmapSkipIterator) HasValue() bool {
	return it.pos < it.buffer.Len()
}

func (it *bitmapSkipIterator) Word() int32 {
	return it.buffer.At(it.pos + 1)
}

func (it *bitmapSkipIterator) WordOffset() int32 {
	return it.p
}

func (it *bitmapSkipIterator) Advance() error {
	it.pos += 2
	if it.pos < it.buffer.Len() {
		it.p += it.buffer.At(it.pos) + 1
	}
	return nil
}

// AdvanceUntil calls Advance once unconditionally, then repeats Advance
// while a value remains whose offset is still below min.
func (it *bitmapSkipIterator) AdvanceUntil(min int32) error {
	if err := it.Advance(); err != nil {
		return err
	}
	for it.HasValue() && it.p < min {
		if err := it.Advance(); err != nil {
			return err
		}
	}
	return nil
}

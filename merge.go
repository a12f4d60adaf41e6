package sparsebitmap

// sink is any destination that accepts (word, offset) pairs appended in
// non-decreasing offset order. Bitmap implements it directly via Add.
type sink interface {
	Add(word, offset int32) error
}

// mergeAnd2By2 walks a and b's pairs linearly, keeping absolute word
// offsets in sync, and emits the intersection into out. It advances the
// side with the smaller offset; when offsets are equal it emits the
// non-zero AND and advances both.
func mergeAnd2By2(a, b *Bitmap, out sink) error {
	i1 := newBitmapSkipIterator(a.buffer)
	i2 := newBitmapSkipIterator(b.buffer)

	for i1.HasValue() && i2.HasValue() {
		p1, p2 := i1.WordOffset(), i2.WordOffset()
		switch {
		case p1 < p2:
			i1.Advance()
		case p2 < p1:
			i2.Advance()
		default:
			if w := i1.Word() & i2.Word(); w != 0 {
				if err := out.Add(w, p1); err != nil {
					return err
				}
			}
			i1.Advance()
			i2.Advance()
		}
	}

	return nil
}

// mergeOr2By2 walks a and b's pairs linearly and emits the union into
// out: the side with the smaller offset emits its own pair and
// advances; equal offsets emit the OR and advance both; once one side
// is exhausted, the remainder of the other side is drained verbatim.
func mergeOr2By2(a, b *Bitmap, out sink) error {
	i1 := newBitmapSkipIterator(a.buffer)
	i2 := newBitmapSkipIterator(b.buffer)

	for i1.HasValue() && i2.HasValue() {
		p1, p2 := i1.WordOffset(), i2.WordOffset()
		switch {
		case p1 < p2:
			if err := out.Add(i1.Word(), p1); err != nil {
				return err
			}
			i1.Advance()
		case p2 < p1:
			if err := out.Add(i2.Word(), p2); err != nil {
				return err
			}
			i2.Advance()
		default:
			if err := out.Add(i1.Word()|i2.Word(), p1); err != nil {
				return err
			}
			i1.Advance()
			i2.Advance()
		}
	}

	if err := drainInto(i1, out); err != nil {
		return err
	}
	return drainInto(i2, out)
}

// mergeXor2By2 is like mergeOr2By2 except equal offsets emit the XOR
// only when it is non-zero (i.e. the words differ).
func mergeXor2By2(a, b *Bitmap, out sink) error {
	i1 := newBitmapSkipIterator(a.buffer)
	i2 := newBitmapSkipIterator(b.buffer)

	for i1.HasValue() && i2.HasValue() {
		p1, p2 := i1.WordOffset(), i2.WordOffset()
		switch {
		case p1 < p2:
			if err := out.Add(i1.Word(), p1); err != nil {
				return err
			}
			i1.Advance()
		case p2 < p1:
			if err := out.Add(i2.Word(), p2); err != nil {
				return err
			}
			i2.Advance()
		default:
			if w := i1.Word() ^ i2.Word(); w != 0 {
				if err := out.Add(w, p1); err != nil {
					return err
				}
			}
			i1.Advance()
			i2.Advance()
		}
	}

	if err := drainInto(i1, out); err != nil {
		return err
	}
	return drainInto(i2, out)
}

// drainInto appends the remainder of it to out verbatim and returns the
// first error from out.Add. Unlike and2by2Iterator's Advance,
// *bitmapSkipIterator's Advance never errors, so its result is not
// checked here.
func drainInto(it *bitmapSkipIterator, out sink) error {
	for it.HasValue() {
		if err := out.Add(it.Word(), it.WordOffset()); err != nil {
			return err
		}
		it.Advance()
	}
	return nil
}

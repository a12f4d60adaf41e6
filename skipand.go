package sparsebitmap

import (
	"math/bits"

	"github.com/pkg/errors"
)

// skipAnd2By2 composes two skippable iterators — over bitmaps or over
// the result of another skip-driven kernel — into a new skippable
// iterator over their intersection. Unlike mergeAnd2By2, nothing is
// written eagerly: values are produced lazily as the caller advances.
func skipAnd2By2(it1, it2 SkippableIterator) (SkippableIterator, error) {
	r := &and2by2Iterator{it1: it1, it2: it2}
	if err := r.moveToNext(); err != nil {
		return nil, err
	}
	return r, nil
}

type and2by2Iterator struct {
	it1, it2     SkippableIterator
	word, offset int32
	done         bool
}

// moveToNext leap-frogs both inputs to their next common offset with a
// non-zero AND, publishing it, or marks the iterator done.
func (r *and2by2Iterator) moveToNext() error {
	for r.it1.HasValue() && r.it2.HasValue() {
		o1, o2 := r.it1.WordOffset(), r.it2.WordOffset()

		if o1 < o2 {
			if err := r.it1.AdvanceUntil(o2); err != nil {
				return err
			}
			continue
		}
		if o2 < o1 {
			if err := r.it2.AdvanceUntil(o1); err != nil {
				return err
			}
			continue
		}

		if w := r.it1.Word() & r.it2.Word(); w != 0 {
			r.word, r.offset = w, o1
			return nil
		}

		if err := r.it1.Advance(); err != nil {
			return err
		}
	}

	r.done = true
	return nil
}

func (r *and2by2Iterator) HasValue() bool    { return !r.done }
func (r *and2by2Iterator) Word() int32       { return r.word }
func (r *and2by2Iterator) WordOffset() int32 { return r.offset }

func (r *and2by2Iterator) Advance() error {
	if err := r.it1.Advance(); err != nil {
		return err
	}
	return r.moveToNext()
}

func (r *and2by2Iterator) AdvanceUntil(min int32) error {
	if err := r.it1.AdvanceUntil(min); err != nil {
		return err
	}
	return r.moveToNext()
}

// nAryAndIterator is the n-ary "and": a running maxval converges all
// inputs via repeated sweeps before ANDing their words.
type nAryAndIterator struct {
	its          []SkippableIterator
	maxval       int32
	word, offset int32
	done         bool
}

// AndIterators computes the n-ary intersection of its inputs, exploiting
// large gaps by leap-frogging a running maximum offset across all
// inputs rather than walking any one linearly.
func AndIterators(its ...SkippableIterator) (SkippableIterator, error) {
	if len(its) == 0 {
		return nil, errors.WithStack(ErrEmptyAggregate)
	}

	r := &nAryAndIterator{its: its}
	for _, it := range its {
		if !it.HasValue() {
			r.done = true
			return r, nil
		}
		if it.WordOffset() > r.maxval {
			r.maxval = it.WordOffset()
		}
	}

	if err := r.moveToNext(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *nAryAndIterator) moveToNext() error {
	for {
		for {
			changed := false
			for _, it := range r.its {
				if !it.HasValue() {
					r.done = true
					return nil
				}
				if it.WordOffset() < r.maxval {
					if err := it.AdvanceUntil(r.maxval); err != nil {
						return err
					}
					if !it.HasValue() {
						r.done = true
						return nil
					}
					changed = true
					if it.WordOffset() > r.maxval {
						r.maxval = it.WordOffset()
					}
				}
			}
			if !changed {
				break
			}
		}

		acc := int32(-1)
		for _, it := range r.its {
			acc &= it.Word()
		}
		if acc != 0 {
			r.word, r.offset = acc, r.maxval
			return nil
		}

		if err := r.advanceAllPastMaxval(); err != nil {
			return err
		}
		if r.done {
			return nil
		}
	}
}

// advanceAllPastMaxval forces every input strictly past the current
// maxval (AdvanceUntil always steps at least once, even when already at
// the target) and recomputes maxval as their new high water mark.
func (r *nAryAndIterator) advanceAllPastMaxval() error {
	for _, it := range r.its {
		if err := it.AdvanceUntil(r.maxval); err != nil {
			return err
		}
		if !it.HasValue() {
			r.done = true
			return nil
		}
	}

	m := r.its[0].WordOffset()
	for _, it := range r.its[1:] {
		if it.WordOffset() > m {
			m = it.WordOffset()
		}
	}
	r.maxval = m
	return nil
}

func (r *nAryAndIterator) HasValue() bool    { return !r.done }
func (r *nAryAndIterator) Word() int32       { return r.word }
func (r *nAryAndIterator) WordOffset() int32 { return r.offset }

func (r *nAryAndIterator) Advance() error {
	if err := r.advanceAllPastMaxval(); err != nil {
		return err
	}
	if r.done {
		return nil
	}
	return r.moveToNext()
}

func (r *nAryAndIterator) AdvanceUntil(min int32) error {
	last := r.its[len(r.its)-1]
	if err := last.AdvanceUntil(min); err != nil {
		return err
	}
	if !last.HasValue() {
		r.done = true
		return nil
	}
	r.maxval = last.WordOffset()
	return r.moveToNext()
}

// fastAndIterator is the optimized n-ary "and": instead of resweeping
// every input from scratch on every maxval bump, it tracks how many
// inputs (sbscardinality) currently agree with maxval in a round-robin
// pass, so only disagreeing inputs are re-examined.
type fastAndIterator struct {
	its            []SkippableIterator
	maxval         int32
	sbscardinality int
	idx            int
	word, offset   int32
	done           bool
}

// FastAndIterators is an n-ary intersection tuned for many inputs of
// unequal size. Its iterator does not support AdvanceUntil (returns
// ErrUnsupported); callers composing it inside another skip-driven
// kernel must account for that.
func FastAndIterators(its ...SkippableIterator) (SkippableIterator, error) {
	if len(its) == 0 {
		return nil, errors.WithStack(ErrEmptyAggregate)
	}

	for _, it := range its {
		if !it.HasValue() {
			return &fastAndIterator{its: its, done: true}, nil
		}
	}

	r := &fastAndIterator{its: its, maxval: its[0].WordOffset()}
	if err := r.moveToNext(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *fastAndIterator) moveToNext() error {
	n := len(r.its)

	for {
		for r.sbscardinality < n {
			it := r.its[r.idx]
			o := it.WordOffset()

			if o < r.maxval {
				if err := it.AdvanceUntil(r.maxval); err != nil {
					return err
				}
				if !it.HasValue() {
					r.done = true
					return nil
				}
				o = it.WordOffset()
			}

			if o > r.maxval {
				r.maxval = o
				r.sbscardinality = 1
				r.idx = (r.idx + 1) % n
				continue
			}

			r.sbscardinality++
			r.idx = (r.idx + 1) % n
		}

		acc := int32(-1)
		for _, it := range r.its {
			acc &= it.Word()
		}
		if acc != 0 {
			r.word, r.offset = acc, r.maxval
			return nil
		}

		if err := r.bumpPastMaxval(); err != nil {
			return err
		}
		if r.done {
			return nil
		}
	}
}

// bumpPastMaxval drives the first input one step forward and resets the
// agreement counter so the round-robin scan restarts from the input that
// just moved.
func (r *fastAndIterator) bumpPastMaxval() error {
	if err := r.its[0].Advance(); err != nil {
		return err
	}
	if !r.its[0].HasValue() {
		r.done = true
		return nil
	}
	if r.its[0].WordOffset() > r.maxval {
		r.maxval = r.its[0].WordOffset()
	}
	r.sbscardinality = 1
	r.idx = 1 % len(r.its)
	return nil
}

func (r *fastAndIterator) HasValue() bool    { return !r.done }
func (r *fastAndIterator) Word() int32       { return r.word }
func (r *fastAndIterator) WordOffset() int32 { return r.offset }

func (r *fastAndIterator) Advance() error {
	if err := r.bumpPastMaxval(); err != nil {
		return err
	}
	if r.done {
		return nil
	}
	return r.moveToNext()
}

// AdvanceUntil is not implemented for the fast n-ary AND iterator.
func (r *fastAndIterator) AdvanceUntil(int32) error {
	return errors.WithStack(ErrUnsupported)
}

// TreeAndIterators pairwise-reduces its inputs in a balanced tree:
// (0,1),(2,3),... combined via skipAnd2By2, recursing until one
// iterator remains. An odd input is carried forward to the next level
// untouched.
func TreeAndIterators(its ...SkippableIterator) (SkippableIterator, error) {
	if len(its) == 0 {
		return nil, errors.WithStack(ErrEmptyAggregate)
	}

	level := its
	for len(level) > 1 {
		next := make([]SkippableIterator, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			combined, err := skipAnd2By2(level[i], level[i+1])
			if err != nil {
				return nil, err
			}
			next = append(next, combined)
		}
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}

	return level[0], nil
}

// FlatAndIterators left-folds its inputs via skipAnd2By2 in input order.
func FlatAndIterators(its ...SkippableIterator) (SkippableIterator, error) {
	if len(its) == 0 {
		return nil, errors.WithStack(ErrEmptyAggregate)
	}

	acc := its[0]
	for _, it := range its[1:] {
		combined, err := skipAnd2By2(acc, it)
		if err != nil {
			return nil, err
		}
		acc = combined
	}
	return acc, nil
}

// ReverseFlatAndIterators is FlatAndIterators folding from the right.
func ReverseFlatAndIterators(its ...SkippableIterator) (SkippableIterator, error) {
	if len(its) == 0 {
		return nil, errors.WithStack(ErrEmptyAggregate)
	}

	acc := its[len(its)-1]
	for i := len(its) - 2; i >= 0; i-- {
		combined, err := skipAnd2By2(its[i], acc)
		if err != nil {
			return nil, err
		}
		acc = combined
	}
	return acc, nil
}

// Materialize drains a skippable iterator into a fresh bitmap using the
// expert Add.
func Materialize(it SkippableIterator) (*Bitmap, error) {
	b := New()
	for it.HasValue() {
		if err := b.Add(it.Word(), it.WordOffset()); err != nil {
			return nil, err
		}
		if err := it.Advance(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// CardinalityOf sums the popcount of every word the iterator produces,
// without materializing a bitmap.
func CardinalityOf(it SkippableIterator) (int32, error) {
	var c int32
	for it.HasValue() {
		c += int32(bits.OnesCount32(uint32(it.Word())))
		if err := it.Advance(); err != nil {
			return 0, err
		}
	}
	return c, nil
}

package sparsebitmap

import "container/heap"

// bitmapHeap is a min-heap of bitmaps keyed by SizeInBytes, used by
// aggregate to repeatedly combine the two smallest bitmaps first.
type bitmapHeap []*Bitmap

func (h bitmapHeap) Len() int            { return len(h) }
func (h bitmapHeap) Less(i, j int) bool  { return h[i].SizeInBytes() < h[j].SizeInBytes() }
func (h bitmapHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bitmapHeap) Push(x interface{}) { *h = append(*h, x.(*Bitmap)) }
func (h *bitmapHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// And returns the intersection of all given bitmaps: 0 inputs yield an
// empty bitmap, 1 input is returned as-is, 2 inputs go straight to the
// pairwise kernel, and 3+ are combined smallest-first via a
// size-ordered heap.
func And(bitmaps ...*Bitmap) (*Bitmap, error) {
	return aggregate(bitmaps, (*Bitmap).And)
}

// Or returns the union of all given bitmaps, with the same arity
// shortcuts as And.
func Or(bitmaps ...*Bitmap) (*Bitmap, error) {
	return aggregate(bitmaps, (*Bitmap).Or)
}

// Xor returns the symmetric difference of all given bitmaps, with the
// same arity shortcuts as And.
func Xor(bitmaps ...*Bitmap) (*Bitmap, error) {
	return aggregate(bitmaps, (*Bitmap).Xor)
}

func aggregate(bitmaps []*Bitmap, combine func(*Bitmap, *Bitmap) (*Bitmap, error)) (*Bitmap, error) {
	switch len(bitmaps) {
	case 0:
		return New(), nil
	case 1:
		return bitmaps[0], nil
	case 2:
		return combine(bitmaps[0], bitmaps[1])
	}

	h := make(bitmapHeap, len(bitmaps))
	copy(h, bitmaps)
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(*Bitmap)
		b := heap.Pop(&h).(*Bitmap)
		c, err := combine(a, b)
		if err != nil {
			return nil, err
		}
		heap.Push(&h, c)
	}

	return h[0], nil
}

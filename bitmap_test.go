package sparsebitmap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitmapOfToArray(t *testing.T) {
	require := require.New(t)

	b, err := BitmapOf(1, 2, 100, 150, 1000, 123456)
	require.NoError(err)
	require.Equal([]int32{1, 2, 100, 150, 1000, 123456}, b.ToArray())
	require.Equal(int32(6), b.Cardinality())
}

func TestBitmapScenarios(t *testing.T) {
	require := require.New(t)

	a, err := BitmapOf(1, 2, 100, 150, 1000, 123456)
	require.NoError(err)
	b, err := BitmapOf(1, 2, 3, 1000, 123456, 1234567)
	require.NoError(err)

	and, err := a.And(b)
	require.NoError(err)
	require.Equal([]int32{1, 2, 1000, 123456}, and.ToArray())

	or, err := a.Or(b)
	require.NoError(err)
	require.Equal([]int32{1, 2, 3, 100, 150, 1000, 123456, 1234567}, or.ToArray())

	xor, err := a.Xor(b)
	require.NoError(err)
	require.Equal([]int32{3, 100, 150, 1234567}, xor.ToArray())
}

func TestBitmapSetMergesIntoTrailingWord(t *testing.T) {
	require := require.New(t)

	b := New()
	require.NoError(b.Set(5))
	require.NoError(b.Set(6))
	require.NoError(b.Set(31))
	require.Equal([]int32{5, 6, 31}, b.ToArray())
}

func TestBitmapSetOutOfOrder(t *testing.T) {
	require := require.New(t)

	b := New()
	require.NoError(b.Set(100))
	err := b.Set(10)
	require.Error(err)
	require.ErrorIs(err, ErrOutOfOrder)
}

func TestBitmapAddExpert(t *testing.T) {
	require := require.New(t)

	b := New()
	require.NoError(b.Add(0b101, 0))
	require.NoError(b.Add(0b1, 5))
	require.Equal([]int32{0, 2, 160}, b.ToArray())

	err := b.Add(1, 3)
	require.Error(err)
	require.ErrorIs(err, ErrOutOfOrder)
}

func TestBitmapAddZeroWordTerminatesIteration(t *testing.T) {
	require := require.New(t)

	b := New()
	require.NoError(b.Set(0))
	require.NoError(b.Add(0, 5))
	require.NoError(b.Add(1, 10))

	// The zero-word pair at offset 5 terminates the bit iterator early,
	// per the invariant that Add (unlike Set) may create zero pairs.
	require.Equal([]int32{0}, b.ToArray())
	// Cardinality still counts what's actually in the buffer.
	require.Equal(int32(2), b.Cardinality())
}

func TestBitmapEmptyIdentities(t *testing.T) {
	require := require.New(t)

	empty := New()
	b, err := BitmapOf(5, 50, 500)
	require.NoError(err)

	or, err := empty.Or(b)
	require.NoError(err)
	require.Equal(b.ToArray(), or.ToArray())

	and, err := empty.And(b)
	require.NoError(err)
	require.Empty(and.ToArray())
}

func TestBitmapIdempotence(t *testing.T) {
	require := require.New(t)

	b, err := BitmapOf(1, 2, 100, 150, 1000, 123456)
	require.NoError(err)

	and, err := b.And(b)
	require.NoError(err)
	require.True(and.Equal(b))

	or, err := b.Or(b)
	require.NoError(err)
	require.True(or.Equal(b))

	xor, err := b.Xor(b)
	require.NoError(err)
	require.Empty(xor.ToArray())
}

func TestBitmapCloneCloneEqualHash(t *testing.T) {
	require := require.New(t)

	b, err := BitmapOf(1, 64, 1000)
	require.NoError(err)
	clone := b.Clone()

	require.True(b.Equal(clone))
	require.Equal(b.HashCode(), clone.HashCode())

	require.NoError(clone.Set(2000))
	require.False(b.Equal(clone))
}

func TestBitmapClearTrimSizeInBytes(t *testing.T) {
	require := require.New(t)

	b, err := BitmapOf(1, 64, 1000)
	require.NoError(err)
	require.Equal(int32(b.buffer.Len()*4), b.SizeInBytes())

	b.Clear()
	require.Equal(int32(0), b.SizeInBytes())
	require.Empty(b.ToArray())

	b2, err := BitmapOf(1, 64, 1000)
	require.NoError(err)
	sz := b2.Trim()
	require.Equal(b2.SizeInBytes(), sz)
}

func TestBitmapRoundTripRandomish(t *testing.T) {
	require := require.New(t)

	positions := []int32{0, 1, 31, 32, 33, 1000, 1001, 70000, 70001, 2000000}
	b, err := BitmapOf(positions...)
	require.NoError(err)
	require.Equal(positions, b.ToArray())
	require.Equal(int32(len(positions)), b.Cardinality())
}

// referenceIntersect/Unite/Xor are plain sorted-array implementations of
// set algebra, used to check the bitmap kernels against a simple oracle.
func referenceIntersect(a, b []int32) []int32 {
	set := map[int32]bool{}
	for _, x := range a {
		set[x] = true
	}
	var out []int32
	for _, x := range b {
		if set[x] {
			out = append(out, x)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func referenceUnite(a, b []int32) []int32 {
	set := map[int32]bool{}
	for _, x := range a {
		set[x] = true
	}
	for _, x := range b {
		set[x] = true
	}
	out := make([]int32, 0, len(set))
	for x := range set {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func referenceXor(a, b []int32) []int32 {
	in := map[int32]int{}
	for _, x := range a {
		in[x]++
	}
	for _, x := range b {
		in[x]++
	}
	var out []int32
	for x, c := range in {
		if c == 1 {
			out = append(out, x)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestBitmapSetAlgebraAgainstReference(t *testing.T) {
	require := require.New(t)

	l1 := []int32{4, 8, 12, 16, 20, 100, 500, 1000}
	l2 := []int32{4, 20, 100, 101, 999, 1000, 1001}

	b1, err := BitmapOf(l1...)
	require.NoError(err)
	b2, err := BitmapOf(l2...)
	require.NoError(err)

	and, err := b1.And(b2)
	require.NoError(err)
	require.Equal(referenceIntersect(l1, l2), and.ToArray())

	or, err := b1.Or(b2)
	require.NoError(err)
	require.Equal(referenceUnite(l1, l2), or.ToArray())

	xor, err := b1.Xor(b2)
	require.NoError(err)
	require.Equal(referenceXor(l1, l2), xor.ToArray())
}

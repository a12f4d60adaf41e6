package sparsebitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitmapSkipIteratorWalksPairs(t *testing.T) {
	require := require.New(t)

	b, err := BitmapOf(1, 2, 100, 1000)
	require.NoError(err)

	it := b.GetSkippableIterator()
	var offsets []int32
	for it.HasValue() {
		offsets = append(offsets, it.WordOffset())
		require.NoError(it.Advance())
	}
	require.Equal([]int32{0, 3, 31}, offsets)
}

func TestBitmapSkipIteratorAdvanceUntil(t *testing.T) {
	require := require.New(t)

	b, err := BitmapOf(1, 100, 1000, 100000)
	require.NoError(err)

	it := b.GetSkippableIterator()
	require.NoError(it.AdvanceUntil(31))
	require.True(it.HasValue())
	require.GreaterOrEqual(it.WordOffset(), int32(31))
}

func TestBitmapSkipIteratorAdvanceUntilAlwaysStepsOnce(t *testing.T) {
	require := require.New(t)

	b, err := BitmapOf(1, 100)
	require.NoError(err)

	it := b.GetSkippableIterator()
	first := it.WordOffset()
	// min equal to the current offset still forces one Advance.
	require.NoError(it.AdvanceUntil(first))
	require.NotEqual(first, it.WordOffset())
}

package sparsebitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateArityShortcuts(t *testing.T) {
	require := require.New(t)

	empty, err := And()
	require.NoError(err)
	require.Empty(empty.ToArray())

	b, err := BitmapOf(1, 2, 3)
	require.NoError(err)

	single, err := And(b)
	require.NoError(err)
	require.True(single == b)
}

func TestAggregateAndEqualsLeftFold(t *testing.T) {
	require := require.New(t)

	lists := [][]int32{
		{1, 2, 3, 100, 1000},
		{2, 3, 100, 2000},
		{3, 100, 1000, 2000},
		{2, 3, 100},
	}

	bitmaps := make([]*Bitmap, len(lists))
	for i, l := range lists {
		b, err := BitmapOf(l...)
		require.NoError(err)
		bitmaps[i] = b
	}

	want := bitmaps[0]
	var err error
	for _, b := range bitmaps[1:] {
		want, err = want.And(b)
		require.NoError(err)
	}

	got, err := And(bitmaps...)
	require.NoError(err)
	require.Equal(want.ToArray(), got.ToArray())
}

func TestAggregateOrEqualsLeftFold(t *testing.T) {
	require := require.New(t)

	lists := [][]int32{
		{1, 2, 3},
		{2, 3, 100},
		{3, 1000, 2000},
		{5000},
	}

	bitmaps := make([]*Bitmap, len(lists))
	for i, l := range lists {
		b, err := BitmapOf(l...)
		require.NoError(err)
		bitmaps[i] = b
	}

	want := bitmaps[0]
	var err error
	for _, b := range bitmaps[1:] {
		want, err = want.Or(b)
		require.NoError(err)
	}

	got, err := Or(bitmaps...)
	require.NoError(err)
	require.Equal(want.ToArray(), got.ToArray())
}

func TestAggregateXorTwoInputsIsXorNotOr(t *testing.T) {
	require := require.New(t)

	a, err := BitmapOf(1, 2, 3)
	require.NoError(err)
	b, err := BitmapOf(2, 3, 4)
	require.NoError(err)

	got, err := Xor(a, b)
	require.NoError(err)
	require.Equal([]int32{1, 4}, got.ToArray())
}

package sparsebitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	require := require.New(t)

	b, err := BitmapOf(1, 2, 100, 150, 1000, 123456)
	require.NoError(err)

	data, err := b.Serialize()
	require.NoError(err)

	got, err := Deserialize(data)
	require.NoError(err)

	require.Equal(b.ToArray(), got.ToArray())
	require.True(b.Equal(got))
}

func TestSerializeEmptyBitmap(t *testing.T) {
	require := require.New(t)

	b := New()
	data, err := b.Serialize()
	require.NoError(err)

	got, err := Deserialize(data)
	require.NoError(err)
	require.Empty(got.ToArray())
}

func TestDeserializeTruncated(t *testing.T) {
	require := require.New(t)

	b, err := BitmapOf(1, 2, 100)
	require.NoError(err)
	data, err := b.Serialize()
	require.NoError(err)

	_, err = Deserialize(data[:len(data)-1])
	require.Error(err)
	require.ErrorIs(err, ErrTruncated)
}

package runtime

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemorySourceBasics(t *testing.T) {
	s := NewMemorySource([]byte{1, 2, 3, 4, 5})
	require.Equal(t, uint64(5), s.Length())
	require.Equal(t, uint64(0), s.Position())

	b, err := s.ReadBytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, b)
	require.Equal(t, uint64(2), s.Position())

	require.NoError(t, s.Seek(5))
	require.True(t, s.EOF())

	require.Error(t, s.Seek(6))

	require.NoError(t, s.Seek(3))
	rest, err := s.ReadBytesFull()
	require.NoError(t, err)
	require.Equal(t, []byte{4, 5}, rest)
}

func TestMemorySourceShortRead(t *testing.T) {
	s := NewMemorySource([]byte{1, 2})
	_, err := s.ReadBytes(3)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, ErrUnexpectedEOF, rerr.Code)
}

func TestStreamSourceMatchesMemorySource(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	ss, err := NewStreamSource(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, uint64(len(data)), ss.Length())

	first, err := ss.ReadBytes(9)
	require.NoError(t, err)
	require.Equal(t, "the quick", string(first))

	// Backward seek within the already-read window must work.
	require.NoError(t, ss.Seek(4))
	again, err := ss.ReadBytes(5)
	require.NoError(t, err)
	require.Equal(t, "quick", string(again))

	require.NoError(t, ss.Seek(uint64(len(data))-3))
	tail, err := ss.ReadBytesFull()
	require.NoError(t, err)
	require.Equal(t, "dog", string(tail))
	require.True(t, ss.EOF())
}

package clovy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointerListEmptyRoundTrips(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	require.NoError(t, EncodePointerList(w, []int32{}, (*Writer).WriteI32, nil))
	require.NoError(t, w.Finalize())
	require.Equal(t, int64(4), buf.pos) // just the count

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	out, err := DecodePointerList(r, (*Reader).ReadI32, nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestPointerListOffsetTableMatchesElementOffsets(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	values := []Constant{
		{Name: []byte("a"), Value: []byte("1")},
		{Name: []byte("b"), Value: []byte("2")},
	}
	require.NoError(t, EncodePointerList(w, values, encodeConstant, nil))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	count, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(2), count)

	off0, err := r.ReadU32()
	require.NoError(t, err)
	off1, err := r.ReadU32()
	require.NoError(t, err)

	tablePos, err := r.StreamPosition()
	require.NoError(t, err)
	require.Equal(t, int64(off0), tablePos)

	require.NoError(t, r.SeekTo(int64(off0)))
	c0, err := decodeConstant(r)
	require.NoError(t, err)
	require.Equal(t, "a", string(c0.Name))

	elemEnd, err := r.StreamPosition()
	require.NoError(t, err)
	require.Equal(t, int64(off1), elemEnd)
}

func TestSimpleListRoundTrip(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	require.NoError(t, EncodeSimpleList(w, []int32{1, 2, 3}, (*Writer).WriteI32, nil))

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	out, err := DecodeSimpleList(r, (*Reader).ReadI32, nil)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3}, out)
}

func TestListHooksAreInvoked(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	var written []int32
	hooks := &ListHooks[int32]{
		AfterWrite: func(_ int, v int32) error {
			written = append(written, v)
			return nil
		},
	}
	require.NoError(t, EncodeSimpleList(w, []int32{7, 8}, (*Writer).WriteI32, hooks))
	require.Equal(t, []int32{7, 8}, written)
}

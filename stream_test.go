package clovy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	require.NoError(t, w.WriteU32(0xdeadbeef))
	require.NoError(t, w.WriteI32(-42))
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteWideBool(true))
	require.NoError(t, w.WriteF32(3.5))
	require.NoError(t, w.WriteF64(-2.25))

	buf.pos = 0
	r := NewReader(buf)
	u, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), u)

	i, err := r.ReadI32()
	require.NoError(t, err)
	require.Equal(t, int32(-42), i)

	b, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, b)

	wb, err := r.ReadWideBool()
	require.NoError(t, err)
	require.True(t, wb)

	f32, err := r.ReadF32()
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	f64, err := r.ReadF64()
	require.NoError(t, err)
	require.Equal(t, -2.25, f64)
}

func TestReadPointerStringStrictNullIsError(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	require.NoError(t, w.WriteU32(0))
	buf.pos = 0
	r := NewReader(buf)
	_, err := r.ReadPointerString(true)
	require.ErrorIs(t, err, ErrNullPointer)
}

func TestReadPointerStringSafeNullIsEmpty(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	require.NoError(t, w.WriteU32(0))
	buf.pos = 0
	r := NewReader(buf)
	s, err := r.ReadPointerString(false)
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestPointerStringRoundTripThroughFinalize(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	require.NoError(t, w.WritePointerString([]byte("hello")))
	require.NoError(t, w.Finalize())

	buf.pos = 0
	r := NewReader(buf)
	s, err := r.ReadPointerString(false)
	require.NoError(t, err)
	require.Equal(t, "hello", string(s))
}

func TestDuplicateStringsSharePayload(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	require.NoError(t, w.WritePointerString([]byte("dup")))
	require.NoError(t, w.WritePointerString([]byte("dup")))
	require.NoError(t, w.Finalize())
	require.Len(t, w.stringOffsets, 1)
}

func TestPadCheckFailsOnMismatch(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	require.NoError(t, w.WriteU8(1))
	require.NoError(t, w.WriteU8(0xff)) // should have been 0
	require.NoError(t, w.WriteU8(0))
	require.NoError(t, w.WriteU8(0))

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(1))
	err := r.PadCheck(4, 0)
	require.ErrorIs(t, err, ErrInvalidPadding)
}

package clovy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func minimalGEN8() *GeneralInfo {
	return &GeneralInfo{
		DisableDebug: true,
		FormatID:     0,
		Major:        1,
	}
}

func TestTinyContainerDecodesAtDefaultVersion(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	dir := &Directory{
		Chunks: []Chunk{{Name: [4]byte{'G', 'E', 'N', '8'}}},
		GEN8:   minimalGEN8(),
	}
	require.NoError(t, Encode(w, dir))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	decoded, err := Decode(r)
	require.NoError(t, err)
	require.NotNil(t, decoded.GEN8)
	require.Equal(t, int32(1), r.Version.Major)
	require.Equal(t, int32(0), r.Version.Minor)
}

func TestGEN8DecodeBumpsVersion(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	g := minimalGEN8()
	g.Major, g.Minor, g.Release, g.Build = 2, 3, 0, 0
	dir := &Directory{
		Chunks: []Chunk{{Name: [4]byte{'G', 'E', 'N', '8'}}},
		GEN8:   g,
	}
	require.NoError(t, Encode(w, dir))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	_, err := Decode(r)
	require.NoError(t, err)
	require.Equal(t, int32(2), r.Version.Major)
	require.Equal(t, int32(3), r.Version.Minor)
	require.Equal(t, int32(0), r.Version.BuiltinAudioGroupID)
}

func TestChunkSpanLengthMatchesOffsets(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	dir := &Directory{
		Chunks: []Chunk{{Name: [4]byte{'G', 'E', 'N', '8'}}},
		GEN8:   minimalGEN8(),
	}
	require.NoError(t, Encode(w, dir))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	decoded, err := Decode(r)
	require.NoError(t, err)
	for _, c := range decoded.Chunks {
		require.Equal(t, c.EndOffset-c.StartOffset, int64(c.Length))
	}
}

func TestUnknownChunkIsRetainedVerbatim(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	dir := &Directory{
		Chunks:  []Chunk{{Name: [4]byte{'Z', 'Z', 'Z', 'Z'}}},
		unknown: map[[4]byte][]byte{{'Z', 'Z', 'Z', 'Z'}: []byte("payload")},
	}
	require.NoError(t, Encode(w, dir))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	decoded, err := Decode(r)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), decoded.unknown[[4]byte{'Z', 'Z', 'Z', 'Z'}])
}

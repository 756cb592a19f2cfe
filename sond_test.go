package clovy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSoundLegacyDialectHasPreloadNoGroupID(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	w.Version.FormatID = 9
	s := Sound{
		Name:    []byte("explosion"),
		Kind:    []byte(".wav"),
		File:    []byte("explosion.wav"),
		Volume:  1,
		Pitch:   1,
		AudioID: 3,
		Preload: true,
	}
	require.NoError(t, encodeSound(w, s))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	r.Version.FormatID = 9
	require.NoError(t, r.SeekTo(0))
	got, err := decodeSound(r)
	require.NoError(t, err)
	require.Equal(t, int32(-1), got.GroupID)
	require.True(t, got.HasPreload)
	require.True(t, got.Preload)
	require.Equal(t, int32(3), got.AudioID)
}

func TestSoundModernDialectHasGroupIDNoPreload(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	w.Version.FormatID = 14
	s := Sound{
		Name:    []byte("music"),
		Kind:    []byte(".ogg"),
		File:    []byte("music.ogg"),
		Volume:  1,
		Pitch:   1,
		GroupID: 2,
		AudioID: 5,
	}
	require.NoError(t, encodeSound(w, s))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	r.Version.FormatID = 14
	require.NoError(t, r.SeekTo(0))
	got, err := decodeSound(r)
	require.NoError(t, err)
	require.Equal(t, int32(2), got.GroupID)
	require.False(t, got.HasPreload)
	require.Equal(t, int32(5), got.AudioID)
}

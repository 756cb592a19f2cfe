package clovy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsBitFlagDialectSelectedBySentinel(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	o := &Options{
		BitFlagDialect: true,
		OptionsFlags:   0x1234,
		Scale:          1,
	}
	require.NoError(t, encodeOptions(w, o))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	decoded, err := decodeOptions(r)
	require.NoError(t, err)
	require.True(t, decoded.BitFlagDialect)
	require.Equal(t, uint64(0x1234), decoded.OptionsFlags)
}

func TestOptionsLegacyDialectRoundTripsSplashFields(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	o := &Options{
		BitFlagDialect:  false,
		SplashBackImage: true,
		SplashFrontImage: false,
		SplashLoadImage: true,
		Priority:        7,
	}
	require.NoError(t, encodeOptions(w, o))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	decoded, err := decodeOptions(r)
	require.NoError(t, err)
	require.False(t, decoded.BitFlagDialect)
	require.True(t, decoded.SplashBackImage)
	require.False(t, decoded.SplashFrontImage)
	require.True(t, decoded.SplashLoadImage)
	require.Equal(t, int32(7), decoded.Priority)
}

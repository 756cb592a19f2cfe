package clovy

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultFontPaddingMatchesConcreteScenario(t *testing.T) {
	padding := defaultFontPadding()
	require.Len(t, padding, 512)
	for i := 0; i < 128; i++ {
		require.Equal(t, uint16(i), binary.LittleEndian.Uint16(padding[i*2:]))
	}
	for i := 128; i < 256; i++ {
		require.Equal(t, uint16(0x3f), binary.LittleEndian.Uint16(padding[i*2:]))
	}
}

func TestEncodeFontPaddingDefaultsWhenAbsent(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	require.NoError(t, encodeFontPadding(w, nil))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	got, err := decodeFontPadding(r)
	require.NoError(t, err)
	require.Equal(t, defaultFontPadding(), got)
}

func TestFontRoundTrip(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	f := Font{
		Name:        []byte("Arial"),
		DisplayName: []byte("Arial Display"),
		Size:        12,
		Bold:        true,
		RangeStart:  32,
		RangeEnd:    127,
		TextureID:   0,
		ScaleX:      1,
		ScaleY:      1,
		Glyphs: []Glyph{
			{Character: 'A', X: 0, Y: 0, W: 8, H: 10, Kernings: []Kerning{{Other: 'V', Amount: -1}}},
			{Character: 'B', X: 8, Y: 0, W: 8, H: 10},
		},
	}
	require.NoError(t, encodeFont(w, f))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	decoded, err := decodeFont(r)
	require.NoError(t, err)
	require.Equal(t, "Arial", string(decoded.Name))
	require.Len(t, decoded.Glyphs, 2)
	require.Len(t, decoded.Glyphs[0].Kernings, 1)
	require.Equal(t, int16(-1), decoded.Glyphs[0].Kernings[0].Amount)
}

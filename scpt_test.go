package clovy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptConstructorBitRoundTrip(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	scripts := []Script{
		{Name: []byte("normal_script"), CodeID: 42, Constructor: false},
		{Name: []byte("ctor_script"), CodeID: 7, Constructor: true},
	}
	for _, s := range scripts {
		require.NoError(t, encodeScript(w, s))
	}
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	for _, want := range scripts {
		got, err := decodeScript(r)
		require.NoError(t, err)
		require.Equal(t, string(want.Name), string(got.Name))
		require.Equal(t, want.CodeID, got.CodeID)
		require.Equal(t, want.Constructor, got.Constructor)
	}
}

func TestScriptNonConstructorNegativeOneIsNotConstructor(t *testing.T) {
	buf := newSeekBuffer()
	w := NewWriter(buf)
	s := Script{Name: []byte("no_code"), CodeID: -1, Constructor: false}
	require.NoError(t, encodeScript(w, s))
	require.NoError(t, w.Finalize())

	r := NewReader(buf)
	require.NoError(t, r.SeekTo(0))
	got, err := decodeScript(r)
	require.NoError(t, err)
	require.False(t, got.Constructor)
	require.Equal(t, int32(-1), got.CodeID)
}

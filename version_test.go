package clovy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionInfoSetIsMonotone(t *testing.T) {
	v := NewVersionInfo()
	v.Set(2, 0, 0, 0)
	v.Set(1, 9, 9, 9999)
	assert.Equal(t, int32(2), v.Major)
	assert.Equal(t, int32(0), v.Minor)
	assert.Equal(t, int32(0), v.Release)
	assert.Equal(t, int32(0), v.Build)
}

func TestVersionInfoSetTakesLexicographicMax(t *testing.T) {
	v := NewVersionInfo()
	v.Set(1, 0, 0, 0)
	v.Set(1, 0, 0, 5000)
	v.Set(1, 0, 0, 100)
	require.Equal(t, int32(5000), v.Build)
}

func TestVersionInfoAtLeast(t *testing.T) {
	v := NewVersionInfo()
	v.Set(2, 3, 0, 0)
	assert.True(t, v.AtLeast(2, 3, 0, 0))
	assert.True(t, v.AtLeast(2, 0, 0, 0))
	assert.False(t, v.AtLeast(2, 3, 0, 1))
	assert.False(t, v.AtLeast(2022, 6, 0, 0))
}

func TestBuiltinAudioGroupID(t *testing.T) {
	v := NewVersionInfo()
	v.Set(2, 3, 0, 0)
	assert.Equal(t, int32(0), v.BuiltinAudioGroupID)

	legacy := NewVersionInfo()
	legacy.Set(1, 0, 0, 100)
	assert.Equal(t, int32(1), legacy.BuiltinAudioGroupID)

	modern1x := NewVersionInfo()
	modern1x.Set(1, 0, 0, 1354)
	assert.Equal(t, int32(0), modern1x.BuiltinAudioGroupID)
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWavelengthMasks(t *testing.T) {
	masks, err := parseWavelengthMasks([]string{"5570:5585", "6295:6310"})
	require.NoError(t, err)
	require.Len(t, masks, 2)
	assert.Equal(t, [2]float64{5570, 5585}, masks[0])
	assert.Equal(t, [2]float64{6295, 6310}, masks[1])
}

func TestParseWavelengthMasksEmpty(t *testing.T) {
	masks, err := parseWavelengthMasks(nil)
	require.NoError(t, err)
	assert.Nil(t, masks)
}

func TestParseWavelengthMasksInvalid(t *testing.T) {
	_, err := parseWavelengthMasks([]string{"not-a-range"})
	require.Error(t, err)
}

func TestExitCodeMapping(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
}

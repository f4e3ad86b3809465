package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainRows(t *testing.T) {
	rows := explainRows("שָׁ״a")
	require.Len(t, rows, 6)
	assert.Equal(t, explainHeader, rows[0])
	assert.Equal(t, []string{"U+05E9", "ש", "letter", "SHIN", "0", "", ""}, rows[1])
	assert.Equal(t, []string{"U+05B8", "◌ָ", "diacritic", "QAMATS", "18", "x", "x"}, rows[2])
	assert.Equal(t, []string{"U+05C1", "◌ׁ", "diacritic", "SHIN DOT", "24", "x", "x"}, rows[3])
	assert.Equal(t, []string{"U+05F4", "״", "special", "PUNCTUATION GERSHAYIM", "0", "", "x"}, rows[4])
	assert.Equal(t, []string{"U+0061", "a", "other", "", "0", "", ""}, rows[5])
}

func TestExplainEmpty(t *testing.T) {
	assert.Len(t, explainRows(""), 1)
}

func TestParseCodepoints(t *testing.T) {
	runes, err := parseCodepoints("U+05D0, 0x05B8 5f4")
	require.NoError(t, err)
	assert.Equal(t, []rune{0x05D0, 0x05B8, 0x05F4}, runes)

	_, err = parseCodepoints("U+XYZ")
	assert.Error(t, err)
	_, err = parseCodepoints("U+D800")
	assert.Error(t, err)
	_, err = parseCodepoints("U+110000")
	assert.Error(t, err)
}

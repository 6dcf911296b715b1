package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUBANUM63/Connect-Four/engine"
)

func TestParseDimensions(t *testing.T) {
	valid := map[string][2]int{
		"":            {6, 7},
		"5x5":         {5, 5},
		"9 X 8":       {9, 8},
		"  6 x  9  ":  {6, 9},
		"15 x 7":      {15, 7},
		"7\tx\t5":     {7, 5},
		"05 x 005":    {5, 5},
		"4 x 20":      {4, 20},
		"1234 x 1234": {1234, 1234},
	}
	for in, want := range valid {
		rows, cols, err := parseDimensions(in)
		require.NoError(t, err, "%q", in)
		assert.Equal(t, want, [2]int{rows, cols}, "%q", in)
	}

	for _, in := range []string{" ", "6", "6x", "x7", "6 * 7", "a x b", "-6 x 7", "6 x 7 x 8"} {
		_, _, err := parseDimensions(in)
		assert.ErrorIs(t, err, errMalformed, "%q", in)
	}
}

func TestParseGames(t *testing.T) {
	n, err := parseGames("")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = parseGames("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = parseGames("0")
	assert.ErrorIs(t, err, engine.ErrInvalidGameCount)

	for _, in := range []string{"-1", "two", " 2", "2.5", "99999999999999999999999"} {
		_, err := parseGames(in)
		assert.ErrorIs(t, err, errMalformed, "%q", in)
	}
}

func TestParseColumn(t *testing.T) {
	col, err := parseColumn("1")
	require.NoError(t, err)
	assert.Equal(t, 0, col)

	col, err = parseColumn("0")
	require.NoError(t, err)
	assert.Equal(t, -1, col)

	_, err = parseColumn("99999999999999999999999")
	assert.ErrorIs(t, err, engine.ErrInvalidColumn)

	for _, in := range []string{"", "a", "-1", "1 ", "end!"} {
		_, err := parseColumn(in)
		assert.ErrorIs(t, err, errMalformed, "%q", in)
	}
}

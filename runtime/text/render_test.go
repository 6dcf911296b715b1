package text

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUBANUM63/Connect-Four/engine"
)

func TestDump(t *testing.T) {
	t.Run("Empty default board", func(t *testing.T) {
		b, err := engine.NewBoard(engine.DefaultRows, engine.DefaultCols)
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		Dump(buf, b)

		assert.Equal(t, ""+
			" 1 2 3 4 5 6 7\n"+
			"║ ║ ║ ║ ║ ║ ║ ║\n"+
			"║ ║ ║ ║ ║ ║ ║ ║\n"+
			"║ ║ ║ ║ ║ ║ ║ ║\n"+
			"║ ║ ║ ║ ║ ║ ║ ║\n"+
			"║ ║ ║ ║ ║ ║ ║ ║\n"+
			"║ ║ ║ ║ ║ ║ ║ ║\n"+
			"╚═╩═╩═╩═╩═╩═╩═╝\n", buf.String())
	})

	t.Run("Tokens are drawn bottom up", func(t *testing.T) {
		// Given: a 5x5 board with a few tokens
		b, err := engine.NewBoard(5, 5)
		require.NoError(t, err)
		for _, m := range []struct {
			col   int
			token engine.Token
		}{{0, engine.Circle}, {0, engine.Star}, {4, engine.Circle}} {
			_, err := b.Place(m.col, m.token)
			require.NoError(t, err)
		}

		// When: dumping it
		buf := &bytes.Buffer{}
		Dump(buf, b)

		// Then: row 0 is the last line before the footer
		assert.Equal(t, ""+
			" 1 2 3 4 5\n"+
			"║ ║ ║ ║ ║ ║\n"+
			"║ ║ ║ ║ ║ ║\n"+
			"║ ║ ║ ║ ║ ║\n"+
			"║*║ ║ ║ ║ ║\n"+
			"║o║ ║ ║ ║o║\n"+
			"╚═╩═╩═╩═╩═╝\n", buf.String())
	})
}

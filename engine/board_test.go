package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot copies the board cells.
func snapshot(b *Board) [][]Token {
	ret := make([][]Token, len(b.cells))
	for i, column := range b.cells {
		ret[i] = append([]Token(nil), column...)
	}
	return ret
}

func TestNewBoard(t *testing.T) {
	t.Run("Default board is empty", func(t *testing.T) {
		// When: creating a default board
		b, err := NewBoard(DefaultRows, DefaultCols)
		require.NoError(t, err)

		// Then: the dimensions are kept and every cell is empty
		assert.Equal(t, 6, b.Rows())
		assert.Equal(t, 7, b.Columns())
		for col := 0; col < b.Columns(); col++ {
			for row := 0; row < b.Rows(); row++ {
				require.Equal(t, Empty, b.CellAt(col, row))
			}
		}
		assert.False(t, b.IsFull())
	})

	t.Run("Bounds are accepted", func(t *testing.T) {
		for _, dims := range [][2]int{{5, 5}, {9, 9}, {5, 9}, {9, 5}} {
			_, err := NewBoard(dims[0], dims[1])
			require.NoError(t, err, "%dx%d", dims[0], dims[1])
		}
	})

	t.Run("Rows below minimum", func(t *testing.T) {
		// When: creating a board with 4 rows
		b, err := NewBoard(4, 7)

		// Then: ErrInvalidDimension is returned
		require.ErrorIs(t, err, ErrInvalidDimension)
		assert.Nil(t, b)
	})

	t.Run("Columns above maximum", func(t *testing.T) {
		_, err := NewBoard(6, 10)
		require.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Column fills bottom up", func(t *testing.T) {
		// Given: an empty board
		b, err := NewBoard(6, 7)
		require.NoError(t, err)

		// When: placing tokens in the same column
		for n := 1; n <= b.Rows(); n++ {
			row, err := b.Place(2, Circle)
			require.NoError(t, err)

			// Then: the Nth placement lands on row N-1
			require.Equal(t, n-1, row)
			require.Equal(t, Circle, b.CellAt(2, n-1))
		}
	})

	t.Run("Full column is rejected without change", func(t *testing.T) {
		// Given: a board with a full column
		b, err := NewBoard(5, 5)
		require.NoError(t, err)
		for i := 0; i < b.Rows(); i++ {
			_, err := b.Place(0, Tokens[i%2])
			require.NoError(t, err)
		}
		_, err = b.Place(3, Star)
		require.NoError(t, err)
		before := snapshot(b)

		// When: placing in the full column
		row, err := b.Place(0, Circle)

		// Then: ErrColumnFull is returned and no cell changed
		require.ErrorIs(t, err, ErrColumnFull)
		assert.Equal(t, FullColumn, row)
		assert.Equal(t, before, snapshot(b))
	})

	t.Run("Invalid column", func(t *testing.T) {
		b, err := NewBoard(6, 7)
		require.NoError(t, err)

		for _, col := range []int{-1, 7, 100} {
			_, err := b.Place(col, Circle)
			require.ErrorIs(t, err, ErrInvalidColumn)
		}
		assert.Equal(t, snapshot(&Board{cells: make2D(7, 6)}), snapshot(b))
	})

	t.Run("Empty is not a token", func(t *testing.T) {
		b, err := NewBoard(6, 7)
		require.NoError(t, err)

		_, err = b.Place(0, Empty)
		require.ErrorIs(t, err, ErrInvalidToken)
		assert.Equal(t, Empty, b.CellAt(0, 0))
	})
}

func TestBoard_LowestEmptyRow(t *testing.T) {
	b, err := NewBoard(5, 6)
	require.NoError(t, err)

	row, err := b.LowestEmptyRow(1)
	require.NoError(t, err)
	assert.Equal(t, 0, row)

	for i := 0; i < 5; i++ {
		_, err := b.Place(1, Star)
		require.NoError(t, err)
	}
	row, err = b.LowestEmptyRow(1)
	require.NoError(t, err)
	assert.Equal(t, FullColumn, row)

	_, err = b.LowestEmptyRow(6)
	require.ErrorIs(t, err, ErrInvalidColumn)
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a 5x5 board
	b, err := NewBoard(5, 5)
	require.NoError(t, err)

	// When: filling every column but the last cell
	for col := 0; col < 5; col++ {
		for row := 0; row < 5; row++ {
			if col == 4 && row == 4 {
				continue
			}
			_, err := b.Place(col, Tokens[(col+row)%2])
			require.NoError(t, err)
		}
	}

	// Then: the board is not full until the last column is
	assert.False(t, b.IsFull())
	_, err = b.Place(4, Circle)
	require.NoError(t, err)
	assert.True(t, b.IsFull())
}

func TestBoard_CellAtOutOfBounds(t *testing.T) {
	b, err := NewBoard(5, 5)
	require.NoError(t, err)
	_, err = b.Place(0, Circle)
	require.NoError(t, err)

	assert.Equal(t, Circle, b.CellAt(0, 0))
	assert.Equal(t, Empty, b.CellAt(-1, 0))
	assert.Equal(t, Empty, b.CellAt(0, 5))
}

func make2D(cols, rows int) [][]Token {
	ret := make([][]Token, cols)
	for i := range ret {
		ret[i] = make([]Token, rows)
	}
	return ret
}

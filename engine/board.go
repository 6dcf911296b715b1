package engine

import (
	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrInvalidDimension = errors.New("invalid board dimension")
	ErrInvalidColumn    = errors.New("invalid column")
	ErrColumnFull       = errors.New("column is full")
	ErrInvalidToken     = errors.New("invalid token")
)

// Board limits and defaults.
const (
	MinSize     = 5
	MaxSize     = 9
	DefaultRows = 6
	DefaultCols = 7
)

// FullColumn is returned by LowestEmptyRow when the column has no room left.
const FullColumn = -1

// Board holds the cells of a single game.
// Cells are stored column major, row 0 being the bottom of the column.
type Board struct {
	cells [][]Token
	rows  int
	cols  int
}

// ValidateDimensions checks that rows and cols are within [MinSize, MaxSize].
func ValidateDimensions(rows, cols int) error {
	if rows < MinSize || rows > MaxSize {
		return errors.Wrapf(ErrInvalidDimension, "rows should be from %d to %d, got %d", MinSize, MaxSize, rows)
	}
	if cols < MinSize || cols > MaxSize {
		return errors.Wrapf(ErrInvalidDimension, "columns should be from %d to %d, got %d", MinSize, MaxSize, cols)
	}
	return nil
}

// NewBoard instantiates an empty board.
func NewBoard(rows, cols int) (*Board, error) {
	if err := ValidateDimensions(rows, cols); err != nil {
		return nil, err
	}
	cells := make([][]Token, cols)
	for i := range cells {
		cells[i] = make([]Token, rows)
	}
	return &Board{
		cells: cells,
		rows:  rows,
		cols:  cols,
	}, nil
}

// Rows returns the height of the board.
func (b *Board) Rows() int { return b.rows }

// Columns returns the width of the board.
func (b *Board) Columns() int { return b.cols }

// CellAt returns the content of the cell at col/row.
// Out of bounds positions read as Empty.
func (b *Board) CellAt(col, row int) Token {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return Empty
	}
	return b.cells[col][row]
}

// LowestEmptyRow returns the first free row of the column, from the bottom,
// or FullColumn.
func (b *Board) LowestEmptyRow(col int) (int, error) {
	if col < 0 || col >= b.cols {
		return FullColumn, errors.Wrapf(ErrInvalidColumn, "column %d out of range [0, %d)", col, b.cols)
	}
	for row, t := range b.cells[col] {
		if t == Empty {
			return row, nil
		}
	}
	return FullColumn, nil
}

// Place drops the token in the given column and returns the row it landed on.
// On error, the board is left untouched.
func (b *Board) Place(col int, t Token) (int, error) {
	if !t.Valid() {
		return FullColumn, errors.Wrapf(ErrInvalidToken, "token %d", t)
	}
	row, err := b.LowestEmptyRow(col)
	if err != nil {
		return FullColumn, err
	}
	if row == FullColumn {
		return FullColumn, errors.Wrapf(ErrColumnFull, "column %d", col)
	}
	b.cells[col][row] = t
	return row, nil
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for _, column := range b.cells {
		for _, t := range column {
			if t == Empty {
				return false
			}
		}
	}
	return true
}

package engine

// LineLength is the number of aligned tokens needed to win.
const LineLength = 4

// Cell is a position on the board.
type Cell struct {
	Col int
	Row int
}

// direction is a step between two consecutive cells of a line.
type direction struct {
	colStep   int
	rowStep   int
	firstRow  int // First start row keeping the line on the board.
	topMargin int // Rows to leave above the start row.
}

// directions lists the four line orientations, in scan order.
var directions = []direction{
	{colStep: 0, rowStep: 1, firstRow: 0, topMargin: LineLength - 1},
	{colStep: 1, rowStep: 0, firstRow: 0, topMargin: 0},
	{colStep: 1, rowStep: 1, firstRow: 0, topMargin: LineLength - 1},
	{colStep: 1, rowStep: -1, firstRow: LineLength - 1, topMargin: 0},
}

// HasWinningLine scans the whole board for LineLength aligned cells
// holding the given token.
func HasWinningLine(b *Board, t Token) bool {
	_, ok := WinningLine(b, t)
	return ok
}

// WinningLine returns the first winning line found for the token.
func WinningLine(b *Board, t Token) ([]Cell, bool) {
	if !t.Valid() {
		return nil, false
	}
	for _, dir := range directions {
		if line, ok := b.scanDirection(dir, t); ok {
			return line, true
		}
	}
	return nil, false
}

// scanDirection tries every start cell from which a full line in the given
// direction stays on the board.
func (b *Board) scanDirection(dir direction, t Token) ([]Cell, bool) {
	lastCol := b.cols - 1 - dir.colStep*(LineLength-1)
	lastRow := b.rows - 1 - dir.topMargin
	for col := 0; col <= lastCol; col++ {
		for row := dir.firstRow; row <= lastRow; row++ {
			if b.checkLine(col, row, dir, t) {
				line := make([]Cell, LineLength)
				for i := range line {
					line[i] = Cell{Col: col + i*dir.colStep, Row: row + i*dir.rowStep}
				}
				return line, true
			}
		}
	}
	return nil, false
}

// checkLine checks the LineLength cells starting at col/row.
func (b *Board) checkLine(col, row int, dir direction, t Token) bool {
	for i := 0; i < LineLength; i++ {
		if b.cells[col+i*dir.colStep][row+i*dir.rowStep] != t {
			return false
		}
	}
	return true
}

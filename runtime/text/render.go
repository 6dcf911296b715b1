package text

import (
	"io"
	"strconv"
	"strings"

	"github.com/SUBANUM63/Connect-Four/engine"
)

// Dump displays the state of the board on the given writer,
// top row first.
//
// Sample output for a 5x5 board:
//
//	 1 2 3 4 5
//	║ ║ ║ ║ ║ ║
//	║ ║ ║ ║ ║ ║
//	║ ║ ║ ║ ║ ║
//	║*║ ║ ║ ║ ║
//	║o║ ║ ║ ║o║
//	╚═╩═╩═╩═╩═╝
func Dump(w io.Writer, b *engine.Board) {
	var sb strings.Builder

	for col := 1; col <= b.Columns(); col++ {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(col))
	}
	sb.WriteByte('\n')

	for row := b.Rows() - 1; row >= 0; row-- {
		sb.WriteRune('║')
		for col := 0; col < b.Columns(); col++ {
			sb.WriteRune(b.CellAt(col, row).Rune())
			sb.WriteRune('║')
		}
		sb.WriteByte('\n')
	}

	sb.WriteRune('╚')
	sb.WriteString(strings.Repeat("═╩", b.Columns()-1))
	sb.WriteString("═╝\n")

	_, _ = io.WriteString(w, sb.String())
}

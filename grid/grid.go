// Package grid draws a board of cells in the terminal and dispatches
// keyboard events.
package grid

import (
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrTerminalTooSmall = errors.New("terminal too small")
)

const defCol = termbox.ColorDefault

// KeyHandler associates a key with a callback.
type KeyHandler struct {
	Key termbox.Key
	Fct func(*Grid)
}

// Grid holds the data for the terminal grid.
// Cell 0,0 is the top left one.
//
// Sample output for a 2 rows 3 columns grid:
//
//	┌─┬─┬─┐
//	│ │ │ │
//	├─┼─┼─┤
//	│ │ │ │
//	└─┴─┴─┘
type Grid struct {
	// Dimensions.
	Height int
	Width  int

	// Lines reserved at the top of the screen.
	HeaderHeight int
	HeaderFct    func(*Grid)

	// CellFct returns the content of a cell, used when redrawing.
	CellFct func(x, y int) (rune, termbox.Attribute)

	// Internal controls.
	stopChan    chan struct{}
	keyHandlers []*KeyHandler
}

// NewGrid initialize the terminal and the grid.
// Should be closed by the caller.
func NewGrid(h, w int) (*Grid, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "error initializing the terminal")
	}
	termbox.SetInputMode(termbox.InputEsc)

	return &Grid{
		Height:   h,
		Width:    w,
		stopChan: make(chan struct{}),
	}, nil
}

// frameRune returns the frame character at x/y, relative to the top left
// corner of a w*h cells frame. Cell interiors are blank.
func frameRune(x, y, w, h int) rune {
	lastX, lastY := 2*w, 2*h
	switch {
	case x%2 == 1 && y%2 == 1:
		return ' '
	case y%2 == 1:
		return '│'
	case x%2 == 1:
		return '─'
	}

	// Junctions, picked from a 3x3 table: top/middle/bottom by left/middle/right.
	junctions := [3][3]rune{
		{'┌', '┬', '┐'},
		{'├', '┼', '┤'},
		{'└', '┴', '┘'},
	}
	line, column := 1, 1
	if y == 0 {
		line = 0
	} else if y == lastY {
		line = 2
	}
	if x == 0 {
		column = 0
	} else if x == lastX {
		column = 2
	}
	return junctions[line][column]
}

// cellPosition returns the screen position of the cell x/y.
func (g *Grid) cellPosition(x, y int) (int, int) {
	return 1 + 2*x, g.HeaderHeight + 1 + 2*y
}

// RedrawAll clears the terminal and redraws the header, the frame and the cells.
func (g *Grid) RedrawAll() error {
	if err := termbox.Clear(defCol, defCol); err != nil {
		return errors.Wrap(err, "error clearing the terminal")
	}

	// Make sure we have enough space.
	if w, h := termbox.Size(); g.Width*2+1 > w || g.Height*2+1 > h-g.HeaderHeight {
		return errors.Wrapf(ErrTerminalTooSmall, "need %dx%d, have %dx%d", g.Width*2+1, g.Height*2+1+g.HeaderHeight, w, h)
	}

	for y := 0; y <= 2*g.Height; y++ {
		for x := 0; x <= 2*g.Width; x++ {
			termbox.SetCell(x, g.HeaderHeight+y, frameRune(x, y, g.Width, g.Height), defCol, defCol)
		}
	}
	if g.CellFct != nil {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				ch, fg := g.CellFct(x, y)
				g.setCell(x, y, ch, fg)
			}
		}
	}
	if g.HeaderFct != nil {
		g.HeaderFct(g)
	}
	return errors.Wrap(termbox.Flush(), "error flushing the terminal")
}

func (g *Grid) setCell(x, y int, ch rune, fg termbox.Attribute) {
	sx, sy := g.cellPosition(x, y)
	termbox.SetCell(sx, sy, ch, fg, defCol)
}

// SetCell draws a single cell and flushes the terminal.
func (g *Grid) SetCell(x, y int, ch rune, fg termbox.Attribute) {
	g.setCell(x, y, ch, fg)
	_ = termbox.Flush()
}

// SetCursor sets the cursor on the given cell and flushes the terminal.
func (g *Grid) SetCursor(x, y int) {
	termbox.SetCursor(g.cellPosition(x, y))
	_ = termbox.Flush()
}

// PrintHeader replaces the header content with the given lines.
// Extra lines are dropped.
func (g *Grid) PrintHeader(lines ...string) {
	g.ClearHeader()
	for y, line := range lines {
		if y >= g.HeaderHeight {
			break
		}
		x := 0
		for _, ch := range line {
			termbox.SetCell(x, y, ch, defCol, defCol)
			x++
		}
	}
	_ = termbox.Flush()
}

// ClearHeader blanks the header lines.
func (g *Grid) ClearHeader() {
	w, _ := termbox.Size()
	for y := 0; y < g.HeaderHeight; y++ {
		for x := 0; x < w; x++ {
			termbox.SetCell(x, y, ' ', defCol, defCol)
		}
	}
}

// RegisterKeyHandler adds a handler for the given key.
// Returns a pointer to the handler, needed to unregister.
func (g *Grid) RegisterKeyHandler(key termbox.Key, fct func(*Grid)) *KeyHandler {
	hdlr := &KeyHandler{Key: key, Fct: fct}
	g.keyHandlers = append(g.keyHandlers, hdlr)
	return hdlr
}

// UnregisterKeyHandler removes the given handler from the list.
func (g *Grid) UnregisterKeyHandler(hdlr *KeyHandler) {
	for i, elem := range g.keyHandlers {
		if elem == hdlr {
			g.keyHandlers = append(g.keyHandlers[:i], g.keyHandlers[i+1:]...)
			return
		}
	}
}

// dispatch calls the handlers registered for the key event.
// Printable keys come with a zero Key and the character in ch.
// Handlers registered while dispatching wait for the next event.
func (g *Grid) dispatch(key termbox.Key, ch rune) {
	var matching []*KeyHandler
	for _, hdlr := range g.keyHandlers {
		if key == hdlr.Key || (key == 0 && ch == rune(hdlr.Key)) {
			matching = append(matching, hdlr)
		}
	}
	for _, hdlr := range matching {
		hdlr.Fct(g)
	}
}

// HandleKeyboard is the runtime loop monitoring keyboard activity.
// Esc, Ctrl-C and Ctrl-\ leave the loop.
func (g *Grid) HandleKeyboard() error {
	for {
		select {
		case <-g.stopChan:
			return nil
		default:
		}

		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			switch ev.Key {
			case termbox.KeyEsc, termbox.KeyCtrlC, termbox.KeyCtrlBackslash:
				return nil
			}
			g.dispatch(ev.Key, ev.Ch)
		case termbox.EventResize:
			if err := g.RedrawAll(); err != nil {
				return err
			}
		case termbox.EventError:
			return errors.Wrap(ev.Err, "error with the terminal")
		}
	}
}

// Close terminates the runtime loop and restores the terminal.
func (g *Grid) Close() error {
	select {
	case <-g.stopChan:
	default:
		termbox.Close()
		close(g.stopChan)
	}
	return nil
}

package terminal

import (
	"fmt"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/SUBANUM63/Connect-Four/engine"
	"github.com/SUBANUM63/Connect-Four/grid"
	"github.com/SUBANUM63/Connect-Four/runtime"
)

func init() {
	runtime.Runtimes["terminal"] = &Runtime{}
}

// Delay between two frames of the falling token.
const fallDelay = 50 * time.Millisecond

// Runtime is a termbox player for connect four.
type Runtime struct {
	session *engine.Session
	game    *engine.Game
	grid    *grid.Grid
	log     logrus.FieldLogger

	cursorX   int                // Current column.
	enterKeys []*grid.KeyHandler // Enter and Space, bound to the current action.
}

// tokenColor returns the terminal color of a token.
func tokenColor(t engine.Token) termbox.Attribute {
	switch t {
	case engine.Circle:
		return termbox.ColorRed | termbox.AttrBold
	case engine.Star:
		return termbox.ColorYellow | termbox.AttrBold
	default:
		return termbox.ColorDefault
	}
}

// screenRow converts a board row, counted from the bottom, to a grid line.
func (tf *Runtime) screenRow(row int) int {
	return tf.session.Rows() - 1 - row
}

// Init creates the session from the config and initializes the termbox grid.
func (tf *Runtime) Init(opts runtime.Options) error {
	if opts.Config == nil {
		return errors.New("terminal runtime needs a config")
	}
	conf := opts.Config
	tf.log = opts.Logger
	if tf.log == nil {
		tf.log = logrus.StandardLogger()
	}

	session, err := engine.NewSession(conf.FirstPlayer, conf.SecondPlayer, conf.Rows, conf.Columns, conf.Games)
	if err != nil {
		return errors.Wrap(err, "error starting the session")
	}
	tf.session = session

	// Initialize new termbox grid.
	g, err := grid.NewGrid(conf.Rows, conf.Columns)
	if err != nil {
		return errors.Wrap(err, "error initializing termcap grid")
	}
	tf.grid = g

	// Setup header and cell content.
	g.HeaderHeight = 3
	g.HeaderFct = tf.HeaderHandler
	g.CellFct = tf.cellContent

	// Register the key handlers.
	g.RegisterKeyHandler(termbox.KeyArrowLeft, tf.leftKeyHandler)
	g.RegisterKeyHandler(termbox.KeyCtrlB, tf.leftKeyHandler)
	g.RegisterKeyHandler(termbox.KeyArrowRight, tf.rightKeyHandler)
	g.RegisterKeyHandler(termbox.KeyCtrlF, tf.rightKeyHandler)
	g.RegisterKeyHandler('q', tf.quitHandler)
	g.RegisterKeyHandler(termbox.KeyCtrlL, func(g *grid.Grid) { _ = g.RedrawAll() })

	return nil
}

// Run starts the first game and the keyboard loop.
func (tf *Runtime) Run() error {
	tf.startGame(tf.grid)

	// First draw.
	if err := tf.grid.RedrawAll(); err != nil {
		return errors.Wrap(err, "error drawing grid")
	}
	// Start the runtime loop.
	if err := tf.grid.HandleKeyboard(); err != nil {
		return errors.Wrap(err, "runtime error")
	}

	// Leaving with Esc ends the running game.
	tf.endSession()
	return nil
}

// nextGame starts the next game of the session, if any.
func (tf *Runtime) nextGame() bool {
	game, ok := tf.session.Next()
	if !ok {
		return false
	}
	tf.game = game
	tf.cursorX = 0
	tf.log.WithFields(logrus.Fields{
		"game":  tf.session.GameNumber(),
		"first": tf.session.PlayerOf(game.Turn()).Name,
	}).Info("game started")
	return true
}

// startGame starts the next game and binds Enter to dropping tokens.
func (tf *Runtime) startGame(g *grid.Grid) bool {
	if !tf.nextGame() {
		return false
	}
	tf.bindEnter(g, tf.dropHandler)
	return true
}

// bindEnter routes Enter and Space to fct. A nil fct leaves them unbound.
func (tf *Runtime) bindEnter(g *grid.Grid, fct func(*grid.Grid)) {
	for _, hdlr := range tf.enterKeys {
		g.UnregisterKeyHandler(hdlr)
	}
	tf.enterKeys = nil
	if fct == nil {
		return
	}
	tf.enterKeys = []*grid.KeyHandler{
		g.RegisterKeyHandler(termbox.KeyEnter, fct),
		g.RegisterKeyHandler(termbox.KeySpace, fct),
	}
}

// endSession aborts the running game, if any, and stops the session.
func (tf *Runtime) endSession() {
	tf.session.End()
	if tf.game == nil || tf.game.Status().Terminal() {
		return
	}
	tf.game.Abort()
	if err := tf.session.Record(tf.game); err != nil {
		tf.log.WithError(err).Error("error recording the game")
	}
}

// cellContent returns the rune and color of a grid cell.
func (tf *Runtime) cellContent(x, y int) (rune, termbox.Attribute) {
	if tf.game == nil {
		return ' ', termbox.ColorDefault
	}
	t := tf.game.Board().CellAt(x, tf.screenRow(y))
	return t.Rune(), tokenColor(t)
}

// statusLines returns the header content.
func (tf *Runtime) statusLines() []string {
	p1, p2 := tf.session.Players[0], tf.session.Players[1]
	lines := []string{
		fmt.Sprintf("Game %d/%d  %s (%s) %d : %d %s (%s)",
			tf.session.GameNumber(), tf.session.Games(),
			p1.Name, p1.Token, p1.Score, p2.Score, p2.Name, p2.Token),
	}

	next := "ESC to exit"
	if !tf.session.Done() {
		next = "Enter for next game, ESC to exit"
	}
	switch tf.game.Status() {
	case engine.InProgress:
		p := tf.session.PlayerOf(tf.game.Turn())
		lines = append(lines, fmt.Sprintf("%s (%s) turn, select column (Enter or Space, q to end)", p.Name, p.Token))
	case engine.Won:
		p := tf.session.PlayerOf(tf.game.Winner())
		lines = append(lines, fmt.Sprintf("%s (%s) won! (%s)", p.Name, p.Token, next))
	case engine.Draw:
		lines = append(lines, fmt.Sprintf("It is a draw! (%s)", next))
	case engine.Aborted:
		lines = append(lines, "Game over! (ESC to exit)")
	}
	return lines
}

// HeaderHandler displays info in the header section of the grid.
func (tf *Runtime) HeaderHandler(g *grid.Grid) {
	g.PrintHeader(tf.statusLines()...)
	g.SetCursor(tf.cursorX, 0)
}

func (tf *Runtime) leftKeyHandler(g *grid.Grid) {
	if tf.cursorX > 0 {
		tf.cursorX--
	}
	g.SetCursor(tf.cursorX, 0)
}

func (tf *Runtime) rightKeyHandler(g *grid.Grid) {
	if tf.cursorX < g.Width-1 {
		tf.cursorX++
	}
	g.SetCursor(tf.cursorX, 0)
}

func (tf *Runtime) quitHandler(g *grid.Grid) {
	tf.endSession()
	_ = g.Close()
}

func (tf *Runtime) nextGameHandler(g *grid.Grid) {
	if tf.startGame(g) {
		_ = g.RedrawAll()
	}
}

func (tf *Runtime) dropHandler(g *grid.Grid) {
	player := tf.game.Turn()
	row, err := tf.game.Play(tf.cursorX)
	if err != nil {
		tf.log.WithError(err).WithField("column", tf.cursorX+1).Debug("move rejected")
		return
	}
	tf.log.WithFields(logrus.Fields{"column": tf.cursorX + 1, "row": row}).Debug("token placed")

	// Make it fall down to its row.
	target := tf.screenRow(row)
	for y := 0; y < target; y++ {
		g.SetCell(tf.cursorX, y, player.Rune(), tokenColor(player))
		time.Sleep(fallDelay)
		g.SetCell(tf.cursorX, y, ' ', termbox.ColorDefault)
	}
	g.SetCell(tf.cursorX, target, player.Rune(), tokenColor(player))

	if tf.game.Status().Terminal() {
		winner := tf.game.Winner()
		for _, c := range tf.finishGame(g) {
			g.SetCell(c.Col, tf.screenRow(c.Row), winner.Rune(), tokenColor(winner)|termbox.AttrReverse)
		}
	}
	g.PrintHeader(tf.statusLines()...)
	g.SetCursor(tf.cursorX, 0)
}

// finishGame records the result and binds Enter to the next game, if any.
// Returns the winning line, empty on a draw.
func (tf *Runtime) finishGame(g *grid.Grid) []engine.Cell {
	if tf.session.Done() {
		tf.bindEnter(g, nil)
	} else {
		tf.bindEnter(g, tf.nextGameHandler)
	}

	if err := tf.session.Record(tf.game); err != nil {
		tf.log.WithError(err).Error("error recording the game")
		return nil
	}
	tf.log.WithFields(logrus.Fields{
		"game":   tf.session.GameNumber(),
		"status": tf.game.Status().String(),
		"moves":  tf.game.Moves(),
	}).Info("game finished")

	line, _ := engine.WinningLine(tf.game.Board(), tf.game.Winner())
	return line
}

// Close cleans up the grid and terminal.
func (tf *Runtime) Close() error {
	if tf.grid == nil {
		return nil
	}
	return tf.grid.Close()
}

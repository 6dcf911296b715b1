package engine

import (
	"github.com/pkg/errors"
)

// ErrGameOver is returned when playing in a finished game.
var ErrGameOver = errors.New("game is over")

// Game holds the state of a single game.
type Game struct {
	board  *Board
	turn   Token
	status Status
	winner Token
	moves  int
}

// NewGame instantiates a new game opened by the given token.
func NewGame(rows, cols int, first Token) (*Game, error) {
	if !first.Valid() {
		return nil, errors.Wrapf(ErrInvalidToken, "first player token %d", first)
	}
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Game{
		board:  board,
		turn:   first,
		status: InProgress,
	}, nil
}

// Board returns the game board. Callers should treat it as read only.
func (g *Game) Board() *Board { return g.board }

// Turn returns the token expected to play next.
func (g *Game) Turn() Token { return g.turn }

// Status returns the current state of the game.
func (g *Game) Status() Status { return g.status }

// Winner returns the winning token, Empty unless the game is Won.
func (g *Game) Winner() Token { return g.winner }

// Moves returns the number of tokens placed so far.
func (g *Game) Moves() int { return g.moves }

// Play drops the current player's token in the given column and returns the
// row it landed on. The win check runs before the draw check.
func (g *Game) Play(col int) (int, error) {
	if g.status.Terminal() {
		return FullColumn, errors.Wrapf(ErrGameOver, "game is %s", g.status)
	}
	row, err := g.board.Place(col, g.turn)
	if err != nil {
		return FullColumn, err
	}
	g.moves++

	switch {
	case HasWinningLine(g.board, g.turn):
		g.status = Won
		g.winner = g.turn
	case g.board.IsFull():
		g.status = Draw
	default:
		g.turn = g.turn.Other()
	}
	return row, nil
}

// Abort ends the game without a result.
// Finished games keep their result.
func (g *Game) Abort() {
	if g.status.Terminal() {
		return
	}
	g.status = Aborted
}

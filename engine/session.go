package engine

import (
	"github.com/pkg/errors"
)

// Session errors.
var (
	ErrInvalidGameCount = errors.New("invalid number of games")
	ErrAlreadyRecorded  = errors.New("game already recorded")
)

// Points awarded at the end of a game.
const (
	WinPoints  = 2
	DrawPoints = 1
)

// Player is a participant of the session.
type Player struct {
	Name  string
	Token Token
	Score int
}

// Session chains the games played by the same two players
// and keeps their score.
type Session struct {
	Players [2]*Player

	rows  int
	cols  int
	games int

	gameNumber int
	recorded   int // Number of the last recorded game.
	ended      bool
}

// NewSession instantiates a session. The first player gets Circle,
// the second one Star.
func NewSession(first, second string, rows, cols, games int) (*Session, error) {
	if err := ValidateDimensions(rows, cols); err != nil {
		return nil, err
	}
	if games < 1 {
		return nil, errors.Wrapf(ErrInvalidGameCount, "%d", games)
	}
	return &Session{
		Players: [2]*Player{
			{Name: first, Token: Tokens[0]},
			{Name: second, Token: Tokens[1]},
		},
		rows:  rows,
		cols:  cols,
		games: games,
	}, nil
}

// Rows returns the height of the session boards.
func (s *Session) Rows() int { return s.rows }

// Columns returns the width of the session boards.
func (s *Session) Columns() int { return s.cols }

// Games returns the number of games planned.
func (s *Session) Games() int { return s.games }

// GameNumber returns the 1-based number of the current game, 0 before the first one.
func (s *Session) GameNumber() int { return s.gameNumber }

// Done reports whether no more games will be played.
func (s *Session) Done() bool {
	return s.ended || s.gameNumber >= s.games
}

// End stops the session, no further game will be started.
func (s *Session) End() {
	s.ended = true
}

// Next starts the next game. Odd games are opened by the first player,
// even ones by the second.
// Returns false once the session is done.
func (s *Session) Next() (*Game, bool) {
	if s.Done() {
		return nil, false
	}
	s.gameNumber++
	first := s.Players[(s.gameNumber-1)%2].Token
	game, err := NewGame(s.rows, s.cols, first)
	if err != nil {
		// Dimensions were validated by NewSession and cannot change.
		panic(errors.Wrap(err, "session dimensions"))
	}
	return game, true
}

// PlayerOf returns the player owning the token, nil for Empty.
func (s *Session) PlayerOf(t Token) *Player {
	for _, p := range s.Players {
		if p.Token == t {
			return p
		}
	}
	return nil
}

// Record updates the scores with the result of the current game.
// An aborted game leaves the scores untouched. Each game is recorded once.
func (s *Session) Record(g *Game) error {
	if s.recorded == s.gameNumber {
		return errors.Wrapf(ErrAlreadyRecorded, "game %d", s.gameNumber)
	}
	switch g.Status() {
	case Won:
		winner := s.PlayerOf(g.Winner())
		if winner == nil {
			return errors.Errorf("no player for winning token %d", g.Winner())
		}
		winner.Score += WinPoints
	case Draw:
		for _, p := range s.Players {
			p.Score += DrawPoints
		}
	case Aborted:
	default:
		return errors.Errorf("cannot record a game %s", g.Status())
	}
	s.recorded = s.gameNumber
	return nil
}

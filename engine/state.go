package engine

// Token is the enum type for the content of a board cell.
type Token int

// Cell contents. Empty is the zero value so a fresh board needs no init.
const (
	Empty Token = iota
	Circle
	Star
)

// Tokens is the list of player tokens, in seating order.
var Tokens = [2]Token{Circle, Star}

// Valid reports whether the token belongs to a player.
func (t Token) Valid() bool {
	return t == Circle || t == Star
}

// Other returns the opponent's token.
func (t Token) Other() Token {
	switch t {
	case Circle:
		return Star
	case Star:
		return Circle
	default:
		return Empty
	}
}

// Rune returns the character used to draw the token.
func (t Token) Rune() rune {
	switch t {
	case Circle:
		return 'o'
	case Star:
		return '*'
	default:
		return ' '
	}
}

func (t Token) String() string {
	return string(t.Rune())
}

// Status is the enum type for the state of a game.
type Status int

// Game states. Everything but InProgress is terminal.
const (
	InProgress Status = iota
	Won
	Draw
	Aborted
)

// Terminal reports whether no more moves can be played.
func (s Status) Terminal() bool {
	return s != InProgress
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Draw:
		return "draw"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

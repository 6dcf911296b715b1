package text

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"github.com/SUBANUM63/Connect-Four/engine"
)

// EndCommand aborts the current game.
const EndCommand = "end"

var (
	errMalformed = errors.New("malformed input")

	dimensionsRe = regexp.MustCompile(`^\s*(\d+)\s*[xX]\s*(\d+)\s*$`)
	numberRe     = regexp.MustCompile(`^\d+$`)
)

// parseDimensions reads a "Rows x Columns" string.
// An empty string selects the default board.
func parseDimensions(s string) (rows, cols int, err error) {
	if s == "" {
		return engine.DefaultRows, engine.DefaultCols, nil
	}
	m := dimensionsRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, errors.Wrapf(errMalformed, "dimensions %q", s)
	}
	if rows, err = strconv.Atoi(m[1]); err != nil {
		return 0, 0, errors.Wrapf(errMalformed, "rows %q", m[1])
	}
	if cols, err = strconv.Atoi(m[2]); err != nil {
		return 0, 0, errors.Wrapf(errMalformed, "columns %q", m[2])
	}
	return rows, cols, nil
}

// parseGames reads a number of games, 1 when empty.
func parseGames(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	if !numberRe.MatchString(s) {
		return 0, errors.Wrapf(errMalformed, "games %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(errMalformed, "games %q", s)
	}
	if n < 1 {
		return 0, errors.Wrapf(engine.ErrInvalidGameCount, "%d", n)
	}
	return n, nil
}

// parseColumn reads a 1-based column number and returns it 0-based.
// Range checks are left to the board.
func parseColumn(s string) (int, error) {
	if !numberRe.MatchString(s) {
		return 0, errors.Wrapf(errMalformed, "column %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Too many digits for an int.
		return 0, errors.Wrapf(engine.ErrInvalidColumn, "column %q", s)
	}
	return n - 1, nil
}

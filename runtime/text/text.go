package text

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/SUBANUM63/Connect-Four/engine"
	"github.com/SUBANUM63/Connect-Four/runtime"
)

func init() {
	runtime.Runtimes["text"] = &Runtime{}
}

// errStopped is returned by readLine once the input is exhausted or closed.
var errStopped = errors.New("input closed")

// Runtime is a line based console client for connect four.
type Runtime struct {
	out      io.Writer
	log      logrus.FieldLogger
	stopChan chan struct{}
	stopOnce sync.Once
	scanner  *bufio.Scanner
	r        *io.PipeReader
	w        *io.PipeWriter
}

// Init setup the console streams.
func (r *Runtime) Init(opts runtime.Options) error {
	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	r.out = out
	r.log = opts.Logger
	if r.log == nil {
		r.log = logrus.StandardLogger()
	}
	r.stopChan = make(chan struct{})

	// Setup the pipe to allow to interrupt the line reads.
	r.r, r.w = io.Pipe()
	r.scanner = bufio.NewScanner(r.r)
	go func(w *io.PipeWriter) {
		_, err := io.Copy(w, in)
		_ = w.CloseWithError(err)
	}(r.w)

	// Watch for signals so we are not stuck in the game forever.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func(stop <-chan struct{}) {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			r.log.WithField("signal", sig.String()).Info("interrupted")
			_ = r.Close()
		case <-stop:
		}
	}(r.stopChan)

	return nil
}

// Run asks for the session settings and plays every game.
func (r *Runtime) Run() error {
	if err := r.run(); err != nil {
		if errors.Cause(err) == errStopped {
			r.log.Debug("input closed, leaving")
			return nil
		}
		return err
	}
	return nil
}

func (r *Runtime) run() error {
	r.println("Connect Four")

	first, err := r.ask("First player's name:")
	if err != nil {
		return err
	}
	second, err := r.ask("Second player's name:")
	if err != nil {
		return err
	}
	rows, cols, err := r.askDimensions()
	if err != nil {
		return err
	}
	games, err := r.askGames()
	if err != nil {
		return err
	}

	session, err := engine.NewSession(first, second, rows, cols, games)
	if err != nil {
		return errors.Wrap(err, "error starting the session")
	}

	r.printf("%s VS %s\n", first, second)
	r.printf("%d X %d board\n", rows, cols)
	if games == 1 {
		r.println("Single game")
	} else {
		r.printf("Total %d games\n", games)
	}

	for {
		game, ok := session.Next()
		if !ok {
			break
		}
		if err := r.playGame(session, game); err != nil {
			return err
		}
	}

	r.log.WithFields(logrus.Fields{
		"games":        session.GameNumber(),
		"first_score":  session.Players[0].Score,
		"second_score": session.Players[1].Score,
	}).Info("session finished")
	r.println("Game over!")
	return nil
}

// playGame runs the turn loop of a single game and records its result.
func (r *Runtime) playGame(session *engine.Session, game *engine.Game) error {
	log := r.log.WithField("game", session.GameNumber())
	log.WithField("first", session.PlayerOf(game.Turn()).Name).Info("game started")

	if session.Games() > 1 {
		r.printf("Game #%d\n", session.GameNumber())
	}
	Dump(r.out, game.Board())

	for !game.Status().Terminal() {
		player := session.PlayerOf(game.Turn())

		line, err := r.ask(player.Name + "'s turn:")
		if err != nil {
			game.Abort()
			if rerr := session.Record(game); rerr != nil {
				log.WithError(errors.Wrap(rerr, "error recording the game")).Error("input lost")
			} else {
				log.WithFields(logrus.Fields{"status": game.Status().String(), "moves": game.Moves()}).Info("game finished")
			}
			session.End()
			return err
		}
		if line == EndCommand {
			game.Abort()
			break
		}

		col, err := parseColumn(line)
		if err == nil {
			var row int
			if row, err = game.Play(col); err == nil {
				log.WithFields(logrus.Fields{"player": player.Name, "column": col + 1, "row": row}).Debug("token placed")
				Dump(r.out, game.Board())
				continue
			}
		}
		switch errors.Cause(err) {
		case errMalformed:
			r.println("Incorrect column number")
		case engine.ErrInvalidColumn:
			r.printf("The column number is out of range (1 - %d)\n", session.Columns())
		case engine.ErrColumnFull:
			r.printf("Column %d is full\n", col+1)
		default:
			return errors.Wrap(err, "error playing move")
		}
	}

	if err := session.Record(game); err != nil {
		return errors.Wrap(err, "error recording the game")
	}
	log.WithFields(logrus.Fields{"status": game.Status().String(), "moves": game.Moves()}).Info("game finished")

	switch game.Status() {
	case engine.Won:
		r.printf("Player %s won\n", session.PlayerOf(game.Winner()).Name)
	case engine.Draw:
		r.println("It is a draw")
	default:
		// Ended by the player, the session goes on with the next game.
		r.println("Game over!")
		return nil
	}
	r.println("Score")
	p1, p2 := session.Players[0], session.Players[1]
	r.printf("%s: %d %s: %d\n", p1.Name, p1.Score, p2.Name, p2.Score)
	return nil
}

// askDimensions prompts until a valid board size is given.
func (r *Runtime) askDimensions() (int, int, error) {
	for {
		r.println("Set the board dimensions (Rows x Columns)")
		line, err := r.ask(fmt.Sprintf("Press Enter for default (%d x %d)", engine.DefaultRows, engine.DefaultCols))
		if err != nil {
			return 0, 0, err
		}
		rows, cols, err := parseDimensions(line)
		switch {
		case err != nil:
			r.println("Invalid input")
		case rows < engine.MinSize || rows > engine.MaxSize:
			r.printf("Board rows should be from %d to %d\n", engine.MinSize, engine.MaxSize)
		case cols < engine.MinSize || cols > engine.MaxSize:
			r.printf("Board columns should be from %d to %d\n", engine.MinSize, engine.MaxSize)
		default:
			return rows, cols, nil
		}
	}
}

// askGames prompts until a valid number of games is given.
func (r *Runtime) askGames() (int, error) {
	for {
		r.println("Do you want to play single or multiple games?")
		r.println("For a single game, input 1 or press Enter")
		line, err := r.ask("Input a number of games:")
		if err != nil {
			return 0, err
		}
		n, err := parseGames(line)
		if err != nil {
			r.println("Invalid input")
			continue
		}
		return n, nil
	}
}

// ask prints the prompt and reads the answer.
func (r *Runtime) ask(prompt string) (string, error) {
	r.println(prompt)
	return r.readLine()
}

func (r *Runtime) readLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "error reading input")
		}
		return "", errStopped
	}
	return r.scanner.Text(), nil
}

func (r *Runtime) println(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *Runtime) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

// Close interrupts the pending read.
func (r *Runtime) Close() error {
	r.stopOnce.Do(func() {
		_ = r.w.CloseWithError(io.EOF)
		close(r.stopChan)
	})
	return nil
}

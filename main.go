package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/SUBANUM63/Connect-Four/config"
	"github.com/SUBANUM63/Connect-Four/runtime"

	// Load runtimes.
	_ "github.com/SUBANUM63/Connect-Four/runtime/terminal"
	_ "github.com/SUBANUM63/Connect-Four/runtime/text"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	var (
		confPath = flag.String("config", "", "optional yaml config file")
		mode     = flag.String("mode", "", "Game mode. Values: [text, terminal] (default text)")
		rows     = flag.Int("rows", 0, "number of rows, terminal mode (default 6)")
		cols     = flag.Int("cols", 0, "number of columns, terminal mode (default 7)")
		games    = flag.Int("games", 0, "number of games, terminal mode (default 1)")
		first    = flag.String("p1", "", "first player name, terminal mode")
		second   = flag.String("p2", "", "second player name, terminal mode")
		logLevel = flag.String("log-level", "", "log level (default warn)")
	)
	flag.Parse()

	conf, err := config.Load(*confPath)
	if err != nil {
		log.WithError(err).Fatal("error loading config")
	}

	// Flags set on the command line win over the file and the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			conf.Mode = *mode
		case "rows":
			conf.Rows = *rows
		case "cols":
			conf.Columns = *cols
		case "games":
			conf.Games = *games
		case "p1":
			conf.FirstPlayer = *first
		case "p2":
			conf.SecondPlayer = *second
		case "log-level":
			conf.LogLevel = *logLevel
		}
	})
	if err := conf.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	run, exists := runtime.Runtimes[conf.Mode]
	if !exists {
		log.Fatalf("%s is not a valid runtime.", conf.Mode)
	}

	if err := run.Init(runtime.Options{
		In:     os.Stdin,
		Out:    os.Stdout,
		Config: conf,
		Logger: log,
	}); err != nil {
		log.WithError(err).Fatal("error initializing the runtime")
	}
	defer func() { _ = run.Close() }()

	if err := run.Run(); err != nil {
		_ = run.Close()
		log.WithError(err).Fatal("runtime error")
	}
}

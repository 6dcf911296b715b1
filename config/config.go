package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	"github.com/SUBANUM63/Connect-Four/engine"
)

// Available runtime modes.
const (
	ModeText     = "text"
	ModeTerminal = "terminal"
)

// Config holds the settings of a run. Values come from the optional config
// file, then the environment, then the command line flags.
type Config struct {
	Mode     string `yaml:"mode" env:"CONNECTFOUR_MODE" env-default:"text"`
	LogLevel string `yaml:"log-level" env:"CONNECTFOUR_LOG_LEVEL" env-default:"warn"`

	// Used by the runtimes which do not prompt for them.
	Rows         int    `yaml:"rows" env:"CONNECTFOUR_ROWS" env-default:"6"`
	Columns      int    `yaml:"columns" env:"CONNECTFOUR_COLUMNS" env-default:"7"`
	Games        int    `yaml:"games" env:"CONNECTFOUR_GAMES" env-default:"1"`
	FirstPlayer  string `yaml:"first-player" env:"CONNECTFOUR_FIRST_PLAYER" env-default:"Player 1"`
	SecondPlayer string `yaml:"second-player" env:"CONNECTFOUR_SECOND_PLAYER" env-default:"Player 2"`
}

// Load reads the config file at path, if any, and the environment.
func Load(path string) (*Config, error) {
	conf := &Config{}
	if path == "" {
		if err := cleanenv.ReadEnv(conf); err != nil {
			return nil, errors.Wrap(err, "unable to read environment")
		}
		return conf, nil
	}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		return nil, errors.Wrapf(err, "unable to load config file %q", path)
	}
	return conf, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeText, ModeTerminal:
	default:
		return errors.Errorf("invalid mode %q, expected %q or %q", c.Mode, ModeText, ModeTerminal)
	}
	if err := engine.ValidateDimensions(c.Rows, c.Columns); err != nil {
		return err
	}
	if c.Games < 1 {
		return errors.Wrapf(engine.ErrInvalidGameCount, "%d", c.Games)
	}
	return nil
}

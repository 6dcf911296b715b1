package runtime

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/SUBANUM63/Connect-Four/config"
)

// Options are the resources handed to a runtime.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Config *config.Config
	Logger logrus.FieldLogger
}

// FourRuntime is the interface to run connect four.
type FourRuntime interface {
	Init(Options) error
	Run() error
	Close() error
}

// Runtimes holds the registered runtimes.
var Runtimes = map[string]FourRuntime{}

// Package logging builds the zap logger used by the hasher command.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Options controls the logger built by New.
type Options struct {
	Verbose bool // debug level
	Quiet   bool // warnings and errors only; ignored when Verbose is set
	NoColor bool

	// Terminal selects the human-readable console encoder. Use
	// IsTerminal to detect it.
	Terminal bool

	// OutputPaths defaults to stderr.
	OutputPaths []string
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Level returns the minimum enabled level for opts.
func (o Options) Level() zapcore.Level {
	switch {
	case o.Verbose:
		return zapcore.DebugLevel
	case o.Quiet:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger. Terminals get the development console encoder,
// everything else gets production JSON.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config
	if opts.Terminal {
		config = zap.NewDevelopmentConfig()
		config.DisableStacktrace = true
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		if !opts.NoColor {
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	} else {
		config = zap.NewProductionConfig()
		config.Sampling = nil
	}
	config.Level = zap.NewAtomicLevelAt(opts.Level())

	config.OutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}

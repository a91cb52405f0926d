package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/bianoble/hasher/internal/config"
	"github.com/bianoble/hasher/internal/logging"
)

// loadConfig reads the layered configuration.
func loadConfig() (*config.HierarchicalResult, error) {
	res, err := config.LoadHierarchical(config.HierarchicalOptions{ProjectPath: configPath})
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	for _, layer := range res.Layers {
		if layer.Loaded {
			detail("config %s (%s)", layer.Path, layer.Level)
		}
	}
	return res, nil
}

// newLogger builds the logger for the global output flags.
func newLogger() (*zap.Logger, error) {
	return logging.New(logging.Options{
		Verbose:  verbose,
		Quiet:    quiet,
		NoColor:  noColor,
		Terminal: logging.IsTerminal(os.Stderr),
	})
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

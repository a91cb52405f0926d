package engine

import (
	"go.uber.org/zap"

	"github.com/bianoble/hasher/internal/selector"
)

// Runner walks root arguments and hands every selected file to the Engine.
type Runner struct {
	Engine   *Engine
	Selector *selector.Selector
	Log      *zap.Logger
}

// Run processes each root in order, one file at a time. A failing root or
// file is recorded in the result and never stops the run.
func (r *Runner) Run(roots []string) *RunResult {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	result := &RunResult{}

	for _, root := range roots {
		log.Info("processing root", zap.String("root", root))

		paths, err := selector.Walk(root, r.Selector)
		if err != nil {
			log.Error("walking root", zap.String("root", root), zap.Error(err))
			result.RootErrors = append(result.RootErrors, &RootError{Root: root, Err: err})
		}

		for _, path := range paths {
			result.Files = append(result.Files, r.Engine.Process(path))
		}
	}

	return result
}

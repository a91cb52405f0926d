package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/bianoble/hasher/internal/engine"
	"github.com/bianoble/hasher/internal/report"
	"github.com/bianoble/hasher/internal/selector"
)

func run(w io.Writer, roots []string) error {
	if noColor {
		color.NoColor = true
	}

	res, err := loadConfig()
	if err != nil {
		return err
	}
	cfg := res.Config

	spec, err := cfg.DigestSpec()
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	mode := engine.ParseMode(cfg.Mode)
	detail("mode %s, digests %s, extensions %s", mode, strings.Join(spec.Names(), ","), cfg.Extensions)

	runner := &engine.Runner{
		Engine:   engine.New(spec, mode, log),
		Selector: selector.New(cfg.ExtensionList()),
		Log:      log,
	}
	result := runner.Run(roots)

	if !quiet || !result.Clean() {
		fmt.Fprintln(w, summary(result))
	}

	if reportPath != "" {
		if err := report.Save(reportPath, report.New(result, mode, spec.Names())); err != nil {
			errorf("%v", err)
			return err
		}
		detail("report written to %s", reportPath)
	}

	if !result.Clean() {
		return fmt.Errorf("%d of %d files failed", failedFiles(result), len(result.Files)+len(result.RootErrors))
	}
	return nil
}

// summary formats the verdict totals of a run on one line. Zero counts
// are left out.
func summary(result *engine.RunResult) string {
	counts := result.Counts()

	var parts []string
	for _, v := range engine.Verdicts {
		n := counts[v]
		if n == 0 {
			continue
		}
		parts = append(parts, verdictColor(v).Sprintf("%d %s", n, v))
	}
	if n := len(result.RootErrors); n > 0 {
		parts = append(parts, verdictColor(engine.VerdictError).Sprintf("%d unreadable roots", n))
	}

	files := "files"
	if len(result.Files) == 1 {
		files = "file"
	}
	line := fmt.Sprintf("%d %s", len(result.Files), files)
	if len(parts) == 0 {
		return line
	}
	return line + ": " + strings.Join(parts, ", ")
}

func verdictColor(v engine.Verdict) *color.Color {
	switch v {
	case engine.VerdictMatch, engine.VerdictGenerated:
		return color.New(color.FgGreen)
	case engine.VerdictSkipped, engine.VerdictNoSidecar:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// failedFiles counts unwalkable roots plus files with a failing verdict.
func failedFiles(result *engine.RunResult) int {
	n := len(result.RootErrors)
	for _, f := range result.Files {
		for _, v := range f.Verdicts {
			if v.Verdict.Failed() {
				n++
				break
			}
		}
	}
	return n
}

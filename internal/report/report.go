// Package report writes and reads the YAML summary of a run.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bianoble/hasher/internal/engine"
)

// New builds a report from a run result.
func New(result *engine.RunResult, mode engine.Mode, algorithms []string) *Report {
	r := &Report{
		Version:    Version,
		Mode:       mode.String(),
		Algorithms: append([]string(nil), algorithms...),
		Files:      make([]FileEntry, 0, len(result.Files)),
		Totals:     make(map[string]int, len(engine.Verdicts)),
		Clean:      result.Clean(),
	}

	for _, re := range result.RootErrors {
		r.Roots = append(r.Roots, RootEntry{Path: re.Root, Error: re.Err.Error()})
	}

	for _, f := range result.Files {
		entry := FileEntry{Path: f.Path, Digests: make([]DigestEntry, 0, len(f.Verdicts))}
		if f.Err != nil {
			entry.Error = f.Err.Error()
		}
		for _, v := range f.Verdicts {
			d := DigestEntry{
				Algorithm: v.Algorithm,
				Sidecar:   v.Sidecar,
				Verdict:   string(v.Verdict),
			}
			if v.Err != nil && f.Err == nil {
				d.Error = v.Err.Error()
			}
			entry.Digests = append(entry.Digests, d)
		}
		r.Files = append(r.Files, entry)
	}

	for verdict, n := range result.Counts() {
		r.Totals[string(verdict)] = n
	}

	return r
}

// Load reads and validates a report file.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}

	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}

	if errs := Validate(&r); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &r, nil
}

// Save writes a report atomically using a temp file and rename.
func Save(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".hasher-report-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp report in %s: %w", filepath.Dir(path), err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp report %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp report %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming temp report to %s: %w", path, err)
	}

	return nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("report validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Report for semantic correctness.
func Validate(r *Report) []string {
	var errs []string

	if r.Version != Version {
		errs = append(errs, fmt.Sprintf("unsupported version %d, only version %d is supported", r.Version, Version))
	}

	known := make(map[string]bool, len(engine.Verdicts))
	for _, v := range engine.Verdicts {
		known[string(v)] = true
	}

	for i, f := range r.Files {
		prefix := fmt.Sprintf("files[%d]", i)
		if f.Path != "" {
			prefix = fmt.Sprintf("file '%s'", f.Path)
		} else {
			errs = append(errs, fmt.Sprintf("%s: 'path' is required", prefix))
		}
		for _, d := range f.Digests {
			if !known[d.Verdict] {
				errs = append(errs, fmt.Sprintf("%s: unknown verdict '%s' for %s", prefix, d.Verdict, d.Algorithm))
			}
		}
	}

	return errs
}

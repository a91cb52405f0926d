package engine

import (
	"strings"

	"go.uber.org/multierr"
)

// Mode selects whether sidecars are generated, validated, or both.
type Mode int

const (
	// ModeBoth generates missing sidecars and validates existing ones.
	ModeBoth Mode = iota
	// ModeGenerate processes a file only if at least one sidecar is missing.
	ModeGenerate
	// ModeValidate processes a file only if at least one sidecar exists,
	// and never writes sidecars.
	ModeValidate
)

// ParseMode maps a configured mode string to a Mode. Anything other than
// "generate" or "validate" means ModeBoth.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generate":
		return ModeGenerate
	case "validate":
		return ModeValidate
	default:
		return ModeBoth
	}
}

func (m Mode) String() string {
	switch m {
	case ModeGenerate:
		return "generate"
	case ModeValidate:
		return "validate"
	default:
		return "both"
	}
}

// Verdict is the outcome for one digest of one file.
type Verdict string

const (
	VerdictMatch     Verdict = "match"
	VerdictMismatch  Verdict = "mismatch"
	VerdictBadFormat Verdict = "bad-format"
	VerdictGenerated Verdict = "generated"
	VerdictSkipped   Verdict = "skipped"    // file skipped by mode
	VerdictNoSidecar Verdict = "no-sidecar" // validate mode, sidecar absent
	VerdictError     Verdict = "error"
)

// Verdicts lists every verdict in report order.
var Verdicts = []Verdict{
	VerdictMatch,
	VerdictMismatch,
	VerdictBadFormat,
	VerdictGenerated,
	VerdictSkipped,
	VerdictNoSidecar,
	VerdictError,
}

// Failed reports whether the verdict should fail a run.
func (v Verdict) Failed() bool {
	return v == VerdictMismatch || v == VerdictBadFormat || v == VerdictError
}

// DigestVerdict is the outcome of one algorithm for one file.
type DigestVerdict struct {
	Algorithm string
	Sidecar   string
	Verdict   Verdict
	Err       error // set for VerdictError and VerdictBadFormat
}

// FileResult holds one verdict per configured digest for a single file.
type FileResult struct {
	Path     string
	Verdicts []DigestVerdict
	Err      error // file-level failure; every verdict is VerdictError
}

// Skipped reports whether the file was skipped entirely by mode gating.
func (r FileResult) Skipped() bool {
	if len(r.Verdicts) == 0 {
		return false
	}
	for _, v := range r.Verdicts {
		if v.Verdict != VerdictSkipped {
			return false
		}
	}
	return true
}

// Errors returns the file-level error and every per-digest error.
func (r FileResult) Errors() []error {
	if r.Err != nil {
		return []error{&FileError{Path: r.Path, Err: r.Err}}
	}
	var errs []error
	for _, v := range r.Verdicts {
		if v.Verdict == VerdictError && v.Err != nil {
			errs = append(errs, &FileError{Path: r.Path, Algorithm: v.Algorithm, Err: v.Err})
		}
	}
	return errs
}

// FileError is an I/O or algorithm failure for a file, or for one of its
// digests when Algorithm is set.
type FileError struct {
	Path      string
	Algorithm string
	Err       error
}

func (e *FileError) Error() string {
	if e.Algorithm != "" {
		return e.Path + " (" + e.Algorithm + "): " + e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// RootError is a failure walking a root argument.
type RootError struct {
	Root string
	Err  error
}

func (e *RootError) Error() string {
	return e.Root + ": " + e.Err.Error()
}

func (e *RootError) Unwrap() error {
	return e.Err
}

// RunResult holds the outcome of processing every root.
type RunResult struct {
	Files      []FileResult
	RootErrors []*RootError
}

// Counts returns the number of digests per verdict.
func (r *RunResult) Counts() map[Verdict]int {
	counts := make(map[Verdict]int, len(Verdicts))
	for _, f := range r.Files {
		for _, v := range f.Verdicts {
			counts[v.Verdict]++
		}
	}
	return counts
}

// Err combines every root and file error, or returns nil.
func (r *RunResult) Err() error {
	var errs []error
	for _, re := range r.RootErrors {
		errs = append(errs, re)
	}
	for _, f := range r.Files {
		errs = append(errs, f.Errors()...)
	}
	return multierr.Combine(errs...)
}

// Clean reports whether the run had no errors, mismatches or bad sidecars.
func (r *RunResult) Clean() bool {
	if len(r.RootErrors) > 0 {
		return false
	}
	for _, f := range r.Files {
		if f.Err != nil {
			return false
		}
		for _, v := range f.Verdicts {
			if v.Verdict.Failed() {
				return false
			}
		}
	}
	return true
}

package hasher

import "github.com/bianoble/hasher/internal/engine"

// Type aliases re-export engine result types as the public API.

type Mode = engine.Mode
type Verdict = engine.Verdict
type DigestVerdict = engine.DigestVerdict
type FileResult = engine.FileResult
type FileError = engine.FileError
type RootError = engine.RootError
type RunResult = engine.RunResult

const (
	ModeBoth     = engine.ModeBoth
	ModeGenerate = engine.ModeGenerate
	ModeValidate = engine.ModeValidate
)

const (
	VerdictMatch     = engine.VerdictMatch
	VerdictMismatch  = engine.VerdictMismatch
	VerdictBadFormat = engine.VerdictBadFormat
	VerdictGenerated = engine.VerdictGenerated
	VerdictSkipped   = engine.VerdictSkipped
	VerdictNoSidecar = engine.VerdictNoSidecar
	VerdictError     = engine.VerdictError
)

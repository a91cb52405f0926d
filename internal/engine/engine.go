package engine

import (
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bianoble/hasher/internal/digest"
	"github.com/bianoble/hasher/internal/sidecar"
)

// Engine generates and validates the sidecar digests of single files.
type Engine struct {
	Spec digest.Spec
	Mode Mode
	Log  *zap.Logger

	buf []byte
}

// New creates an Engine. A nil logger discards all output.
func New(spec digest.Spec, mode Mode, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{Spec: spec, Mode: mode, Log: log}
}

// Process computes every configured digest of path in one read and, per
// digest, validates the existing sidecar or writes a new one. The result
// always holds exactly one verdict per configured algorithm.
func (e *Engine) Process(path string) FileResult {
	log := e.logger().With(zap.String("file", path))
	result := FileResult{Path: path, Verdicts: make([]DigestVerdict, len(e.Spec))}

	exists := make([]bool, len(e.Spec))
	for i, a := range e.Spec {
		p := sidecar.Path(path, a)
		exists[i] = sidecar.Exists(p)
		result.Verdicts[i] = DigestVerdict{Algorithm: a.Name, Sidecar: p}
	}

	if !e.shouldProcess(exists) {
		for i := range result.Verdicts {
			result.Verdicts[i].Verdict = VerdictSkipped
		}
		log.Debug("skipping", zap.Stringer("mode", e.Mode))
		return result
	}

	log.Info("processing", zap.Stringer("mode", e.Mode))

	if e.buf == nil {
		e.buf = make([]byte, digest.BufferSize)
	}
	sums, err := digest.ComputeFile(path, e.Spec, e.buf)
	if err != nil {
		result.Err = err
		for i := range result.Verdicts {
			result.Verdicts[i].Verdict = VerdictError
			result.Verdicts[i].Err = err
		}
		log.Error("computing digests", zap.Error(err))
		return result
	}

	name := filepath.Base(path)
	for i, s := range sums {
		v := &result.Verdicts[i]
		line := digest.Format(s, name)

		switch {
		case exists[i]:
			e.validate(v, s.Algorithm, line)
		case e.Mode != ModeValidate:
			e.generate(v, line)
		default:
			v.Verdict = VerdictNoSidecar
		}
		e.report(log, *v)
	}

	return result
}

// shouldProcess applies the per-file gate: generate needs at least one
// missing sidecar, validate needs at least one existing sidecar.
func (e *Engine) shouldProcess(exists []bool) bool {
	switch e.Mode {
	case ModeGenerate:
		for _, ok := range exists {
			if !ok {
				return true
			}
		}
		return false
	case ModeValidate:
		for _, ok := range exists {
			if ok {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// validate compares the sidecar's hex prefix with the computed line.
// Only the first HexLen characters are compared.
func (e *Engine) validate(v *DigestVerdict, a digest.Algorithm, line string) {
	n := a.HexLen()
	stored, err := sidecar.Read(v.Sidecar, n)
	switch {
	case errors.Is(err, sidecar.ErrBadFormat):
		v.Verdict = VerdictBadFormat
		v.Err = err
	case err != nil:
		v.Verdict = VerdictError
		v.Err = err
	case stored == line[:n]:
		v.Verdict = VerdictMatch
	default:
		v.Verdict = VerdictMismatch
	}
}

func (e *Engine) generate(v *DigestVerdict, line string) {
	if err := sidecar.Write(v.Sidecar, []byte(line+"\n")); err != nil {
		v.Verdict = VerdictError
		v.Err = err
		return
	}
	v.Verdict = VerdictGenerated
}

func (e *Engine) report(log *zap.Logger, v DigestVerdict) {
	fields := []zap.Field{
		zap.String("algorithm", v.Algorithm),
		zap.String("verdict", string(v.Verdict)),
	}
	switch v.Verdict {
	case VerdictMatch, VerdictMismatch:
		fields = append(fields, zap.Bool("match", v.Verdict == VerdictMatch))
	case VerdictGenerated:
		fields = append(fields, zap.String("sidecar", v.Sidecar))
	}

	switch v.Verdict {
	case VerdictMatch, VerdictGenerated:
		log.Info("digest", fields...)
	case VerdictNoSidecar:
		log.Debug("digest", fields...)
	case VerdictMismatch, VerdictBadFormat:
		log.Warn("digest", fields...)
	default:
		log.Error("digest", append(fields, zap.Error(v.Err))...)
	}
}

func (e *Engine) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

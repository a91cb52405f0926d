package selector

import (
	"path/filepath"
	"strings"
)

// Selector decides which files get digests, by file name suffix.
type Selector struct {
	exts []string
}

// New creates a Selector for the configured suffixes. Blank entries are
// dropped. Suffixes are compared verbatim, so ".txt" and "txt" differ:
// the configured string carries any delimiter it needs.
func New(exts []string) *Selector {
	s := &Selector{}
	for _, ext := range exts {
		if strings.TrimSpace(ext) == "" {
			continue
		}
		s.exts = append(s.exts, ext)
	}
	return s
}

// Match reports whether the base name of path ends with one of the
// configured suffixes. Matching is case-sensitive.
func (s *Selector) Match(path string) bool {
	name := filepath.Base(path)
	for _, ext := range s.exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Extensions returns the configured suffixes.
func (s *Selector) Extensions() []string {
	out := make([]string, len(s.exts))
	copy(out, s.exts)
	return out
}

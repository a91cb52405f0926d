// Package sidecar reads and writes digest sidecar files, which live next to
// their source file as <source>.<ext>.
package sidecar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bianoble/hasher/internal/digest"
)

// ErrBadFormat is returned when a sidecar holds fewer characters than the
// hex digest it should contain.
var ErrBadFormat = errors.New("bad format")

// Perm is the mode of newly written sidecar files.
const Perm os.FileMode = 0644

// Path returns the sidecar path of source for the algorithm.
func Path(source string, a digest.Algorithm) string {
	return source + "." + a.Ext
}

// Exists reports whether something exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read returns the first hexLen characters of the UTF-8 sidecar at path.
// Anything after them is never read. A sidecar holding fewer characters is
// ErrBadFormat, however many bytes it has.
func Read(path string, hexLen int) (stored string, retErr error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading sidecar %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("closing sidecar %s: %w", path, closeErr)
		}
	}()

	r := bufio.NewReaderSize(f, hexLen*utf8.UTFMax)
	var sb strings.Builder
	sb.Grow(hexLen)
	for n := 0; n < hexLen; n++ {
		c, _, err := r.ReadRune()
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("sidecar %s: %w: read %d of %d characters", path, ErrBadFormat, n, hexLen)
		}
		if err != nil {
			return "", fmt.Errorf("reading sidecar %s: %w", path, err)
		}
		sb.WriteRune(c)
	}
	return sb.String(), nil
}

// Write atomically writes content to path. The content lands in a temp
// file in the same directory first, so a failed write never leaves a
// truncated sidecar behind.
func Write(path string, content []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".hasher-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, Perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}

package digest

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// BufferSize is the chunk size used when reading source files.
const BufferSize = 512 * 1024

// Sum is the digest of one file under one algorithm.
type Sum struct {
	Algorithm Algorithm
	Sum       []byte
}

// Hex returns the lower-case hex encoding of the digest.
func (s Sum) Hex() string {
	return hex.EncodeToString(s.Sum)
}

// Compute reads r to EOF once, feeding every chunk to each algorithm in spec.
// buf is the read buffer; a nil or empty buf allocates one of BufferSize.
// The returned sums are in spec order.
func Compute(r io.Reader, spec Spec, buf []byte) ([]Sum, error) {
	hashes := make([]hash.Hash, len(spec))
	for i, a := range spec {
		if !a.Available() {
			return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedAlgorithm, a.Name)
		}
		hashes[i] = a.Hash.New()
	}
	if len(buf) == 0 {
		buf = make([]byte, BufferSize)
	}

	for {
		n, err := r.Read(buf)
		if n > 0 {
			for _, h := range hashes {
				h.Write(buf[:n]) // never returns an error
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	sums := make([]Sum, len(spec))
	for i, h := range hashes {
		sums[i] = Sum{Algorithm: spec[i], Sum: h.Sum(nil)}
	}
	return sums, nil
}

// ComputeFile opens path once and computes every digest in spec.
func ComputeFile(path string, spec Spec, buf []byte) (sums []Sum, retErr error) {
	// Resolve algorithms before touching the file.
	for _, a := range spec {
		if !a.Available() {
			return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedAlgorithm, a.Name)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = closeErr
		}
	}()

	return Compute(f, spec, buf)
}

// Format returns the sidecar line for a digest: lower-case hex, a space,
// the binary-mode marker and the base name of the file.
func Format(s Sum, name string) string {
	return s.Hex() + " *" + name
}

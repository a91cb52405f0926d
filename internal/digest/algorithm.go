package digest

import (
	"crypto"
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedAlgorithm is returned for algorithm names outside the
// standard set, or for an Algorithm whose hash implementation is not linked.
var ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

// Algorithm pairs a digest algorithm with the extension of its sidecar file.
type Algorithm struct {
	Name string // "MD5", "SHA-1", "SHA-256", "SHA-512"
	Ext  string // sidecar extension without the dot
	Hash crypto.Hash
}

// The standard algorithms.
var (
	MD5    = Algorithm{Name: "MD5", Ext: "md5", Hash: crypto.MD5}
	SHA1   = Algorithm{Name: "SHA-1", Ext: "sha1", Hash: crypto.SHA1}
	SHA256 = Algorithm{Name: "SHA-256", Ext: "sha256", Hash: crypto.SHA256}
	SHA512 = Algorithm{Name: "SHA-512", Ext: "sha512", Hash: crypto.SHA512}
)

var standard = []Algorithm{MD5, SHA1, SHA256, SHA512}

// HexLen returns the length of the algorithm's hex encoded digest.
func (a Algorithm) HexLen() int {
	return 2 * a.Hash.Size()
}

// Available reports whether the algorithm can be computed.
func (a Algorithm) Available() bool {
	return a.Hash != 0 && a.Hash.Available()
}

func (a Algorithm) String() string {
	return a.Name
}

// Lookup returns the standard algorithm matching name. Matching ignores case
// and dashes, so "sha256", "SHA-256" and "SHA256" are equivalent.
func Lookup(name string) (Algorithm, error) {
	key := normalize(name)
	for _, a := range standard {
		if normalize(a.Name) == key {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: '%s' — must be one of: MD5, SHA-1, SHA-256, SHA-512", ErrUnsupportedAlgorithm, strings.TrimSpace(name))
}

func normalize(name string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
}

// Spec is the ordered list of algorithms computed for every file.
// Order determines computation and report order only.
type Spec []Algorithm

// Defaults returns MD5, SHA-1, SHA-256 and SHA-512.
func Defaults() Spec {
	s := make(Spec, len(standard))
	copy(s, standard)
	return s
}

// ParseSpec parses a comma-separated list of algorithm names.
func ParseSpec(list string) (Spec, error) {
	var spec Spec
	seen := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		a, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("duplicate digest algorithm '%s'", a.Name)
		}
		seen[a.Name] = true
		spec = append(spec, a)
	}
	if len(spec) == 0 {
		return nil, fmt.Errorf("no digest algorithms in '%s'", list)
	}
	return spec, nil
}

// Names returns the algorithm names in order.
func (s Spec) Names() []string {
	names := make([]string, len(s))
	for i, a := range s {
		names[i] = a.Name
	}
	return names
}

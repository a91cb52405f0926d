package report

// Version is the only report format version written and accepted.
const Version = 1

// Report is the YAML document written by --report.
type Report struct {
	Version    int            `yaml:"version"`
	Mode       string         `yaml:"mode"`
	Algorithms []string       `yaml:"algorithms"`
	Roots      []RootEntry    `yaml:"roots,omitempty"`
	Files      []FileEntry    `yaml:"files"`
	Totals     map[string]int `yaml:"totals"`
	Clean      bool           `yaml:"clean"`
}

// RootEntry records a root argument that could not be walked.
type RootEntry struct {
	Path  string `yaml:"path"`
	Error string `yaml:"error"`
}

// FileEntry records every digest verdict for one file.
type FileEntry struct {
	Path    string        `yaml:"path"`
	Error   string        `yaml:"error,omitempty"`
	Digests []DigestEntry `yaml:"digests"`
}

// DigestEntry records the verdict of one algorithm.
type DigestEntry struct {
	Algorithm string `yaml:"algorithm"`
	Sidecar   string `yaml:"sidecar"`
	Verdict   string `yaml:"verdict"`
	Error     string `yaml:"error,omitempty"`
}

// Package hasher provides the public Go library API for hasher.
//
// hasher computes MD5, SHA-1, SHA-256 and SHA-512 digests of selected files
// in a single read and writes or checks a sidecar file per digest
// (report.pdf.md5, report.pdf.sha256, ...).
//
// # Basic Usage
//
//	client, err := hasher.New(hasher.Options{
//	    Extensions: []string{".pdf", ".zip"},
//	    Algorithms: []string{"MD5", "SHA-256"},
//	    Mode:       "validate",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := client.Run("/srv/archive")
//	if !result.Clean() {
//	    log.Fatal(result.Err())
//	}
package hasher

import (
	"go.uber.org/zap"

	"github.com/bianoble/hasher/internal/config"
	"github.com/bianoble/hasher/internal/engine"
	"github.com/bianoble/hasher/internal/selector"
)

// Options configures a hasher client.
type Options struct {
	// ConfigPath, when set, loads a hasher.yaml (plus the system and user
	// layers unless NoInherit is set). The loaded config must be valid on
	// its own; the fields below then override it.
	ConfigPath string
	NoInherit  bool

	// Extensions are file name suffixes to process. Required without
	// ConfigPath.
	Extensions []string

	// Algorithms defaults to MD5, SHA-1, SHA-256 and SHA-512.
	Algorithms []string

	// Mode is "generate", "validate", or empty for both.
	Mode string

	// Logger receives progress and verdict entries. Nil discards them.
	Logger *zap.Logger
}

// Client generates and validates digest sidecars.
type Client struct {
	runner *engine.Runner
}

// New creates a Client. Configuration errors are reported here, before any
// file is touched.
func New(opts Options) (*Client, error) {
	cfg := &config.Config{}
	if opts.ConfigPath != "" {
		res, err := config.LoadHierarchical(config.HierarchicalOptions{
			ProjectPath: opts.ConfigPath,
			NoInherit:   opts.NoInherit,
		})
		if err != nil {
			return nil, err
		}
		cfg = res.Config
	}

	cfg = config.Merge(cfg, &config.Config{
		Extensions: config.List(opts.Extensions),
		Mode:       opts.Mode,
		Types:      config.List(opts.Algorithms),
	})
	if errs := config.Validate(cfg); len(errs) > 0 {
		return nil, &config.ValidationError{Errors: errs}
	}

	spec, err := cfg.DigestSpec()
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{runner: &engine.Runner{
		Engine:   engine.New(spec, engine.ParseMode(cfg.Mode), log),
		Selector: selector.New(cfg.ExtensionList()),
		Log:      log,
	}}, nil
}

// Run processes each root in order. Failures are recorded in the result;
// they never stop the run.
func (c *Client) Run(roots ...string) *RunResult {
	return c.runner.Run(roots)
}

// Process handles a single file regardless of its extension.
func (c *Client) Process(path string) FileResult {
	return c.runner.Engine.Process(path)
}

// Mode returns the effective processing mode.
func (c *Client) Mode() Mode {
	return c.runner.Engine.Mode
}

// Algorithms returns the configured digest names in processing order.
func (c *Client) Algorithms() []string {
	return c.runner.Engine.Spec.Names()
}

package hasher

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bianoble/hasher/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNewRequiresExtensions(t *testing.T) {
	_, err := New(Options{})
	if err == nil {
		t.Fatal("expected error without extensions")
	}
	if !config.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestNewRejectsUnknownAlgorithm(t *testing.T) {
	_, err := New(Options{Extensions: []string{".txt"}, Algorithms: []string{"SHA-384"}})
	if err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New(Options{Extensions: []string{".txt"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Mode() != ModeBoth {
		t.Errorf("mode = %v, want both", c.Mode())
	}
	if got := len(c.Algorithms()); got != 4 {
		t.Errorf("algorithms = %v, want all four", c.Algorithms())
	}
}

func TestClientRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "hello")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "world")

	gen, err := New(Options{Extensions: []string{".txt"}, Algorithms: []string{"MD5"}, Mode: "generate"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := gen.Run(dir)
	if !res.Clean() {
		t.Fatalf("generate run failed: %v", res.Err())
	}
	if n := res.Counts()[VerdictGenerated]; n != 2 {
		t.Errorf("generated = %d, want 2", n)
	}

	core, logs := observer.New(zap.InfoLevel)
	val, err := New(Options{
		Extensions: []string{".txt"},
		Algorithms: []string{"MD5"},
		Mode:       "validate",
		Logger:     zap.New(core),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res = val.Run(dir)
	if n := res.Counts()[VerdictMatch]; n != 2 {
		t.Errorf("match = %d, want 2", n)
	}
	if logs.FilterMessage("digest").Len() != 2 {
		t.Errorf("expected 2 digest log entries, got %d", logs.FilterMessage("digest").Len())
	}
}

func TestClientProcessIgnoresExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	writeFile(t, path, "hello")

	c, err := New(Options{Extensions: []string{".txt"}, Algorithms: []string{"MD5"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fr := c.Process(path)
	if len(fr.Verdicts) != 1 || fr.Verdicts[0].Verdict != VerdictGenerated {
		t.Errorf("verdicts = %+v, want one generated", fr.Verdicts)
	}
}

func TestNewFromConfig(t *testing.T) {
	for _, key := range []string{config.EnvExtensions, config.EnvMode, config.EnvTypes, config.EnvNoInheritVar} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "hasher.yaml")
	writeFile(t, cfgPath, "file.extensions: .txt\ndigest.mode: validate\ndigest.types: SHA-1\n")

	c, err := New(Options{ConfigPath: cfgPath, NoInherit: true, Algorithms: []string{"MD5", "SHA-256"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Mode() != ModeValidate {
		t.Errorf("mode = %v, want validate from config", c.Mode())
	}
	if got := c.Algorithms(); len(got) != 2 || got[0] != "MD5" || got[1] != "SHA-256" {
		t.Errorf("algorithms = %v, want options to override config", got)
	}
}

package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bianoble/hasher/internal/digest"
	"github.com/bianoble/hasher/internal/selector"
)

func newRunner(mode Mode, exts ...string) *Runner {
	return &Runner{
		Engine:   New(digest.Spec{digest.MD5, digest.SHA256}, mode, nil),
		Selector: selector.New(exts),
	}
}

func TestRunnerProcessesSelectedFilesOnly(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.zip"), "b")
	writeFile(t, filepath.Join(root, "c.go"), "c")

	result := newRunner(ModeGenerate, ".txt", ".zip").Run([]string{root})

	if len(result.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(result.Files))
	}
	if result.Files[0].Path != filepath.Join(root, "a.txt") {
		t.Errorf("files[0] = %s", result.Files[0].Path)
	}
	if result.Files[1].Path != filepath.Join(root, "sub", "b.zip") {
		t.Errorf("files[1] = %s", result.Files[1].Path)
	}
	if got := result.Counts()[VerdictGenerated]; got != 4 {
		t.Errorf("generated = %d, want 4", got)
	}
	if _, err := os.Stat(filepath.Join(root, "c.go.md5")); !os.IsNotExist(err) {
		t.Error("unselected file must not get a sidecar")
	}
	if !result.Clean() {
		t.Errorf("expected clean run: %v", result.Err())
	}
}

func TestRunnerSecondGenerateRunGeneratesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "b.txt"), "b")

	newRunner(ModeGenerate, ".txt").Run([]string{root})
	result := newRunner(ModeGenerate, ".txt").Run([]string{root})

	// Sidecars are not themselves selected, so still two files.
	if len(result.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(result.Files))
	}
	counts := result.Counts()
	if counts[VerdictGenerated] != 0 {
		t.Errorf("generated = %d, want 0", counts[VerdictGenerated])
	}
	if counts[VerdictSkipped] != 4 {
		t.Errorf("skipped = %d, want 4", counts[VerdictSkipped])
	}
}

func TestRunnerContinuesPastMissingRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	missing := filepath.Join(root, "does-not-exist")

	result := newRunner(ModeBoth, ".txt").Run([]string{missing, root})

	if len(result.RootErrors) != 1 {
		t.Fatalf("root errors = %d, want 1", len(result.RootErrors))
	}
	if result.RootErrors[0].Root != missing {
		t.Errorf("root error for %s, want %s", result.RootErrors[0].Root, missing)
	}
	if len(result.Files) != 1 {
		t.Errorf("files = %d, want 1", len(result.Files))
	}
	if result.Clean() {
		t.Error("run with a missing root should not be clean")
	}
	if result.Err() == nil {
		t.Error("expected combined error")
	}
}

func TestRunnerValidateModeCreatesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")

	result := newRunner(ModeValidate, ".txt").Run([]string{root})

	if got := result.Counts()[VerdictGenerated]; got != 0 {
		t.Errorf("generated = %d, want 0", got)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("entries = %d, want 1", len(entries))
	}
}

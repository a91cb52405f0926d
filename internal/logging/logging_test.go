package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want zapcore.Level
	}{
		{"default", Options{}, zapcore.InfoLevel},
		{"verbose", Options{Verbose: true}, zapcore.DebugLevel},
		{"quiet", Options{Quiet: true}, zapcore.WarnLevel},
		{"verbose wins", Options{Verbose: true, Quiet: true}, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewProductionWritesJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.json")
	log, err := New(Options{OutputPaths: []string{out}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Debug("hidden")
	log.Info("digest", zap.String("algorithm", "MD5"), zap.String("verdict", "match"))
	_ = log.Sync()

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "digest" || entry["verdict"] != "match" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewQuietDropsInfo(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.json")
	log, err := New(Options{Quiet: true, OutputPaths: []string{out}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Info("processing")
	log.Warn("digest", zap.String("verdict", "mismatch"))
	_ = log.Sync()

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "processing") {
		t.Error("info entry should be dropped in quiet mode")
	}
	if !strings.Contains(string(data), "mismatch") {
		t.Error("warn entry should be kept in quiet mode")
	}
}

func TestNewTerminalNoColor(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.txt")
	log, err := New(Options{Terminal: true, NoColor: true, Verbose: true, OutputPaths: []string{out}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Debug("skipped")
	_ = log.Sync()

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "DEBUG") || !strings.Contains(got, "skipped") {
		t.Errorf("console output = %q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Errorf("console output should not contain color codes: %q", got)
	}
}

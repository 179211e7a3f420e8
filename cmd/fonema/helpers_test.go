package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	fonema "github.com/alnah/go-fonema"
)

// newTestEnv returns an isolated environment: no process variables,
// captured output and the given stdin.
func newTestEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:     func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) },
		Stdin:   strings.NewReader(stdin),
		Stdout:  &stdout,
		Stderr:  &stderr,
		Environ: map[string]string{},
	}
	return env, &stdout, &stderr
}

// writeFile creates path (and parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup write: %v", err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// failingCleaner rejects every text like a stage that panicked.
type failingCleaner struct{}

func (failingCleaner) Clean(string) (string, error) {
	return "", &fonema.TextCleaningError{
		Message: "number conversion failed: boom",
		Code:    fonema.CodeNumberConversion,
		Stage:   fonema.StageNormalization,
	}
}


package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cryptfolio/cryptfolio-tools/internal/logger"
)

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "CRYPTFOLIO_TEST_FROM_FILE=from-file\nCRYPTFOLIO_TEST_PRESET=from-file\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CRYPTFOLIO_TEST_PRESET", "from-process")
	t.Setenv("CRYPTFOLIO_TEST_FROM_FILE", "")
	os.Unsetenv("CRYPTFOLIO_TEST_FROM_FILE")

	loaded := LoadEnvFiles(envPath, filepath.Join(dir, "missing.env"), envPath)

	if len(loaded) != 1 {
		t.Fatalf("loaded = %v; want exactly one file", loaded)
	}
	if got := os.Getenv("CRYPTFOLIO_TEST_FROM_FILE"); got != "from-file" {
		t.Errorf("CRYPTFOLIO_TEST_FROM_FILE = %q; want from-file", got)
	}
	if got := os.Getenv("CRYPTFOLIO_TEST_PRESET"); got != "from-process" {
		t.Errorf("CRYPTFOLIO_TEST_PRESET = %q; want from-process", got)
	}
}

func TestLoadEnvFiles_Quiet(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("CRYPTFOLIO_TEST_QUIET=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CRYPTFOLIO_TEST_QUIET", "")
	os.Unsetenv("CRYPTFOLIO_TEST_QUIET")

	loaded := LoadEnvFiles(filepath.Join(dir, "missing.env"), envPath)

	if len(loaded) != 1 {
		t.Fatalf("loaded = %v; want exactly one file", loaded)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}

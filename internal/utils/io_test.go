package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/jpas/internal/errors"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReadAll(t *testing.T) {
	data, err := ReadAll(strings.NewReader(`{"a": 1}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != `{"a": 1}` {
		t.Errorf("Unexpected data: %q", data)
	}
}

func TestReadAllError(t *testing.T) {
	_, err := ReadAll(failingReader{})
	if !errors.Is(err, kerrors.ErrIO) {
		t.Errorf("Expected ErrIO, got: %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, kerrors.ErrIO) {
		t.Errorf("Expected ErrIO, got: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist to be preserved, got: %v", err)
	}
}

func TestWriteFileReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entry.json")

	if err := WriteFile(path, []byte("first, and longer")); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected file to be replaced, got %q", data)
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "entry.json"), []byte("x"))
	if !errors.Is(err, kerrors.ErrIO) {
		t.Errorf("Expected ErrIO, got: %v", err)
	}
}

func TestIsTerminalNonFile(t *testing.T) {
	if IsTerminal(strings.NewReader("")) {
		t.Error("A strings.Reader is never a terminal")
	}
}

// Package cmd contains testing utilities shared between command tests.
// This file provides helpers for running the CLI against in-memory streams
// and for swapping the gpg adapter out.
package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/PolarWolf314/jpas/internal/document"
)

// cliResult holds the captured streams of a CLI run.
type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// runCLI executes the root command with args, feeding stdin and capturing output.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	ResetGlobalState()
	root := GetRootCmd()

	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	t.Cleanup(func() {
		root.SetIn(nil)
		root.SetOut(nil)
		root.SetErr(nil)
		root.SetArgs(nil)
		ResetGlobalState()
	})

	err := Execute(context.Background())
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// useCipher makes commands use c instead of gpg for the rest of the test.
func useCipher(t *testing.T, c document.Cipher) {
	t.Helper()
	original := newCipher
	newCipher = func() (document.Cipher, error) {
		return c, nil
	}
	t.Cleanup(func() {
		newCipher = original
	})
}

// chdir changes to dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
	})
}

// Package gpgtest provides helpers for tests that need a working gpg keyring.
package gpgtest

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// UserID is the identity of the throwaway key created by SetupHome.
const UserID = "jpas test <jpas-test@example.com>"

// SetupHome creates a temporary GNUPGHOME holding one unprotected key pair and
// points the GNUPGHOME environment variable at it for the rest of the test.
// The test is skipped when gpg is not installed or cannot generate a key.
func SetupHome(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("gpg"); err != nil {
		t.Skip("gpg not found on PATH")
	}

	// Kept short: gpg-agent puts its socket in here and socket paths are length limited.
	home, err := os.MkdirTemp("", "jpas-gpg-")
	if err != nil {
		t.Fatalf("Failed to create GNUPGHOME: %v", err)
	}
	if err := os.Chmod(home, 0700); err != nil {
		t.Fatalf("Failed to chmod GNUPGHOME: %v", err)
	}
	t.Setenv("GNUPGHOME", home)

	t.Cleanup(func() {
		if _, err := exec.LookPath("gpgconf"); err == nil {
			_ = exec.Command("gpgconf", "--kill", "gpg-agent").Run()
		}
		_ = os.RemoveAll(home)
	})

	cmd := exec.Command("gpg", "--batch", "--pinentry-mode", "loopback", "--passphrase", "",
		"--quick-gen-key", UserID, "default", "default", "never")
	cmd.Env = os.Environ()
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("gpg could not generate a test key: %v\n%s", err, out)
	}

	return home
}

// FakeProgram writes an executable shell script standing in for gpg and
// returns its path. The test is skipped on platforms without /bin/sh.
func FakeProgram(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}

	path := filepath.Join(t.TempDir(), "fake-gpg")
	// #nosec G306 -- test script must be executable.
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0700); err != nil {
		t.Fatalf("Failed to write fake gpg: %v", err)
	}
	return path
}

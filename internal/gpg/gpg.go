package gpg

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// DefaultProgram is the executable looked up on PATH when GPG.Program is empty.
const DefaultProgram = "gpg"

var (
	encryptArgs = []string{"--no-tty", "--batch", "--default-recipient-self", "--armor", "--sign", "--encrypt"}
	decryptArgs = []string{"--no-tty", "--batch", "--decrypt"}
)

// GPG runs the gpg program. The zero value uses gpg from PATH.
type GPG struct {
	// Program is the gpg executable name or path.
	Program string
}

// New returns a GPG that runs program, or DefaultProgram when program is empty.
func New(program string) *GPG {
	return &GPG{Program: program}
}

// Encrypt signs and encrypts plaintext to the default recipient and returns
// the ASCII-armored message.
func (g *GPG) Encrypt(ctx context.Context, plaintext string) (string, error) {
	return g.run(ctx, encryptArgs, plaintext)
}

// Decrypt decrypts an armored message and returns the plaintext.
func (g *GPG) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	return g.run(ctx, decryptArgs, ciphertext)
}

func (g *GPG) program() string {
	if g == nil || g.Program == "" {
		return DefaultProgram
	}
	return g.Program
}

func (g *GPG) run(ctx context.Context, args []string, input string) (string, error) {
	cmd := exec.CommandContext(ctx, g.program(), args...)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", &IOError{Op: "stdin pipe", Err: err}
	}

	if err := cmd.Start(); err != nil {
		return "", &IOError{Op: "start", Err: err}
	}

	// Stdout and stderr are copied by exec in the background, so this write
	// cannot deadlock against a full output pipe.
	_, writeErr := io.WriteString(stdin, input)
	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return "", exitError(exitErr, stderr.String())
		}
		if writeErr == nil {
			return "", &IOError{Op: "wait", Err: waitErr}
		}
	}
	if writeErr != nil {
		return "", &IOError{Op: "write stdin", Err: writeErr}
	}
	if closeErr != nil {
		return "", &IOError{Op: "close stdin", Err: closeErr}
	}

	return stdout.String(), nil
}

func exitError(err *exec.ExitError, stderr string) error {
	if status, ok := err.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return &SignalError{Signal: status.Signal().String()}
	}
	if code := err.ExitCode(); code >= 0 {
		return &ExitError{Code: code, Stderr: stderr}
	}
	return &SignalError{}
}

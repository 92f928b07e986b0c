package gpg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/jpas/internal/errors"
	"github.com/PolarWolf314/jpas/internal/gpg/gpgtest"
	"golang.org/x/crypto/openpgp/armor"
)

func TestRunPassesArgsAndInput(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	program := gpgtest.FakeProgram(t, `printf '%s\n' "$*" > "`+argsFile+`"; cat`)
	g := New(program)

	tests := []struct {
		name     string
		run      func(context.Context, string) (string, error)
		wantArgs string
	}{
		{"encrypt", g.Encrypt, "--no-tty --batch --default-recipient-self --armor --sign --encrypt"},
		{"decrypt", g.Decrypt, "--no-tty --batch --decrypt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.run(context.Background(), "swordfish")
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if out != "swordfish" {
				t.Errorf("Expected stdout to echo input, got %q", out)
			}

			args, err := os.ReadFile(argsFile)
			if err != nil {
				t.Fatalf("Failed to read args file: %v", err)
			}
			if got := strings.TrimSpace(string(args)); got != tt.wantArgs {
				t.Errorf("args = %q, want %q", got, tt.wantArgs)
			}
		})
	}
}

func TestRunLargePayload(t *testing.T) {
	program := gpgtest.FakeProgram(t, "cat")
	payload := strings.Repeat("0123456789abcdef", 1<<16)

	out, err := New(program).Encrypt(context.Background(), payload)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if out != payload {
		t.Errorf("Expected %d bytes back, got %d", len(payload), len(out))
	}
}

func TestRunNonZeroExit(t *testing.T) {
	program := gpgtest.FakeProgram(t, `cat > /dev/null; echo "gpg: decryption failed: No secret key" >&2; exit 2`)

	_, err := New(program).Decrypt(context.Background(), "-----BEGIN PGP MESSAGE-----")
	if err == nil {
		t.Fatal("Expected an error")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected *ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != 2 {
		t.Errorf("Code = %d, want 2", exitErr.Code)
	}
	if !strings.Contains(exitErr.Stderr, "No secret key") {
		t.Errorf("Expected stderr to be captured, got %q", exitErr.Stderr)
	}
	if !errors.Is(err, kerrors.ErrGPGExit) {
		t.Errorf("Expected error to match ErrGPGExit")
	}
	if errors.Is(err, kerrors.ErrGPGSignal) || errors.Is(err, kerrors.ErrGPGIO) {
		t.Errorf("Exit error must not match other gpg kinds")
	}
}

func TestRunExitWithoutReadingInput(t *testing.T) {
	program := gpgtest.FakeProgram(t, "exit 7")
	payload := strings.Repeat("x", 1<<20)

	_, err := New(program).Encrypt(context.Background(), payload)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected *ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != 7 {
		t.Errorf("Code = %d, want 7", exitErr.Code)
	}
}

func TestRunSignalTerminated(t *testing.T) {
	program := gpgtest.FakeProgram(t, "kill -9 $$")

	_, err := New(program).Decrypt(context.Background(), "payload")

	var sigErr *SignalError
	if !errors.As(err, &sigErr) {
		t.Fatalf("Expected *SignalError, got %T: %v", err, err)
	}
	if !errors.Is(err, kerrors.ErrGPGSignal) {
		t.Errorf("Expected error to match ErrGPGSignal")
	}
	if errors.Is(err, kerrors.ErrGPGExit) {
		t.Errorf("Signal error must not match ErrGPGExit")
	}
}

func TestRunMissingProgram(t *testing.T) {
	g := New(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := g.Encrypt(context.Background(), "payload")

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected *IOError, got %T: %v", err, err)
	}
	if !errors.Is(err, kerrors.ErrGPGIO) {
		t.Errorf("Expected error to match ErrGPGIO")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected cause to be preserved, got %v", err)
	}
}

func TestZeroValueUsesDefaultProgram(t *testing.T) {
	var g GPG
	if got := g.program(); got != DefaultProgram {
		t.Errorf("program() = %q, want %q", got, DefaultProgram)
	}
}

func TestEncryptDecryptWithKeyring(t *testing.T) {
	gpgtest.SetupHome(t)
	g := New("")
	ctx := context.Background()

	armored, err := g.Encrypt(ctx, "Foo")
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}
	if !strings.HasPrefix(armored, "-----BEGIN PGP MESSAGE-----") {
		t.Fatalf("Expected armored message, got %q", armored)
	}

	block, err := armor.Decode(strings.NewReader(armored))
	if err != nil {
		t.Fatalf("Failed to decode armor: %v", err)
	}
	if block.Type != "PGP MESSAGE" {
		t.Errorf("armor type = %q, want %q", block.Type, "PGP MESSAGE")
	}

	plain, err := g.Decrypt(ctx, armored)
	if err != nil {
		t.Fatalf("Failed to decrypt: %v", err)
	}
	if plain != "Foo" {
		t.Errorf("Decrypt = %q, want %q", plain, "Foo")
	}
}

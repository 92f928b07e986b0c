package workflows

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/PolarWolf314/jpas/internal/document"
	"github.com/PolarWolf314/jpas/internal/gpg"
	"github.com/PolarWolf314/jpas/internal/gpg/gpgtest"
	"golang.org/x/crypto/openpgp/armor"
)

func TestGPGOpenSaveRoundTrip(t *testing.T) {
	gpgtest.SetupHome(t)
	g := gpg.New("")
	ctx := context.Background()
	dir := t.TempDir()

	// Build the on-disk fixture with the real keyring.
	fixture := filepath.Join(dir, "Example.ssh.json")
	writeEncryptedExample(t, g, fixture)

	opened, err := Open(ctx, OpenOptions{File: fixture, Cipher: g})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	want := exampleRoot(t, map[string]any{document.OriginKey: fixture})
	if !reflect.DeepEqual(opened.Document.Root(), want) {
		t.Fatalf("Open = %#v, want %#v", opened.Document.Root(), want)
	}

	// Redirect the opened entry to a new file through $file.
	out := filepath.Join(dir, "out.json")
	if err := opened.Document.AttachOrigin(out); err != nil {
		t.Fatalf("AttachOrigin failed: %v", err)
	}
	data, err := opened.Document.MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}

	if _, err := Save(ctx, SaveOptions{Stdin: strings.NewReader(string(data)), Cipher: g}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	saved := assertSaved(t, out)

	block, err := armor.Decode(strings.NewReader(saved[document.SecretsKey].(string)))
	if err != nil {
		t.Fatalf("Saved secrets are not valid armor: %v", err)
	}
	if block.Type != "PGP MESSAGE" {
		t.Errorf("armor type = %q, want %q", block.Type, "PGP MESSAGE")
	}

	reopened, err := Open(ctx, OpenOptions{File: out, Cipher: g})
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	secrets, _, _ := reopened.Document.Get(document.SecretsKey)
	if !reflect.DeepEqual(secrets, map[string]any{"password": "swordfish"}) {
		t.Errorf("Round-tripped secrets = %#v", secrets)
	}

	if _, err := os.Stat(fixture); err != nil {
		t.Errorf("Fixture should still exist: %v", err)
	}
}

package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/jpas/internal/errors"
)

const (
	// OriginKey is the annotation naming the file an entry was opened from.
	OriginKey = "$file"

	// SecretsKey is the field that is stored encrypted on disk.
	SecretsKey = "secrets"
)

// Cipher turns plaintext into an armored message and back.
type Cipher interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}

// Document is a decoded JSON value. Objects are map[string]any, arrays []any
// and numbers json.Number.
type Document struct {
	root any
}

// New wraps an already decoded value.
func New(root any) *Document {
	return &Document{root: root}
}

// Parse decodes a single JSON value from data.
func Parse(data []byte) (*Document, error) {
	root, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Root returns the underlying value.
func (d *Document) Root() any {
	return d.root
}

// Get returns the value stored at key and whether it was present.
func (d *Document) Get(key string) (any, bool, error) {
	obj, err := d.object()
	if err != nil {
		return nil, false, err
	}
	v, ok := obj[key]
	return v, ok, nil
}

// AttachOrigin sets the $file annotation to path.
func (d *Document) AttachOrigin(path string) error {
	obj, err := d.object()
	if err != nil {
		return err
	}
	obj[OriginKey] = path
	return nil
}

// StripOrigin removes the $file annotation if present.
func (d *Document) StripOrigin() error {
	obj, err := d.object()
	if err != nil {
		return err
	}
	delete(obj, OriginKey)
	return nil
}

// Origin returns the path stored in the $file annotation.
func (d *Document) Origin() (string, error) {
	obj, err := d.object()
	if err != nil {
		return "", err
	}
	switch v := obj[OriginKey].(type) {
	case nil:
		return "", kerrors.ErrFileMissing
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("%w: got %s", kerrors.ErrFileMustBeString, kind(v))
	}
}

// DecryptField decrypts the armored string held in field name and replaces it
// with the decoded JSON value.
func (d *Document) DecryptField(ctx context.Context, c Cipher, name string) error {
	obj, err := d.object()
	if err != nil {
		return err
	}

	v, ok := obj[name]
	if !ok {
		return fmt.Errorf("%w: %q", kerrors.ErrFieldMissing, name)
	}

	var armored string
	switch v := v.(type) {
	case string:
		armored = v
	case map[string]any:
		return fmt.Errorf("%w: %q", kerrors.ErrAlreadyDecrypted, name)
	default:
		return fmt.Errorf("%w: %q is %s", kerrors.ErrMustBeString, name, kind(v))
	}

	plaintext, err := c.Decrypt(ctx, armored)
	if err != nil {
		return fmt.Errorf("decrypting %q: %w", name, err)
	}

	decoded, err := decode([]byte(plaintext))
	if err != nil {
		return fmt.Errorf("decrypted %q: %w", name, err)
	}

	obj[name] = decoded
	return nil
}

// EncryptField serializes the value held in field name, encrypts it and
// replaces it with the armored result. Any value type is accepted.
func (d *Document) EncryptField(ctx context.Context, c Cipher, name string) error {
	obj, err := d.object()
	if err != nil {
		return err
	}

	v, ok := obj[name]
	if !ok {
		return fmt.Errorf("%w: %q", kerrors.ErrFieldMissing, name)
	}

	plaintext, err := encode(v, "")
	if err != nil {
		return err
	}

	armored, err := c.Encrypt(ctx, string(plaintext))
	if err != nil {
		return fmt.Errorf("encrypting %q: %w", name, err)
	}

	obj[name] = armored
	return nil
}

// MarshalIndent returns the document pretty-printed with two-space indents,
// without a trailing newline.
func (d *Document) MarshalIndent() ([]byte, error) {
	return encode(d.root, "  ")
}

// Marshal returns the compact encoding of the document.
func (d *Document) Marshal() ([]byte, error) {
	return encode(d.root, "")
}

func (d *Document) object() (map[string]any, error) {
	if d == nil {
		return nil, kerrors.ErrRequiresObject
	}
	obj, ok := d.root.(map[string]any)
	if !ok {
		return nil, kerrors.ErrRequiresObject
	}
	return obj, nil
}

func decode(data []byte) (any, error) {
	// encoding/json would replace invalid bytes with U+FFFD and save would
	// write the altered text back.
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", kerrors.ErrParse)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", kerrors.ErrParse)
	}
	return v, nil
}

func encode(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case json.Number, float64:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Package documenttest provides an in-memory Cipher for tests.
package documenttest

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
)

const (
	header = "-----BEGIN PGP MESSAGE-----\n\n"
	footer = "\n-----END PGP MESSAGE-----\n"
)

// Cipher is a reversible stand-in for gpg. Encrypt base64-encodes the
// plaintext inside armor delimiters and Decrypt undoes it.
type Cipher struct {
	// EncryptErr and DecryptErr, when set, are returned instead of doing any work.
	EncryptErr error
	DecryptErr error

	Encrypted []string
	Decrypted []string
}

func (c *Cipher) Encrypt(_ context.Context, plaintext string) (string, error) {
	if c.EncryptErr != nil {
		return "", c.EncryptErr
	}
	c.Encrypted = append(c.Encrypted, plaintext)
	return Armor(plaintext), nil
}

func (c *Cipher) Decrypt(_ context.Context, ciphertext string) (string, error) {
	if c.DecryptErr != nil {
		return "", c.DecryptErr
	}
	body, ok := strings.CutPrefix(ciphertext, header)
	if !ok {
		return "", errors.New("fake cipher: missing armor header")
	}
	body, ok = strings.CutSuffix(body, footer)
	if !ok {
		return "", errors.New("fake cipher: missing armor footer")
	}
	plain, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", err
	}
	c.Decrypted = append(c.Decrypted, string(plain))
	return string(plain), nil
}

// Armor returns the fake ciphertext Encrypt produces for plaintext.
func Armor(plaintext string) string {
	return header + base64.StdEncoding.EncodeToString([]byte(plaintext)) + footer
}

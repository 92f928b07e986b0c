package workflows

import (
	"context"
	"io"

	"github.com/PolarWolf314/jpas/internal/document"
	"github.com/PolarWolf314/jpas/internal/utils"
)

// SaveOptions configures the save workflow.
type SaveOptions struct {
	// File is the destination. If empty, the entry's $file annotation is used.
	File string

	// Stdin supplies the opened entry.
	Stdin io.Reader

	// Cipher encrypts the secrets field.
	Cipher document.Cipher
}

// SaveResult contains the outcome of a save operation.
type SaveResult struct {
	// File is the path that was written.
	File string

	// Document is the entry as written, with secrets encrypted.
	Document *document.Document
}

// Save reads an opened entry from stdin, encrypts its secrets field and
// writes it to disk.
//
// Returns ErrFileMissing if no File is given and the entry has no $file.
// Returns ErrFieldMissing if the entry has no secrets field.
func Save(ctx context.Context, opts SaveOptions) (*SaveResult, error) {
	doc, err := readDocument(opts.Stdin)
	if err != nil {
		return nil, err
	}

	dest := opts.File
	if dest == "" {
		dest, err = doc.Origin()
		if err != nil {
			return nil, err
		}
	}

	if err := doc.StripOrigin(); err != nil {
		return nil, err
	}

	if err := doc.EncryptField(ctx, opts.Cipher, document.SecretsKey); err != nil {
		return nil, err
	}

	data, err := doc.MarshalIndent()
	if err != nil {
		return nil, err
	}

	if err := utils.WriteFile(dest, data); err != nil {
		return nil, err
	}

	return &SaveResult{File: dest, Document: doc}, nil
}

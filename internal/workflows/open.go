package workflows

import (
	"context"
	"io"

	"github.com/PolarWolf314/jpas/internal/document"
	"github.com/PolarWolf314/jpas/internal/utils"
)

// OpenOptions configures the open workflow.
type OpenOptions struct {
	// File is the entry to open. If empty, the entry is read from Stdin.
	File string

	// Stdin supplies the entry when File is empty.
	Stdin io.Reader

	// Cipher decrypts the secrets field.
	Cipher document.Cipher
}

// OpenResult contains the outcome of an open operation.
type OpenResult struct {
	// Document is the entry with its secrets decrypted.
	Document *document.Document

	// File is the path the entry was read from, empty for stdin.
	File string
}

// Open reads an entry and decrypts its secrets field.
//
// When reading from a file, the entry is annotated with $file set to the
// path as given. An entry read from stdin is left as is, including any
// $file it already carries.
func Open(ctx context.Context, opts OpenOptions) (*OpenResult, error) {
	var (
		doc *document.Document
		err error
	)

	if opts.File != "" {
		doc, err = readFileDocument(opts.File)
		if err != nil {
			return nil, err
		}
		if err := doc.AttachOrigin(opts.File); err != nil {
			return nil, err
		}
	} else {
		doc, err = readDocument(opts.Stdin)
		if err != nil {
			return nil, err
		}
	}

	if err := doc.DecryptField(ctx, opts.Cipher, document.SecretsKey); err != nil {
		return nil, err
	}

	return &OpenResult{Document: doc, File: opts.File}, nil
}

func readDocument(r io.Reader) (*document.Document, error) {
	data, err := utils.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return document.Parse(data)
}

func readFileDocument(path string) (*document.Document, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return document.Parse(data)
}

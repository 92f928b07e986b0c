// Package errors provides typed error values for the jpas application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Input errors: the entry could not be read or decoded (ErrParse, ErrIO)
//   - Shape errors: the document has the wrong form (ErrRequiresObject, ErrFileMissing)
//   - Field errors: the secrets field is unusable (ErrFieldMissing, ErrAlreadyDecrypted)
//   - Crypto errors: the gpg subprocess failed (ErrGPGIO, ErrGPGExit, ErrGPGSignal)
//   - Bootstrap errors: jpas.json already exists (ErrAlreadyDone)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %q", errors.ErrFieldMissing, name)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrAlreadyDone) {
//	    // Show user-friendly message
//	}
package errors

package errors

import "errors"

// Input errors indicate the entry could not be read or decoded.
var (
	// ErrParse indicates the input is not a valid JSON document.
	ErrParse = errors.New("parse error")

	// ErrIO indicates a file or stream could not be read or written.
	ErrIO = errors.New("i/o error")
)

// Shape errors indicate the document does not have the expected form.
var (
	// ErrRequiresObject indicates the document root is not a JSON object.
	ErrRequiresObject = errors.New("requires object")

	// ErrFileMissing indicates the $file annotation is absent or null.
	ErrFileMissing = errors.New("file missing")

	// ErrFileMustBeString indicates the $file annotation is not a string.
	ErrFileMustBeString = errors.New("file must be string")
)

// Field errors indicate the encrypted field cannot be processed.
var (
	// ErrFieldMissing indicates the field is not present in the document.
	ErrFieldMissing = errors.New("field missing")

	// ErrMustBeString indicates the field holds neither an armored string nor an object.
	ErrMustBeString = errors.New("must be string")

	// ErrAlreadyDecrypted indicates the field already holds a decoded object.
	ErrAlreadyDecrypted = errors.New("already decrypted")
)

// Crypto errors indicate the gpg subprocess failed.
var (
	// ErrGPGIO indicates the gpg process could not be started or fed its input.
	ErrGPGIO = errors.New("gpg i/o failure")

	// ErrGPGExit indicates gpg exited with a non-zero status.
	ErrGPGExit = errors.New("gpg exited with error")

	// ErrGPGSignal indicates gpg was terminated by a signal.
	ErrGPGSignal = errors.New("gpg terminated by signal")
)

// Bootstrap errors.
var (
	// ErrAlreadyDone indicates jpas.json already exists in the working directory.
	ErrAlreadyDone = errors.New("already done")

	// ErrNotImplemented indicates a reserved command was invoked.
	ErrNotImplemented = errors.New("not implemented")
)

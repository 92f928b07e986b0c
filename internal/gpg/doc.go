// Package gpg wraps the local gpg program as two string transformations.
//
// Encryption runs
//
//	gpg --no-tty --batch --default-recipient-self --armor --sign --encrypt
//
// and decryption runs
//
//	gpg --no-tty --batch --decrypt
//
// with the payload on stdin and the result read from stdout. Key selection,
// passphrases and agent handling are left to the user's gpg configuration;
// the child inherits the environment, so GNUPGHOME is honoured.
//
// # Failures
//
// A failed run returns one of three error types:
//
//   - *IOError: the process could not be started or its stdin written
//   - *ExitError: gpg exited non-zero; Code and Stderr are captured
//   - *SignalError: gpg was killed by a signal
//
// Each matches the corresponding sentinel in internal/errors via errors.Is.
package gpg

// Package workflows provides high-level orchestration for jpas commands.
//
// Workflows coordinate the document, gpg and configs packages to implement
// complete user-facing features, independent of CLI concerns like flag
// parsing and output formatting.
//
// # Available Workflows
//
//   - Open: reads an entry from a file or stdin and decrypts its secrets
//   - Save: reads an opened entry from stdin, encrypts its secrets and
//     writes it to the given file or the file named by $file
//   - Init: writes an empty jpas.json
//   - Query: reserved, always fails with ErrNotImplemented
//
// # Ordering
//
// Save resolves the destination before stripping $file, strips $file before
// encrypting, and only writes once encryption has succeeded. A failed save
// never touches the destination.
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels in internal/errors. Use
// errors.Is() to check for specific conditions:
//
//	_, err := workflows.Init(ctx, opts)
//	if errors.Is(err, kerrors.ErrAlreadyDone) {
//	    // Show user-friendly message
//	}
package workflows

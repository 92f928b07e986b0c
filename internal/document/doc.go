// Package document implements the operations jpas performs on entry
// documents.
//
// An entry is a JSON object. Two keys take part in the protocol:
//
//   - "secrets" holds an ASCII-armored PGP message on disk and a decoded
//     JSON value once opened.
//   - "$file" names the file an opened entry came from, so that a later
//     save can find its way back.
//
// All other keys are carried through untouched. Every operation requires the
// document root to be an object and fails with ErrRequiresObject otherwise.
package document

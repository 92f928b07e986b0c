// Package utils provides shared I/O helpers for the jpas application.
//
// # I/O Utilities
//
//   - ReadAll: reads an input stream to EOF
//   - WriteFile: replaces a file's contents in one write
//
// # Terminal Utilities
//
//   - IsTerminal: reports whether a stream is an interactive terminal
package utils

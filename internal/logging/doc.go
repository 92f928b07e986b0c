// Package logger provides leveled logging for jpas commands.
//
// Verbosity is taken from the number of -v flags on the command line:
//
//   - no flag: only warnings and errors
//   - -v:  info messages as well
//   - -vv: debug messages as well
//
// All output goes to stderr, since stdout carries entry documents that are
// usually piped into another process.
//
// # Usage
//
//	log := Logger{Verbosity: 2}
//	log.Infof("Opening %s", path)
//
// Commands create a logger in the root PersistentPreRun and pass it to
// workflows through their options.
package logger

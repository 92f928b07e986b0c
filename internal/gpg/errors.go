package gpg

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/jpas/internal/errors"
)

// IOError reports a failure to start gpg or to write its input.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("gpg %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{kerrors.ErrGPGIO, e.Err}
}

// ExitError reports a non-zero gpg exit status.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("gpg exited with code %d", e.Code)
	}
	return fmt.Sprintf("gpg exited with code %d: %s", e.Code, msg)
}

func (e *ExitError) Is(target error) bool {
	return target == kerrors.ErrGPGExit
}

// SignalError reports that gpg was terminated by a signal.
type SignalError struct {
	Signal string
}

func (e *SignalError) Error() string {
	if e.Signal == "" {
		return "gpg terminated by signal"
	}
	return "gpg terminated by signal: " + e.Signal
}

func (e *SignalError) Is(target error) bool {
	return target == kerrors.ErrGPGSignal
}

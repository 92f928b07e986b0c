package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/PolarWolf314/jpas/internal/configs"
	"github.com/PolarWolf314/jpas/internal/document"
	kerrors "github.com/PolarWolf314/jpas/internal/errors"
	"github.com/PolarWolf314/jpas/internal/gpg"
	"github.com/PolarWolf314/jpas/internal/ui"
	"github.com/PolarWolf314/jpas/internal/utils"
)

// newCipher builds the gpg adapter from the user settings. Tests replace it.
var newCipher = func() (document.Cipher, error) {
	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}
	program := userConfig.GPG.Program
	if program == "" {
		program = gpg.DefaultProgram
	}
	Logger.Debugf("Using gpg program: %s", program)
	return gpg.New(program), nil
}

// fileArg returns the optional FILE argument. An explicit empty path is an
// error rather than "no argument".
func fileArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	if args[0] == "" {
		return "", fmt.Errorf("%w: empty file path", kerrors.ErrIO)
	}
	return args[0], nil
}

// warnIfTerminal warns when an entry is about to be read from an interactive terminal.
func warnIfTerminal(in io.Reader) {
	if utils.IsTerminal(in) {
		Logger.Warnf("Reading entry from the terminal, finish with Ctrl-D")
	}
}

// FormatError renders err for display on stderr, with a hint for errors the
// user can fix directly.
func FormatError(err error) string {
	msg := ui.Error.Sprint("✗") + " " + err.Error()

	var hint string
	switch {
	case errors.Is(err, kerrors.ErrAlreadyDone):
		hint = ui.Path.Sprint(configs.ProjectConfigName) + " already exists in this directory"
	case errors.Is(err, kerrors.ErrFileMissing):
		hint = "Pass a destination, e.g. " + ui.Code.Sprint("jpas save out.json") + ", or set $file in the entry"
	case errors.Is(err, kerrors.ErrAlreadyDecrypted):
		hint = "The entry is already open; pipe it to " + ui.Code.Sprint("jpas save") + " instead"
	case errors.Is(err, kerrors.ErrGPGIO):
		hint = "Is gpg installed and on your PATH?"
	}

	if hint != "" {
		msg += "\n" + ui.Info.Sprint("→") + " " + hint
	}
	return ui.EnsureNewline(msg)
}

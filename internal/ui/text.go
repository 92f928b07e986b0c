package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter colours one kind of message text. Without colour it falls back
// to a plain prefix and suffix.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline appends a newline unless s already ends with one.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor reports whether messages should be plain text: NO_COLOR is
// set, or fatih/color decided the output is not a colour terminal.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code marks a jpas command line the user can run, in backticks when plain.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path marks entry and config file names.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Success marks the check shown after init.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error marks the cross in front of a failed command's message.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Info marks the arrow in front of a hint.
	Info = Formatter{color.New(color.FgCyan), "", ""}
)

package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return IsFileTTY(os.Stdout)
}

// IsFileTTY reports whether f is attached to a terminal.
func IsFileTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

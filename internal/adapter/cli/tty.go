package cli

import (
	"os"

	"golang.org/x/term"
)

// IsTTY checks if the given file descriptor is a terminal. Piped input (the
// normal way to feed a diff) is not a TTY; an interactive terminal is.
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// stdinIsTerminal reports whether process stdin is an interactive terminal,
// in which case waiting for a diff on stdin would hang the user.
func stdinIsTerminal() bool {
	return IsTTY(os.Stdin.Fd())
}

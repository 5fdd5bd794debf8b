// Package istty reports whether file descriptors are attached to a terminal.
// It is the one place terminal detection happens, so sinks and the style-mode
// helpers agree on what counts as a TTY.
package istty

import "golang.org/x/term"

// IsTerminal reports whether fd refers to a terminal. Negative descriptors
// are never terminals.
func IsTerminal(fd int) bool {
	if fd < 0 {
		return false
	}
	return term.IsTerminal(fd)
}

//go:build !windows

package recfmt

// EOL is the line terminator formatters append, "\r\n" on Windows and "\n"
// everywhere else.
const EOL = "\n"

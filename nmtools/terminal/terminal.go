package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)

// Output is where messages are printed. Decoded data goes to stdout, so
// messages default to stderr.
var Output io.Writer = os.Stderr

// Colors enables ANSI colors, on by default when stderr is a terminal.
var Colors = terminal.IsTerminal(int(os.Stderr.Fd()))

// Error print error
func Error(err error, format string, a ...interface{}) {
	var message = format
	if err != nil {
		message = fmt.Sprintf("%s [%s]", format, err)
	}
	fmt.Fprintf(Output, "%s%s%s\n", color(red), fmt.Sprintf(message, a...), color(reset))
}

// Warn print warning
func Warn(format string, a ...interface{}) {
	fmt.Fprintf(Output, "%s%s%s\n", color(yellow), fmt.Sprintf(format, a...), color(reset))
}

func color(c string) string {
	if !Colors {
		return ""
	}
	return c
}

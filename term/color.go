package term

import (
	"io"
	"os"

	xterm "golang.org/x/term"
)

const (
	RED     = "\033[91m"
	GREEN   = "\033[92m"
	YELLOW  = "\033[93m"
	BLUE    = "\033[94m"
	MAGENTA = "\033[95m"
	CYAN    = "\033[96m"
	WHITE   = "\033[97m"
	NOCOLOR = "\033[0m"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	colorEnabled = IsTerminal(os.Stdout)
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// SetColor forces colours on or off. Colours default to on only when
// stdout is a terminal.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

// SetOutput redirects normal and error output, mostly for tests.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

func Colorize(color, s string) string {
	if !colorEnabled {
		return s
	}
	return color + s + NOCOLOR
}

func print(s string) {
	io.WriteString(stdout, s)
}

func Print(s string) {
	print(s)
}

func Red(s string) {
	print(Colorize(RED, s))
}

func Green(s string) {
	print(Colorize(GREEN, s))
}

func Yellow(s string) {
	print(Colorize(YELLOW, s))
}

func Blue(s string) {
	print(Colorize(BLUE, s))
}

func Cyan(s string) {
	print(Colorize(CYAN, s))
}

func Magenta(s string) {
	print(Colorize(MAGENTA, s))
}

// Width returns the terminal width of stdout, or fallback when it is not a
// terminal.
func Width(fallback int) int {
	w, _, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

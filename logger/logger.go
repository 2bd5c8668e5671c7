package logger

import (
	"fmt"
	"io"
	"os"

	"git.lolli.tech/lollipopkit/minicpp/consts"
)

var out io.Writer = os.Stderr

// SetOutput redirects log lines, mostly for tests.
func SetOutput(w io.Writer) {
	out = w
}

func I(fm string, a ...any) {
	if consts.Debug {
		s := fmt.Sprintf("[INFO] %s\n", fm)
		fmt.Fprintf(out, s, a...)
	}
}

func E(fm string, a ...any) {
	if consts.Debug {
		s := fmt.Sprintf("[ERROR] %s\n", fm)
		fmt.Fprintf(out, s, a...)
	}
}

func W(fm string, a ...any) {
	if consts.Debug {
		s := fmt.Sprintf("[WARN] %s\n", fm)
		fmt.Fprintf(out, s, a...)
	}
}

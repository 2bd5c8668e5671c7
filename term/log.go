package term

import (
	"fmt"
	"io"
	"strings"
)

func prefix(color, tag string) string {
	return Colorize(color, tag) + " "
}

func printf(w io.Writer, format string, args ...any) {
	io.WriteString(w, fmt.Sprintf(format+"\n", args...))
}

func Warn(format string, args ...any) {
	printf(stderr, prefix(YELLOW, "[WAR]")+format, args...)
}

func Info(format string, args ...any) {
	printf(stdout, prefix(CYAN, "[INF]")+format, args...)
}

// Error prints to stderr. It never exits; callers decide how to stop.
func Error(format string, args ...any) {
	printf(stderr, prefix(RED, "[ERR]")+format, args...)
}

func Suc(format string, args ...any) {
	printf(stdout, prefix(GREEN, "[SUC]")+format, args...)
}

// Box draws s inside a titled border.
func Box(title, s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	longest := 4
	for idx := range lines {
		if n := len([]rune(lines[idx])); n > longest {
			longest = n
		}
	}

	w := longest + 2
	if w < len(title)+3 {
		w = len(title) + 3
	}
	var sb strings.Builder
	sb.WriteString("╔═ " + title + " " + strings.Repeat("═", w-len(title)-3) + "╗\n")
	for idx := range lines {
		pad := w - 1 - len([]rune(lines[idx]))
		sb.WriteString("║ " + lines[idx] + strings.Repeat(" ", pad) + "║\n")
	}
	sb.WriteString("╚" + strings.Repeat("═", w) + "╝\n")
	return sb.String()
}

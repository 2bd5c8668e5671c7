package consts

import "regexp"

const (
	ClassDefReStr = `^\s*class\s+[a-zA-Z_][a-zA-Z0-9_]*\s*\{`
	FnDefReStr    = `^\s*(int|float|void)\s+[a-zA-Z_][a-zA-Z0-9_]*\s*\(`
	ClassEndReStr = `\}\s*;\s*$`
)

var (
	ClassDefRe = _re(ClassDefReStr)
	FnDefRe    = _re(FnDefReStr)
	ClassEndRe = _re(ClassEndReStr)
)

func _re(s string) *regexp.Regexp {
	return regexp.MustCompile(s)
}

package repl

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"atomicgo.dev/keyboard/keys"
	"git.lolli.tech/lollipopkit/minicpp/compiler/ast"
	"git.lolli.tech/lollipopkit/minicpp/compiler/lexer"
	"git.lolli.tech/lollipopkit/minicpp/compiler/parser"
	"git.lolli.tech/lollipopkit/minicpp/config"
	"git.lolli.tech/lollipopkit/minicpp/consts"
	"git.lolli.tech/lollipopkit/minicpp/logger"
	"git.lolli.tech/lollipopkit/minicpp/printer"
	"git.lolli.tech/lollipopkit/minicpp/query"
	"git.lolli.tech/lollipopkit/minicpp/term"
	"git.lolli.tech/lollipopkit/minicpp/utils"
)

const chunkName = "stdin"

var (
	helpMsgs = []string{
		"`Esc` / `Ctrl + c`: Exit REPL",
		"`Tab`: Add 2 spaces",
		"`Ctrl + b`: Wrap current line with `cout << ...;`",
		"`Ctrl + a`: Clear REPL history",
		"",
		"`.json`: Print the last tree as JSON",
		"`.q PATH`: Query the last tree, eg. `.q 0.declarations.#.name`",
		"`.tokens`: Print the tokens of the last block",
		"`.reset`: Drop the pending block and the last tree",
		"`.help`: Show this message",
	}
	coutRunesPre = []rune("cout << ")
	coutRunesSuf = []rune(";")
)

// Repl holds one interactive session. Everything but Run works without a
// terminal.
type Repl struct {
	historyPath string
	historySize int

	history    []string
	blockLines []string
	lastSrc    string
	lastJson   string
}

func New(cfg *config.Config) *Repl {
	return &Repl{
		historyPath: cfg.HistoryFile,
		historySize: cfg.HistorySize,
		history:     []string{},
		blockLines:  []string{},
	}
}

// Run reads lines until Esc, Ctrl+C or Ctrl+D.
func (self *Repl) Run() {
	term.Print(fmt.Sprintf(
		"minicpp (v%s) - %s for help\n",
		term.Colorize(term.CYAN, consts.VERSION),
		term.Colorize(term.GREEN, "`.help`"),
	))

	self.loadHistory()

	for {
		prompt := "> "
		if len(self.blockLines) > 0 {
			prompt = ". "
		}
		line, ok := term.ReadLine(term.ReadLineConfig{
			History: self.history,
			Prompt:  prompt,
			KeyFunc: self.handleKeyboard,
		})
		if !ok {
			return
		}
		self.Feed(line)
	}
}

// Feed handles one input line: a dot command, or a line of source that is
// parsed once its block is complete.
func (self *Repl) Feed(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	// .reset also escapes a half-typed block
	if trimmed == ".reset" || len(self.blockLines) == 0 && strings.HasPrefix(trimmed, ".") {
		self.command(trimmed)
		return
	}

	self.blockLines = append(self.blockLines, line)
	blockStr := strings.Join(self.blockLines, "\n")
	if !_isBlockEnd(blockStr) {
		return
	}

	self.eval(blockStr)
	self.blockLines = []string{}
}

func (self *Repl) eval(src string) {
	logger.I("[REPL] parsing %q", src)
	defer self.updateHistory(src)

	prog, err := parser.Parse(src, chunkName)
	if prog == nil {
		term.Error("%v", err)
		return
	}
	if err != nil {
		reportIllegal(err)
	}

	term.Print(printer.Sprint(prog))
	data, err := ast.Encode(prog)
	if err != nil {
		term.Error("encode tree: %v", err)
		return
	}
	self.lastSrc = src
	self.lastJson = string(data)
}

func reportIllegal(err error) {
	for _, e := range lexer.IllegalChars(err) {
		term.Warn("%v", e)
	}
}

func (self *Repl) command(cmd string) {
	name, arg, _ := strings.Cut(cmd, " ")
	switch name {
	case ".help":
		term.Print(term.Box("help", strings.Join(helpMsgs, "\n")))
	case ".reset":
		self.blockLines = []string{}
		self.lastSrc = ""
		self.lastJson = ""
		term.Suc("REPL state reset")
	case ".json":
		if self.lastJson == "" {
			term.Warn("nothing parsed yet")
			return
		}
		prog, err := ast.Decode([]byte(self.lastJson))
		if err != nil {
			term.Error("%v", err)
			return
		}
		data, err := ast.EncodeIndent(prog)
		if err != nil {
			term.Error("%v", err)
			return
		}
		term.Print(string(data) + "\n")
	case ".q":
		if self.lastJson == "" {
			term.Warn("nothing parsed yet")
			return
		}
		if strings.TrimSpace(arg) == "" {
			term.Warn("usage: .q PATH")
			return
		}
		res, err := query.Lookup(self.lastJson, arg)
		if err != nil {
			term.Warn("%v", err)
			return
		}
		term.Print(res + "\n")
	case ".tokens":
		if self.lastSrc == "" {
			term.Warn("nothing parsed yet")
			return
		}
		for _, tok := range lexer.NewLexer(self.lastSrc, chunkName).Tokens() {
			term.Print(tok.String() + "\n")
		}
	default:
		term.Warn("unknown command %s, try .help", name)
	}
}

func (self *Repl) handleKeyboard(key keys.Key, ed *term.LineEditor) (bool, bool, error) {
	switch key.Code {
	// wrap with `cout << ...;`
	case keys.CtrlB:
		rs := append(append([]rune{}, coutRunesPre...), ed.Runes...)
		ed.Set(string(append(rs, coutRunesSuf...)))
		return false, true, nil
	case keys.Esc:
		self.writeHistory()
		os.Exit(0)
	case keys.CtrlA:
		self.history = []string{}
		self.writeHistory()
	}
	return false, false, nil
}

func (self *Repl) _updateHistory(str string) {
	if idx := slices.Index(self.history, str); idx != -1 {
		self.history = slices.Delete(self.history, idx, idx+1)
	}
	self.history = append(self.history, str)
	if over := len(self.history) - self.historySize; self.historySize > 0 && over > 0 {
		self.history = slices.Delete(self.history, 0, over)
	}
}

func (self *Repl) updateHistory(str string) {
	str = strings.Trim(str, "\n")
	strs := strings.Split(str, "\n")
	for idx := range strs {
		self._updateHistory(strs[idx])
	}
	self.writeHistory()
}

// _blockNotEndCount is the number of unclosed braces outside string
// literals.
func _blockNotEndCount(block string) int {
	start := 0
	end := 0
	inStr := false
	for idx, c := range block {
		switch c {
		case '{':
			if !inStr {
				start++
			}
		case '}':
			if !inStr {
				end++
			}
		case '"':
			if idx == 0 || block[idx-1] != '\\' {
				inStr = !inStr
			}
		case '\n':
			// strings never span lines in the REPL
			inStr = false
		}
	}
	return start - end
}

// _isBlockEnd reports whether block can be handed to the parser: braces are
// balanced, a class is closed with `};` and a function header has its body.
func _isBlockEnd(block string) bool {
	if _blockNotEndCount(block) > 0 {
		return false
	}
	if consts.ClassDefRe.MatchString(block) && !consts.ClassEndRe.MatchString(block) {
		return false
	}
	trimmed := strings.TrimSpace(block)
	if consts.FnDefRe.MatchString(block) && !strings.Contains(block, "{") && !strings.HasSuffix(trimmed, ";") {
		return false
	}
	return true
}

func (self *Repl) writeHistory() {
	if self.historyPath == "" {
		return
	}
	data, err := ast.Json.MarshalIndent(self.history, "", "  ")
	if err != nil {
		term.Warn("[REPL] marshal history failed: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(self.historyPath), 0755); err != nil {
		term.Warn("[REPL] create history dir failed: %v", err)
		return
	}
	if err := os.WriteFile(self.historyPath, data, 0644); err != nil {
		term.Warn("[REPL] write history failed: %v", err)
	}
}

func (self *Repl) loadHistory() {
	if !utils.Exist(self.historyPath) {
		self.writeHistory()
		return
	}
	data, err := os.ReadFile(self.historyPath)
	if err != nil {
		term.Warn("[REPL] read history failed: %v", err)
		return
	}
	if err := ast.Json.Unmarshal(data, &self.history); err != nil {
		term.Warn("[REPL] unmarshal history failed: %v", err)
	}
}

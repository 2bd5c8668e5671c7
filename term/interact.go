package term

import (
	"regexp"

	"atomicgo.dev/cursor"
	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
)

var doubleWidthRegexp = regexp.MustCompile(`[^\x00-\xff]`)

const (
	_prompt = "> "
)

// KeyListenFunc handles keys ReadLine does not know about.
// Returning reset redraws the line, stop ends ReadLine.
type KeyListenFunc func(key keys.Key, ed *LineEditor) (stop bool, reset bool, err error)

type ReadLineConfig struct {
	// History is the history of lines, oldest first.
	History []string
	// Prompt is the prompt to show.
	Prompt string
	// KeyFunc is called for every key without a built-in binding.
	KeyFunc KeyListenFunc
}

// LineEditor is the editable state of one ReadLine call.
type LineEditor struct {
	Runes   []rune
	Pos     int
	history []string
	histIdx int
}

func NewLineEditor(history []string) *LineEditor {
	return &LineEditor{history: history, histIdx: len(history)}
}

func (e *LineEditor) String() string {
	return string(e.Runes)
}

func (e *LineEditor) Insert(rs ...rune) {
	tail := append([]rune{}, e.Runes[e.Pos:]...)
	e.Runes = append(append(e.Runes[:e.Pos], rs...), tail...)
	e.Pos += len(rs)
}

func (e *LineEditor) Backspace() {
	if e.Pos == 0 {
		return
	}
	e.Runes = append(e.Runes[:e.Pos-1], e.Runes[e.Pos:]...)
	e.Pos--
}

func (e *LineEditor) Delete() {
	if e.Pos >= len(e.Runes) {
		return
	}
	e.Runes = append(e.Runes[:e.Pos], e.Runes[e.Pos+1:]...)
}

func (e *LineEditor) Left() {
	if e.Pos > 0 {
		e.Pos--
	}
}

func (e *LineEditor) Right() {
	if e.Pos < len(e.Runes) {
		e.Pos++
	}
}

// Set replaces the line and moves the cursor to its end.
func (e *LineEditor) Set(s string) {
	e.Runes = []rune(s)
	e.Pos = len(e.Runes)
}

// Prev loads the previous history entry.
func (e *LineEditor) Prev() {
	if e.histIdx > 0 {
		e.histIdx--
		e.Set(e.history[e.histIdx])
	}
}

// Next loads the next history entry, or an empty line past the newest one.
func (e *LineEditor) Next() {
	switch {
	case e.histIdx < len(e.history)-1:
		e.histIdx++
		e.Set(e.history[e.histIdx])
	case e.histIdx == len(e.history)-1:
		e.histIdx++
		e.Set("")
	}
}

// column is the terminal column of the cursor, counting wide runes twice.
func (e *LineEditor) column() int {
	return displayWidth(e.Runes[:e.Pos])
}

// ReadLine reads one line from the keyboard. ok is false when the user
// pressed Ctrl+C or Ctrl+D on an empty line.
func ReadLine(config ReadLineConfig) (line string, ok bool) {
	if len(config.Prompt) == 0 {
		config.Prompt = _prompt
	}
	print(config.Prompt)
	ed := NewLineEditor(config.History)
	promptWidth := displayWidth([]rune(config.Prompt))
	ok = true

	keyboard.Listen(func(key keys.Key) (stop bool, err error) {
		switch key.Code {
		case keys.CtrlC:
			ok = false
			print("\n")
			return true, nil
		case keys.CtrlD:
			if len(ed.Runes) == 0 {
				ok = false
				print("\n")
				return true, nil
			}
		case keys.Enter:
			print("\n")
			return true, nil
		case keys.RuneKey:
			ed.Insert(key.Runes...)
		case keys.Space:
			ed.Insert(' ')
		case keys.Tab:
			ed.Insert(' ', ' ')
		case keys.Backspace:
			ed.Backspace()
		case keys.Delete:
			ed.Delete()
		case keys.Left:
			ed.Left()
		case keys.Right:
			ed.Right()
		case keys.Up:
			ed.Prev()
		case keys.Down:
			ed.Next()
		default:
			if config.KeyFunc != nil {
				stop, reset, err := config.KeyFunc(key, ed)
				if stop || err != nil {
					return stop, err
				}
				if !reset {
					return false, nil
				}
			}
		}

		redraw(config.Prompt, ed)
		cursor.HorizontalAbsolute(ed.column() + promptWidth)
		return false, nil
	})
	return ed.String(), ok
}

func redraw(prompt string, ed *LineEditor) {
	cursor.ClearLine()
	cursor.StartOfLine()
	print(prompt + ed.String())
}

func displayWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		if doubleWidthRegexp.MatchString(string(r)) {
			w += 2
		} else {
			w++
		}
	}
	return w
}

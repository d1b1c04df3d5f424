// Package progress shows a spinner on stderr while a command waits for the
// contract engine, and detects what the terminal can display.
package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes the stream progress is drawn on.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int // 0 when unknown
}

// DetectTerminalCapabilities inspects stderr. NO_COLOR disables color and
// ERGORUN_ASCII=1 forces ASCII symbols.
func DetectTerminalCapabilities() TerminalCapabilities {
	return detect(int(os.Stderr.Fd()), terminal{}, os.Getenv)
}

type terminalInfo interface {
	IsTerminal(fd int) bool
	Width(fd int) int
}

type terminal struct{}

func (terminal) IsTerminal(fd int) bool { return term.IsTerminal(fd) }

func (terminal) Width(fd int) int {
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

func detect(fd int, t terminalInfo, getenv func(string) string) TerminalCapabilities {
	if !t.IsTerminal(fd) {
		return TerminalCapabilities{}
	}
	return TerminalCapabilities{
		IsTTY:           true,
		SupportsColor:   getenv("NO_COLOR") == "",
		SupportsUnicode: getenv("ERGORUN_ASCII") != "1",
		Width:           t.Width(fd),
	}
}

// symbols is the character set used for one terminal.
type symbols struct {
	ok      string
	fail    string
	spinner int // index into spinner.CharSets
}

func symbolsFor(caps TerminalCapabilities) symbols {
	if caps.SupportsUnicode {
		return symbols{ok: "✓", fail: "✗", spinner: 14} // ⠋ ⠙ ⠹ ⠸ ...
	}
	return symbols{ok: "[OK]", fail: "[FAIL]", spinner: 9} // | / - \
}

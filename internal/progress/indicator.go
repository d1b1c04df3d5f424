package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Indicator is a lifecycle.Handler that spins while the engine runs. Nothing
// is drawn off a terminal, and the spinner erases itself on completion so the
// result stays the first line of output.
type Indicator struct {
	caps    TerminalCapabilities
	symbols symbols
	spinner *spinner.Spinner
	w       io.Writer

	// Summary prints a one-line outcome after completion.
	Summary bool
}

// NewIndicator creates an indicator writing to w (stderr when nil).
func NewIndicator(caps TerminalCapabilities, w io.Writer) *Indicator {
	if w == nil {
		w = os.Stderr
	}
	return &Indicator{caps: caps, symbols: symbolsFor(caps), w: w}
}

// OnCommandStart starts the spinner.
func (p *Indicator) OnCommandStart(name string) {
	if !p.caps.IsTTY {
		return
	}
	p.stop()
	s := spinner.New(spinner.CharSets[p.symbols.spinner], 100*time.Millisecond, spinner.WithWriter(p.w))
	s.Suffix = spinnerSuffix(name)
	s.Start()
	p.spinner = s
}

// OnCommandComplete stops the spinner and optionally prints a summary.
func (p *Indicator) OnCommandComplete(name string, success bool, duration time.Duration) {
	p.stop()
	if p.Summary {
		mark := outcomeMark(p.symbols, success, p.caps.SupportsColor)
		fmt.Fprintln(p.w, summaryLine(mark, name, success, duration))
	}
}

func (p *Indicator) stop() {
	if p.spinner == nil {
		return
	}
	p.spinner.Stop()
	p.spinner = nil
}

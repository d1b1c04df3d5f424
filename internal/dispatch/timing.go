package dispatch

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/accordproject/ergorun/internal/lifecycle"
)

// TimingLogger logs the outcome and duration of each engine call at Debug
// level.
type TimingLogger struct {
	Logger *log.Logger
}

var _ lifecycle.Handler = TimingLogger{}

// OnCommandStart implements lifecycle.Handler. The request itself is logged
// by the Dispatcher, so nothing is written here.
func (l TimingLogger) OnCommandStart(string) {}

// OnCommandComplete implements lifecycle.Handler.
func (l TimingLogger) OnCommandComplete(name string, success bool, duration time.Duration) {
	if l.Logger != nil {
		l.Logger.Debug("contract engine returned", "command", name, "success", success, "duration", duration.Round(time.Millisecond))
	}
}

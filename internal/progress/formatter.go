package progress

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

func spinnerSuffix(name string) string {
	return " waiting for contract engine (" + name + ")"
}

// summaryLine is printed after name finishes.
func summaryLine(mark, name string, success bool, d time.Duration) string {
	status := "finished"
	if !success {
		status = "failed"
	}
	return fmt.Sprintf("%s %s %s in %s", mark, name, status, d.Round(time.Millisecond))
}

// outcomeMark picks the success or failure symbol, colored when allowed.
func outcomeMark(s symbols, success, useColor bool) string {
	mark, attr := s.ok, color.FgGreen
	if !success {
		mark, attr = s.fail, color.FgRed
	}
	if !useColor {
		return mark
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(mark)
}

package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err with colors (when the terminal supports them).
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	return render(err, red, yellow, cyan)
}

// FormatErrorPlain renders err without ANSI escape codes.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return render(err, fmt.Sprint, fmt.Sprint, fmt.Sprint)
}

func render(err *CLIError, heading, label, accent func(...interface{}) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", heading(err.Category.String()), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\n%s\n  %s\n", label("Usage:"), err.Usage)
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", label("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  %s %s\n", accent("-"), step)
		}
	}
	return b.String()
}

// FprintError writes err to w. Colors are only used when w is stderr.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	if w == os.Stderr {
		fmt.Fprint(w, FormatError(err))
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}

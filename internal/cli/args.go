package cli

import (
	"strings"

	"github.com/accordproject/ergorun/internal/classify"
	"github.com/accordproject/ergorun/internal/command"
	"github.com/accordproject/ergorun/internal/config"
)

const requestFlag = "--" + command.OptRequest

// gatherRequests rewrites "--request a b c" into "--request a --request b
// --request c" so the array option can take several values after one flag.
// Gathering stops at the next flag, at "--", or at a token recognizes
// accepts (a model or logic file).
func gatherRequests(args []string, recognizes func(string) bool) []string {
	out := make([]string, 0, len(args))
	gathering := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case arg == requestFlag:
			out = append(out, arg)
			if i+1 < len(args) {
				// the first value is taken as-is, like any flag value
				i++
				out = append(out, args[i])
			}
			gathering = true
		case strings.HasPrefix(arg, requestFlag+"="):
			out = append(out, arg)
			gathering = true
		case strings.HasPrefix(arg, "-") && arg != "-":
			gathering = false
			out = append(out, arg)
		case gathering && !recognizes(arg):
			out = append(out, requestFlag, arg)
		default:
			gathering = false
			out = append(out, arg)
		}
	}
	return out
}

// recognizer returns the classifier's Recognizes for the extensions the
// config selects. Config errors are ignored here; the command reports them
// when it loads the config itself.
func (a *app) recognizer(args []string) func(string) bool {
	exts := classify.DefaultExtensions
	if !hasRequest(args) {
		return exts.Recognizes
	}
	if cfg, err := config.Load(configFlag(args)); err == nil {
		exts = cfg.Extensions()
	}
	return exts.Recognizes
}

func hasRequest(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == requestFlag || strings.HasPrefix(arg, requestFlag+"=") {
			return true
		}
	}
	return false
}

// configFlag finds the --config/-c value without a full flag parse.
func configFlag(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		}
	}
	return ""
}

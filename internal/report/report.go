// Package report prints the outcome of a contract command: the result on
// stdout, or the failure message followed by its JSON detail on stderr.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/accordproject/ergorun/internal/command"
	"github.com/accordproject/ergorun/internal/engine"
)

// Reporter writes command outcomes.
type Reporter struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Reporter writing to out and errOut. Nil writers fall back to
// the process's stdout and stderr.
func New(out, errOut io.Writer) *Reporter {
	return &Reporter{Out: out, Err: errOut}
}

// Success prints result. generateText prints only the "response" field of the
// result; a result without one prints an empty line. Every other command
// prints the whole result as JSON.
func (r *Reporter) Success(name command.Name, result engine.Result) error {
	if name == command.GenerateText {
		text, _, err := result.Response()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out(), text)
		return err
	}
	_, err := fmt.Fprintln(r.out(), result.String())
	return err
}

// Failure prints err as "<message> <detail>". Engine failures carry their own
// detail; any other error is described as {"message": ...}.
func (r *Reporter) Failure(err error) {
	fmt.Fprintln(r.errOut(), FailureText(err))
}

// FailureText formats err the way Failure prints it.
func FailureText(err error) string {
	var engErr *engine.Error
	if errors.As(err, &engErr) {
		detail := engine.Result(engErr.Detail).String()
		return engErr.Message + " " + detail
	}
	detail, mErr := json.Marshal(map[string]string{"message": err.Error()})
	if mErr != nil {
		return err.Error()
	}
	return err.Error() + " " + string(detail)
}

func (r *Reporter) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Reporter) errOut() io.Writer {
	if r.Err == nil {
		return os.Stderr
	}
	return r.Err
}

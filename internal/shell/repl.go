package shell

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/palmshell/psh/internal/commands"
)

// ErrInterrupt and ErrEndOfInput are the two sentinel read outcomes the
// REPL treats specially; any other non-nil error from ReadLine is a fatal
// read failure.
var (
	ErrInterrupt  = errors.New("interrupt")
	ErrEndOfInput = errors.New("end of input")
)

// LineSource is the REPL's only source of input. It owns line editing,
// history, and prompt decoration — none of which the core cares about.
type LineSource interface {
	ReadLine(prompt string) (string, error)
	AddHistory(line string)
	Close() error
}

// REPL drives the read-parse-evaluate loop described in spec section 4.7.
// It performs no command execution itself: every dispatch flows through
// the Evaluator.
type REPL struct {
	Lines  LineSource
	Eval   *Evaluator
	Prompt commands.PromptProvider
	Stdout *os.File
}

// NewREPL wires a LineSource, an Evaluator, and a prompt provider into a
// runnable loop.
func NewREPL(lines LineSource, eval *Evaluator, prompt commands.PromptProvider) *REPL {
	return &REPL{Lines: lines, Eval: eval, Prompt: prompt, Stdout: os.Stdout}
}

// Run executes the loop until Exit, EndOfInput, or an unrecoverable read
// error, returning the process exit code.
func (r *REPL) Run(ctx context.Context) int {
	defer r.Lines.Close()

	for {
		line, err := r.Lines.ReadLine(r.Prompt.GetPrompt())
		switch {
		case err == nil:
			r.Lines.AddHistory(line)
			cmd, perr := Parse(line)
			if perr != nil {
				fmt.Fprintln(os.Stderr, perr)
				continue
			}
			if evalErr := r.Eval.Evaluate(ctx, cmd, nil, nil); evalErr != nil {
				if errors.Is(evalErr, ErrExit) {
					return 0
				}
				fmt.Fprintln(os.Stderr, evalErr)
			}

		case errors.Is(err, ErrInterrupt):
			continue

		case errors.Is(err, ErrEndOfInput):
			return 0

		default:
			fmt.Fprintf(os.Stderr, "psh: %v\n", err)
			return 1
		}
	}
}

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/palmshell/psh/internal/commands"
	"github.com/palmshell/psh/internal/ui"
)

// ErrExit signals normal shell termination. The parser forbids Exit from
// appearing inside Pipe or Background (see command.go), so it can only
// ever be produced at the top level the REPL evaluates directly — nothing
// in Evaluate itself needs to propagate it out of a nested call.
var ErrExit = errors.New("exit")

// Evaluator recursively executes a parsed Command tree: creating pipes
// between adjacent stages, launching a goroutine per concurrent stage,
// opening redirection files, and dispatching to built-ins or external
// processes.
type Evaluator struct {
	Chat   commands.ChatBackend
	Prompt commands.PromptProvider
	Stdout io.Writer
}

func NewEvaluator(chat commands.ChatBackend, prompt commands.PromptProvider) *Evaluator {
	return &Evaluator{Chat: chat, Prompt: prompt, Stdout: os.Stdout}
}

// Evaluate executes cmd. upstream is the stage's stdin (nil means inherit
// the terminal); downstream is the stage's stdout (nil means inherit the
// terminal). All errors except ErrExit are reported to standard error
// in-place rather than returned, matching the evaluator's "never returns
// a value" contract.
func (e *Evaluator) Evaluate(ctx context.Context, cmd *Command, upstream io.ReadCloser, downstream io.WriteCloser) error {
	if cmd == nil {
		return nil
	}

	switch cmd.Kind {
	case KindEmpty:
		return nil

	case KindExit:
		fmt.Fprintln(e.Stdout, "Exiting...")
		return ErrExit

	case KindBuiltin:
		e.runBuiltin(ctx, cmd, upstream, downstream)
		return nil

	case KindExternal:
		e.runExternal(ctx, cmd, upstream, downstream)
		return nil

	case KindPipe:
		e.runPipe(ctx, cmd, upstream, downstream)
		return nil

	case KindBackground:
		e.runBackground(ctx, cmd, upstream, downstream)
		return nil

	default:
		return nil
	}
}

func (e *Evaluator) runBuiltin(ctx context.Context, cmd *Command, upstream io.ReadCloser, downstream io.WriteCloser) {
	in, out, cleanup, err := e.resolveEndpoints(cmd.Redirect, upstream, downstream)
	if err != nil {
		printErr(err)
		return
	}
	defer cleanup()

	var piped *string
	if in != nil {
		data, rerr := io.ReadAll(in)
		if rerr != nil {
			printErr(WidenIOError(rerr))
			return
		}
		s := string(data)
		piped = &s
	}

	// command.go only classifies a node as KindBuiltin after finding it in
	// the registry, but the registry can change between parsing and
	// evaluation, so a failed lookup is reported rather than dereferenced.
	bc, ok := commands.Get(cmd.Name)
	if !ok {
		printErr(BuiltinErrorf("%s: command not found", cmd.Name))
		return
	}

	env := &commands.ExecutionEnv{
		PipedInput: piped,
		Stdout:     out,
		Chat:       e.Chat,
		Prompt:     e.Prompt,
	}
	if runErr := bc.Run(ctx, cmd.Args, env); runErr != nil {
		if cmd.Name == "chat" {
			// chat failures get their own category rather than the
			// generic builtin one. The chat built-in can't construct a
			// *ShellError itself without an import cycle back into this
			// package, so the evaluator classifies by name here.
			printErr(LLMError("%s", runErr))
		} else {
			printErr(ClassifyBuiltinError(runErr))
		}
	}
}

// resolveEndpoints applies a stage's Redirection over its pipe endpoints.
// A redirection file always overrides the corresponding pipe endpoint; if
// it does so, the overridden pipe endpoint is closed immediately rather
// than left dangling.
func (e *Evaluator) resolveEndpoints(redir Redirection, upstream io.ReadCloser, downstream io.WriteCloser) (io.Reader, io.Writer, func(), error) {
	var closers []io.Closer

	var in io.Reader
	if upstream != nil {
		in = upstream
		closers = append(closers, upstream)
	}
	if redir.InputFile != "" {
		f, ferr := os.Open(redir.InputFile)
		if ferr != nil {
			closeAll(closers)
			return nil, nil, func() {}, WidenIOError(ferr)
		}
		if upstream != nil {
			upstream.Close()
			closers = closers[:len(closers)-1]
		}
		in = f
		closers = append(closers, f)
	}

	out := io.Writer(e.Stdout)
	if downstream != nil {
		out = downstream
		closers = append(closers, downstream)
	}
	if redir.OutputFile != "" {
		f, ferr := os.Create(redir.OutputFile)
		if ferr != nil {
			closeAll(closers)
			return nil, nil, func() {}, WidenIOError(ferr)
		}
		if downstream != nil {
			downstream.Close()
			closers = closers[:len(closers)-1]
		}
		out = f
		closers = append(closers, f)
	}

	cleanup := func() { closeAll(closers) }
	return in, out, cleanup, nil
}

func (e *Evaluator) runExternal(ctx context.Context, cmd *Command, upstream io.ReadCloser, downstream io.WriteCloser) {
	stdin, stdinCloser, err := e.resolveExternalStdin(cmd.Redirect, upstream)
	if err != nil {
		printErr(err)
		return
	}
	stdout, stdoutCloser, err := e.resolveExternalStdout(cmd.Redirect, downstream)
	if err != nil {
		if stdinCloser != nil {
			stdinCloser.Close()
		}
		printErr(err)
		return
	}

	runErr := launchExternal(ctx, cmd.Name, cmd.Args, stdin, stdout)

	if stdinCloser != nil {
		stdinCloser.Close()
	}
	if stdoutCloser != nil {
		stdoutCloser.Close()
	}
	if runErr != nil {
		printErr(runErr)
	}
}

func (e *Evaluator) resolveExternalStdin(redir Redirection, upstream io.ReadCloser) (io.Reader, io.Closer, error) {
	if redir.InputFile != "" {
		f, err := os.Open(redir.InputFile)
		if err != nil {
			return nil, nil, WidenIOError(err)
		}
		if upstream != nil {
			upstream.Close()
		}
		return f, f, nil
	}
	if upstream != nil {
		return upstream, upstream, nil
	}
	return os.Stdin, nil, nil
}

func (e *Evaluator) resolveExternalStdout(redir Redirection, downstream io.WriteCloser) (io.Writer, io.Closer, error) {
	if redir.OutputFile != "" {
		f, err := os.Create(redir.OutputFile)
		if err != nil {
			return nil, nil, WidenIOError(err)
		}
		if downstream != nil {
			downstream.Close()
		}
		return f, f, nil
	}
	if downstream != nil {
		return downstream, downstream, nil
	}
	return os.Stdout, nil, nil
}

// runPipe creates an anonymous pipe and hands exactly one end to each of
// two goroutines evaluating left and right; the parent retains neither
// end once the goroutines are launched. Any lingering parent-held copy of
// either end would stop the consumer from ever observing EOF.
func (e *Evaluator) runPipe(ctx context.Context, cmd *Command, upstream io.ReadCloser, downstream io.WriteCloser) {
	pr, pw, err := os.Pipe()
	if err != nil {
		printErr(ExecuteError("pipe: %v", err))
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer recoverWorker()
		e.Evaluate(ctx, cmd.Left, upstream, pw)
	}()
	go func() {
		defer wg.Done()
		defer recoverWorker()
		e.Evaluate(ctx, cmd.Right, pr, downstream)
	}()
	wg.Wait()
}

// runBackground detaches cmd.Inner onto its own goroutine and returns
// immediately, with no reaping and no job table. A backgrounded bare
// external command (not part of a pipeline, no redirection) gets a
// courtesy "[1] <pid>" notification; every other shape runs silently,
// since builtins and pipeline stages have no single process id to report.
func (e *Evaluator) runBackground(ctx context.Context, cmd *Command, upstream io.ReadCloser, downstream io.WriteCloser) {
	inner := cmd.Inner
	if inner.Kind == KindExternal && upstream == nil && downstream == nil &&
		inner.Redirect.InputFile == "" && inner.Redirect.OutputFile == "" {
		pid, err := launchExternalBackground(inner.Name, inner.Args)
		if err != nil {
			printErr(err)
			return
		}
		fmt.Fprintf(e.Stdout, "[1] %d\n", pid)
		return
	}

	go func() {
		defer recoverWorker()
		e.Evaluate(ctx, inner, upstream, downstream)
	}()
}

func recoverWorker() {
	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "psh: Execute Error: worker failed: %v\n", r)
	}
}

func printErr(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(err.Error()))
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}

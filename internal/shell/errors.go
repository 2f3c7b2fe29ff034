package shell

import (
	"errors"
	"fmt"
	"io/fs"
)

// ShellError is the closed error taxonomy surfaced to the user. Every
// variant renders as "psh: <Category>: <message>" on standard error.
type ShellError struct {
	kind kind
	msg  string
}

type kind int

const (
	kindParse kind = iota
	kindBuiltin
	kindIO
	kindExecute
	kindLLM
	kindRedirection
)

func (k kind) label() string {
	switch k {
	case kindParse:
		return "Parse Error"
	case kindBuiltin:
		return "Builtin Error"
	case kindIO:
		return "IO Error"
	case kindExecute:
		return "Execute Error"
	case kindLLM:
		return "LLM Error"
	case kindRedirection:
		return "Redirection Error"
	default:
		return "Error"
	}
}

func (e *ShellError) Error() string {
	return fmt.Sprintf("psh: %s: %s", e.kind.label(), e.msg)
}

// ParseError reports a syntax error from the parser.
func ParseError(format string, args ...any) *ShellError {
	return &ShellError{kind: kindParse, msg: fmt.Sprintf(format, args...)}
}

// BuiltinErrorf reports a failure from a built-in handler.
func BuiltinErrorf(format string, args ...any) *ShellError {
	return &ShellError{kind: kindBuiltin, msg: fmt.Sprintf(format, args...)}
}

// ExecuteError reports a failure launching or waiting on an external
// program.
func ExecuteError(format string, args ...any) *ShellError {
	return &ShellError{kind: kindExecute, msg: fmt.Sprintf(format, args...)}
}

// LLMError reports a failure from the chat backend.
func LLMError(format string, args ...any) *ShellError {
	return &ShellError{kind: kindLLM, msg: fmt.Sprintf(format, args...)}
}

// RedirectionError reports a malformed redirection.
func RedirectionError(format string, args ...any) *ShellError {
	return &ShellError{kind: kindRedirection, msg: fmt.Sprintf(format, args...)}
}

// WidenIOError converts any non-nil, non-ShellError into an IoError,
// per the error taxonomy's automatic widening of filesystem/IO failures.
// A *ShellError is returned unchanged so categories are never double-wrapped.
func WidenIOError(err error) error {
	if err == nil {
		return nil
	}
	if se, ok := err.(*ShellError); ok {
		return se
	}
	return &ShellError{kind: kindIO, msg: err.Error()}
}

// Category returns the human-readable label a ShellError renders with, so
// callers and tests can assert on error taxonomy without depending on
// exact message text. Returns "" for a nil or non-ShellError value.
func Category(err error) string {
	se, ok := err.(*ShellError)
	if !ok {
		return ""
	}
	return se.kind.label()
}

// ClassifyBuiltinError wraps a plain error returned by a built-in's Run
// into the taxonomy. A *ShellError already carries a category and passes
// through unchanged. Anything wrapping an *fs.PathError (a failed os.*
// call such as cd's os.Chdir or ls's os.ReadDir) widens to IoError, since
// the failure is a filesystem problem rather than the built-in's own
// logic. Everything else becomes a BuiltinError.
func ClassifyBuiltinError(err error) error {
	if err == nil {
		return nil
	}
	if se, ok := err.(*ShellError); ok {
		return se
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &ShellError{kind: kindIO, msg: err.Error()}
	}
	return &ShellError{kind: kindBuiltin, msg: err.Error()}
}

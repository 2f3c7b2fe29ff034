// Package commands implements the shell's closed built-in registry: cd,
// pwd, echo, ls, grep, and chat. Every handler shares a uniform signature
// so the evaluator can dispatch to any of them without a type switch.
package commands

import (
	"context"
	"io"
)

// ChatBackend is the narrow collaborator the "chat" built-in consumes to
// turn a prompt into a response. Its HTTP implementation lives outside the
// core, in internal/chatbackend.
type ChatBackend interface {
	Submit(ctx context.Context, prompt string) (string, error)
}

// PromptProvider supplies cosmetic glyphs for the built-ins that want one
// (today, just "chat"'s thinking line). Its implementation lives in
// internal/ui.
type PromptProvider interface {
	GetPrompt() string
	GetEmoji() string
}

// ExecutionEnv carries everything a built-in handler may write to or read
// from, plus the optional collaborators a handler may need. Stdout is
// always non-nil; PipedInput is non-nil exactly when the stage has an
// upstream pipe.
type ExecutionEnv struct {
	PipedInput *string
	Stdout     io.Writer
	Chat       ChatBackend
	Prompt     PromptProvider
}

// Handler is the uniform built-in signature: argv, the stage's piped input
// (nil when there is none), and a byte sink to write to.
type Handler func(ctx context.Context, argv []string, env *ExecutionEnv) error

// Command names one registry entry.
type Command struct {
	Name        string
	Description string
	Run         Handler
}

// registry is the closed set of built-ins. Populated once in init; never
// mutated at runtime except by tests that register and later unregister a
// scratch entry.
var registry = make(map[string]*Command)

func register(cmd *Command) {
	registry[cmd.Name] = cmd
}

// Get looks up a built-in by name.
func Get(name string) (*Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// Register adds or replaces a registry entry. Exported for tests that want
// to exercise the evaluator against a mock built-in without depending on
// real cd/ls/grep semantics.
func Register(cmd *Command) {
	register(cmd)
}

// Unregister removes a registry entry. Test-only escape hatch paired with
// Register.
func Unregister(name string) {
	delete(registry, name)
}

package commands

import (
	"context"
	"fmt"
	"strings"
)

func init() {
	register(&Command{
		Name:        "echo",
		Description: "Write arguments and any piped input to standard output",
		Run:         echo,
	})
}

// echo writes its space-joined arguments plus a trailing newline. If the
// stage has upstream piped input, its content (right-trimmed of a trailing
// newline) is appended as one more element before joining.
func echo(ctx context.Context, argv []string, env *ExecutionEnv) error {
	parts := argv
	if env.PipedInput != nil {
		trimmed := strings.TrimRight(*env.PipedInput, "\n")
		parts = append(append([]string{}, argv...), trimmed)
	}

	fmt.Fprintln(env.Stdout, strings.Join(parts, " "))
	return nil
}

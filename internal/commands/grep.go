package commands

import (
	"context"
	"fmt"
	"strings"
)

func init() {
	register(&Command{
		Name:        "grep",
		Description: "Write lines containing a pattern",
		Run:         grep,
	})
}

// grep requires a pattern as its first argument. The content to search
// comes from upstream piped input when present; otherwise from the
// remaining arguments, space-joined. If neither source is present (or
// both are empty), grep fails — there is no "read from a file path"
// fallback here; trailing arguments are search text, never file paths.
func grep(ctx context.Context, argv []string, env *ExecutionEnv) error {
	if len(argv) < 1 {
		return fmt.Errorf("grep: missing pattern")
	}
	pattern := argv[0]

	var content string
	switch {
	case env.PipedInput != nil:
		content = *env.PipedInput
	case len(argv) > 1:
		content = strings.Join(argv[1:], " ")
	}

	if content == "" {
		return fmt.Errorf("grep: no input to search (provide piped input or content arguments)")
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, pattern) {
			fmt.Fprintln(env.Stdout, line)
		}
	}
	return nil
}

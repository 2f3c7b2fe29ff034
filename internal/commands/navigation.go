package commands

import (
	"context"
	"fmt"
	"os"
)

func init() {
	register(&Command{
		Name:        "cd",
		Description: "Change the current working directory",
		Run:         cd,
	})
	register(&Command{
		Name:        "pwd",
		Description: "Print the current working directory",
		Run:         pwd,
	})
}

// cd changes the shell process's working directory. With no argument it
// falls back to HOME, or "/" if HOME is unset.
//
// cd mutates process-global state and is only meaningful on the REPL
// thread; running it inside a pipeline or background command races with
// the REPL goroutine reading/writing the same working directory. That race
// is tolerated, not prevented.
func cd(ctx context.Context, argv []string, env *ExecutionEnv) error {
	target := ""
	if len(argv) > 0 {
		target = argv[0]
	} else {
		target = os.Getenv("HOME")
		if target == "" {
			target = "/"
		}
	}

	if err := os.Chdir(target); err != nil {
		return fmt.Errorf("cd: %s: %w", target, err)
	}
	return nil
}

func pwd(ctx context.Context, argv []string, env *ExecutionEnv) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("pwd: %w", err)
	}
	fmt.Fprintln(env.Stdout, dir)
	return nil
}

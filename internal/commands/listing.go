package commands

import (
	"context"
	"fmt"
	"os"
)

func init() {
	register(&Command{
		Name:        "ls",
		Description: "List directory entries, one per line",
		Run:         ls,
	})
}

// ls lists the entries of a directory (default "."), one path per line.
// os.ReadDir documents that it returns entries sorted by filename, which
// is the order callers observe here.
func ls(ctx context.Context, argv []string, env *ExecutionEnv) error {
	path := "."
	if len(argv) > 0 {
		path = argv[0]
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("ls: %s: %w", path, err)
	}

	for _, e := range entries {
		fmt.Fprintln(env.Stdout, e.Name())
	}
	return nil
}

package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmshell/psh/internal/commands"
)

func TestLs_ListsDirectoryEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	ls, ok := commands.Get("ls")
	require.True(t, ok)

	var out bytes.Buffer
	env := &commands.ExecutionEnv{Stdout: &out}
	err := ls.Run(context.Background(), []string{dir}, env)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, lines)
}

func TestLs_DefaultsToCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "only.txt"), []byte("x"), 0o644))

	start, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(start)

	ls, ok := commands.Get("ls")
	require.True(t, ok)

	var out bytes.Buffer
	env := &commands.ExecutionEnv{Stdout: &out}
	err = ls.Run(context.Background(), nil, env)
	require.NoError(t, err)
	assert.Equal(t, "only.txt\n", out.String())
}

func TestLs_NonexistentDirectoryFails(t *testing.T) {
	ls, ok := commands.Get("ls")
	require.True(t, ok)

	var out bytes.Buffer
	env := &commands.ExecutionEnv{Stdout: &out}
	err := ls.Run(context.Background(), []string{"/no/such/directory/psh-test"}, env)
	assert.Error(t, err)
}

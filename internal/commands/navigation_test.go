package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmshell/psh/internal/commands"
)

func TestCd_ChangesWorkingDirectory(t *testing.T) {
	start, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(start)

	dir := t.TempDir()
	cd, ok := commands.Get("cd")
	require.True(t, ok)

	env := &commands.ExecutionEnv{Stdout: &bytes.Buffer{}}
	err = cd.Run(context.Background(), []string{dir}, env)
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(cwd)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCd_NoArgFallsBackToHome(t *testing.T) {
	start, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(start)

	home := t.TempDir()
	origHome := os.Getenv("HOME")
	os.Setenv("HOME", home)
	defer os.Setenv("HOME", origHome)

	cd, ok := commands.Get("cd")
	require.True(t, ok)

	env := &commands.ExecutionEnv{Stdout: &bytes.Buffer{}}
	err = cd.Run(context.Background(), nil, env)
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(home)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(cwd)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCd_NonexistentDirectoryFails(t *testing.T) {
	cd, ok := commands.Get("cd")
	require.True(t, ok)

	env := &commands.ExecutionEnv{Stdout: &bytes.Buffer{}}
	err := cd.Run(context.Background(), []string{"/no/such/path/psh-test"}, env)
	assert.Error(t, err)
}

func TestPwd_WritesWorkingDirectory(t *testing.T) {
	want, err := os.Getwd()
	require.NoError(t, err)

	pwd, ok := commands.Get("pwd")
	require.True(t, ok)

	var out bytes.Buffer
	env := &commands.ExecutionEnv{Stdout: &out}
	err = pwd.Run(context.Background(), nil, env)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out.String())
}

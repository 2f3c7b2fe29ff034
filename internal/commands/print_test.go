package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmshell/psh/internal/commands"
)

func TestEcho_JoinsArguments(t *testing.T) {
	echo, ok := commands.Get("echo")
	require.True(t, ok)

	var out bytes.Buffer
	env := &commands.ExecutionEnv{Stdout: &out}
	err := echo.Run(context.Background(), []string{"hello", "world"}, env)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out.String())
}

func TestEcho_NoArgsWritesBlankLine(t *testing.T) {
	echo, ok := commands.Get("echo")
	require.True(t, ok)

	var out bytes.Buffer
	env := &commands.ExecutionEnv{Stdout: &out}
	err := echo.Run(context.Background(), nil, env)
	require.NoError(t, err)
	assert.Equal(t, "\n", out.String())
}

func TestEcho_AppendsPipedInput(t *testing.T) {
	echo, ok := commands.Get("echo")
	require.True(t, ok)

	piped := "piped text\n"
	var out bytes.Buffer
	env := &commands.ExecutionEnv{Stdout: &out, PipedInput: &piped}
	err := echo.Run(context.Background(), []string{"prefix"}, env)
	require.NoError(t, err)
	assert.Equal(t, "prefix piped text\n", out.String())
}

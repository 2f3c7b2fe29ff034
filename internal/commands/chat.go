package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/palmshell/psh/internal/ui"
)

func init() {
	register(&Command{
		Name:        "chat",
		Description: "Ask the configured LLM backend a question",
		Run:         chat,
	})
}

// chat joins its arguments into a prompt, shows a "thinking" status line
// decorated with a glyph from the PromptProvider collaborator while the
// ChatBackend collaborator is invoked synchronously, then writes the
// (syntax-highlighted) response. Both collaborators are narrow external
// interfaces — this handler never touches net/http directly.
func chat(ctx context.Context, argv []string, env *ExecutionEnv) error {
	if len(argv) < 1 {
		return fmt.Errorf("chat: missing prompt")
	}
	if env.Chat == nil {
		return fmt.Errorf("chat: no chat backend configured")
	}

	glyph := "*"
	if env.Prompt != nil {
		glyph = env.Prompt.GetEmoji()
	}
	prompt := strings.Join(argv, " ")

	var response string
	err := ui.WithSpinnerErr(os.Stderr, ui.MutedStyle.Render(glyph+" thinking..."), func() error {
		var submitErr error
		response, submitErr = env.Chat.Submit(ctx, prompt)
		return submitErr
	})
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	fmt.Fprintln(env.Stdout, ui.Highlight(response, "response.md"))
	return nil
}

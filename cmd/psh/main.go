// Command psh is the entry point for the PalmShell-class interactive
// shell: it wires the LineSource, ChatBackend, and PromptProvider
// collaborators together and hands them to the REPL driver.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/palmshell/psh/internal/chatbackend"
	"github.com/palmshell/psh/internal/config"
	"github.com/palmshell/psh/internal/lineedit"
	"github.com/palmshell/psh/internal/shell"
	"github.com/palmshell/psh/internal/ui"

	// Register built-ins.
	_ "github.com/palmshell/psh/internal/commands"
)

const version = "0.1.0"

func main() {
	var (
		showVersion = pflag.Bool("version", false, "print the version and exit")
		oneShot     = pflag.StringP("command", "c", "", "run a single command line and exit")
		historyFile = pflag.String("history-file", "", "override the history file path")
	)
	pflag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "psh: %v\n", err)
		os.Exit(1)
	}

	// "auto" keeps the palette ui picked from the terminal background.
	switch ui.Theme(cfg.Theme) {
	case ui.ThemeDark:
		ui.SetDarkTheme()
	case ui.ThemeLight:
		ui.SetLightTheme()
	}

	chat := chatbackend.New(cfg)
	prompt := ui.NewProvider()
	eval := shell.NewEvaluator(chat, prompt)
	ctx := context.Background()

	if *oneShot != "" {
		runOneShot(ctx, eval, *oneShot)
		return
	}

	histPath := *historyFile
	if histPath == "" {
		if p, herr := config.HistoryPath(); herr == nil {
			histPath = p
		}
	}

	lines, err := lineedit.New(histPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "psh: %v\n", err)
		os.Exit(1)
	}

	repl := shell.NewREPL(lines, eval, prompt)
	os.Exit(repl.Run(ctx))
}

func runOneShot(ctx context.Context, eval *shell.Evaluator, line string) {
	cmd, err := shell.Parse(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if evalErr := eval.Evaluate(ctx, cmd, nil, nil); evalErr != nil {
		if errors.Is(evalErr, shell.ErrExit) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, evalErr)
		os.Exit(1)
	}
}

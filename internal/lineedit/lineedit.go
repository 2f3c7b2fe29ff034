// Package lineedit implements the shell's LineSource collaborator over
// chzyer/readline for history and interactive line editing.
package lineedit

import (
	"io"

	"github.com/chzyer/readline"

	"github.com/palmshell/psh/internal/shell"
)

// Source adapts a *readline.Instance to shell.LineSource, translating
// readline's io.EOF / ErrInterrupt sentinels into shell.ErrEndOfInput and
// shell.ErrInterrupt.
type Source struct {
	rl *readline.Instance
}

// New opens a readline instance persisting history to historyPath (empty
// disables history persistence).
func New(historyPath string) (*Source, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:       historyPath,
		HistorySearchFold: true,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	})
	if err != nil {
		return nil, err
	}
	return &Source{rl: rl}, nil
}

func (s *Source) ReadLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	switch err {
	case nil:
		return line, nil
	case readline.ErrInterrupt:
		return "", shell.ErrInterrupt
	case io.EOF:
		return "", shell.ErrEndOfInput
	default:
		return "", err
	}
}

// AddHistory is a no-op: readline.Instance.Readline already records each
// non-empty returned line to its in-memory and on-disk history when
// Config.HistoryFile is set, so there is nothing left for the caller to do.
func (s *Source) AddHistory(line string) {}

func (s *Source) Close() error {
	return s.rl.Close()
}

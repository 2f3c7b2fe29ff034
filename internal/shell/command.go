package shell

import (
	"strings"

	"github.com/palmshell/psh/internal/commands"
)

// Kind tags the variant carried by a Command node.
type Kind int

const (
	KindEmpty Kind = iota
	KindExit
	KindBuiltin
	KindExternal
	KindPipe
	KindBackground
)

// Command is the tagged-variant command tree the parser produces. Only the
// fields relevant to Kind are populated.
type Command struct {
	Kind Kind

	// KindBuiltin / KindExternal
	Name     string
	Args     []string
	Redirect Redirection

	// KindPipe
	Left  *Command
	Right *Command

	// KindBackground
	Inner *Command
}

// Parse converts a raw input line into a Command tree. Precedence, from
// lowest to highest: a trailing background marker is stripped first, then
// the remainder is split on pipes, then each stage is parsed as a simple
// command.
func Parse(line string) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return &Command{Kind: KindEmpty}, nil
	}

	background := false
	if strings.HasSuffix(trimmed, "&") {
		background = true
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "&"))
		if trimmed == "" {
			return nil, ParseError("cannot background an empty command")
		}
	}

	cmd, err := parsePipeline(trimmed)
	if err != nil {
		return nil, err
	}

	if background {
		if cmd.Kind == KindEmpty || cmd.Kind == KindExit {
			return nil, ParseError("cannot background an empty command")
		}
		return &Command{Kind: KindBackground, Inner: cmd}, nil
	}
	return cmd, nil
}

// parsePipeline splits at the first '|' and recurses on the remainder,
// producing a right-leaning tree: a | b | c becomes Pipe(a, Pipe(b, c)).
func parsePipeline(segment string) (*Command, error) {
	idx := strings.IndexByte(segment, '|')
	if idx == -1 {
		return parseSimple(segment)
	}

	left, err := parseSimple(segment[:idx])
	if err != nil {
		return nil, err
	}
	right, err := parsePipeline(segment[idx+1:])
	if err != nil {
		return nil, err
	}
	if left.Kind == KindEmpty || left.Kind == KindExit ||
		right.Kind == KindEmpty || right.Kind == KindExit {
		return nil, ParseError("empty command in pipeline")
	}
	return &Command{Kind: KindPipe, Left: left, Right: right}, nil
}

// parseSimple tokenizes a single stage's text, resolves its redirection,
// and classifies the command name into Exit / (silently no-op) Empty /
// Builtin / External.
func parseSimple(segment string) (*Command, error) {
	tokens := Tokenize(segment)
	if len(tokens) == 0 {
		return &Command{Kind: KindEmpty}, nil
	}

	name := tokens[0]
	if name == ">" || name == "<" {
		return nil, RedirectionError("missing command before redirection")
	}
	args, redir, err := resolveRedirection(tokens[1:])
	if err != nil {
		return nil, err
	}

	switch name {
	case "exit":
		return &Command{Kind: KindExit}, nil
	case "quit":
		return &Command{Kind: KindEmpty}, nil
	}

	if _, ok := commands.Get(name); ok {
		return &Command{Kind: KindBuiltin, Name: name, Args: args, Redirect: redir}, nil
	}
	return &Command{Kind: KindExternal, Name: name, Args: args, Redirect: redir}, nil
}

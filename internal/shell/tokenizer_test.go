package shell_test

import (
	"testing"

	"github.com/palmshell/psh/internal/shell"
)

func TestTokenize_BasicCommands(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple command", "echo hello", []string{"echo", "hello"}},
		{"multiple args", "ls -la /path/to/dir", []string{"ls", "-la", "/path/to/dir"}},
		{"extra internal whitespace", "echo   hello   world", []string{"echo", "hello", "world"}},
		{"leading and trailing whitespace", "  echo hi  ", []string{"echo", "hi"}},
		{"tabs between tokens", "echo\thello\tworld", []string{"echo", "hello", "world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shell.Tokenize(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			for i, tok := range got {
				if tok != tt.expected[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.input, i, tok, tt.expected[i])
				}
			}
		})
	}
}

func TestTokenize_EmptyAndWhitespaceOnly(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\t", "  \t \t "} {
		got := shell.Tokenize(input)
		if len(got) != 0 {
			t.Errorf("Tokenize(%q) = %v, want empty", input, got)
		}
	}
}

func TestTokenize_NoQuotingOrEscaping(t *testing.T) {
	// This tokenizer deliberately has no quote or escape handling: a quoted
	// phrase stays split into separate tokens, and a backslash is just
	// another character.
	got := shell.Tokenize(`echo "hello world"`)
	want := []string{"echo", `"hello`, `world"`}
	if len(got) != len(want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokenize[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

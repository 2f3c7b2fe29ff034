package shell

import "strings"

// Tokenize splits a raw line into whitespace-separated tokens. There is no
// quoting or escaping: a token is simply a maximal run of non-whitespace
// bytes. Leading and trailing whitespace is discarded, and any run of
// whitespace between tokens collapses to a single split point.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

package mdir

import "strings"

// Normalizer post-processes rendered Markdown. Implementations must be
// idempotent and must not change what Parse reads from the text.
type Normalizer interface {
	Normalize(markdown string) string
}

// NormalizerFunc adapts a function to Normalizer.
type NormalizerFunc func(string) string

// Normalize calls f(markdown).
func (f NormalizerFunc) Normalize(markdown string) string { return f(markdown) }

var identity = NormalizerFunc(func(s string) string { return s })

// CollapseBlankLines folds runs of blank or whitespace-only lines into one
// empty line, drops leading and trailing blank lines, and ends non-empty
// output with exactly one newline. Line endings become "\n".
var CollapseBlankLines Normalizer = NormalizerFunc(collapseBlankLines)

func collapseBlankLines(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	blank := false
	wrote := false
	for _, line := range splitLines(s) {
		if strings.TrimSpace(line) == "" {
			blank = wrote
			continue
		}
		if blank {
			b.WriteByte('\n')
			blank = false
		}
		b.WriteString(line)
		b.WriteByte('\n')
		wrote = true
	}
	return b.String()
}

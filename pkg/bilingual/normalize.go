package bilingual

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// defaultTagPattern matches the three memoQ inline tag syntaxes:
// angle-bracket <...>, square-bracket [...] and curly-brace {...}. The
// square-bracket alternative is non-greedy so consecutive bracket tags do
// not merge into one match.
const defaultTagPattern = `(?:<[^>]+>|\[[^\]]+?\]|\{[^}]+\})`

// Normalizer rewrites inline formatting tags into logical line breaks.
// Tags are not user-visible content, but each one forces a new line in the
// rendered document, so counting them as text would skew line lengths.
type Normalizer struct {
	patterns []*regexp2.Regexp
}

// NewNormalizer creates a normalizer with the built-in tag patterns plus
// any extra patterns, typically loaded from a tag-rule file.
func NewNormalizer(extra ...string) (*Normalizer, error) {
	patterns := []*regexp2.Regexp{regexp2.MustCompile(defaultTagPattern, 0)}
	for _, p := range extra {
		re, err := regexp2.Compile(p, 0)
		if err != nil {
			return nil, fmt.Errorf("invalid tag pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}
	return &Normalizer{patterns: patterns}, nil
}

// Normalize replaces every tag span with a single line break and unifies
// all line-ending variants to "\n". Empty input stays empty.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	for _, re := range n.patterns {
		replaced, err := re.Replace(text, "\n", -1, -1)
		if err != nil {
			// Replace only fails on a timeout, and no timeout is set.
			continue
		}
		text = replaced
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

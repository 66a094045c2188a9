package normalizer

import (
	"regexp"
	"strings"
)

// Normalizer strips markup artifacts from article text. Cleaning is a
// fixed-order sequence of substitutions; the output is a fixpoint, so
// running Clean on already-clean text is a no-op.
type Normalizer struct {
	citations  *regexp.Regexp
	braces     *regexp.Regexp
	disallowed *regexp.Regexp
	whitespace *regexp.Regexp
}

func New() *Normalizer {
	return &Normalizer{
		citations:  regexp.MustCompile(`\[\d+\]`),
		braces:     regexp.MustCompile(`\{.*?\}`),
		disallowed: regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?-]`),
		whitespace: regexp.MustCompile(`\s+`),
	}
}

// Clean removes citation markers and template remnants, drops characters
// outside letters, digits, underscore and basic punctuation, and collapses
// whitespace runs into single spaces.
func (n *Normalizer) Clean(text string) string {
	if text == "" {
		return ""
	}

	text = n.citations.ReplaceAllString(text, "")
	text = n.braces.ReplaceAllString(text, "")
	text = n.disallowed.ReplaceAllString(text, "")
	text = n.whitespace.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

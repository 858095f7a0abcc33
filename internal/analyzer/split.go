package analyzer

import (
	"regexp"
	"strings"
)

// RE2's \s covers ASCII whitespace only, so the class adds vertical tab,
// NEL, and the Unicode separator categories. The set matches what
// strings.TrimSpace trims, keeping all-whitespace input empty after
// normalization.
const whitespaceClass = `[\s\v\x{85}\p{Z}]`

var (
	whitespaceRe = regexp.MustCompile(whitespaceClass + `+`)
	boundaryRe   = regexp.MustCompile(`[.!?]` + whitespaceClass + `+`)
)

// SplitSentences collapses runs of whitespace to single spaces, trims the
// text, and splits after terminal punctuation followed by a space. A
// trailing fragment without a terminator is kept, so headings and list
// items still get scored. Abbreviations are not special-cased.
func SplitSentences(text string) []string {
	normalized := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if normalized == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range boundaryRe.FindAllStringIndex(normalized, -1) {
		// Cut just after the punctuation mark; the whitespace run is the
		// separator and is dropped.
		sentences = append(sentences, normalized[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(normalized) {
		sentences = append(sentences, normalized[start:])
	}
	return sentences
}

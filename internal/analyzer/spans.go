package analyzer

import (
	"regexp"
	"strings"
)

// Span locates one matched substring. Start and End are byte offsets into
// the original-case sentence and Text is sentence[Start:End].
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// phraseSpans scans the lowercased sentence for every phrase in list order.
// Matches for one phrase are non-overlapping left to right; each scan
// resumes at the end of the previous match. Spans from different phrases
// may overlap and are appended in phrase-list order, not sentence order.
func phraseSpans(sentence, lower string, phrases []string) []Span {
	var spans []Span
	for _, phrase := range phrases {
		p := strings.ToLower(phrase)
		if p == "" {
			continue
		}
		from := 0
		for {
			idx := strings.Index(lower[from:], p)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(p)
			// Lowercasing can change byte length for some Unicode input;
			// skip offsets that fall outside the original sentence.
			if end > len(sentence) {
				break
			}
			spans = append(spans, Span{Start: start, End: end, Text: sentence[start:end]})
			from = end
		}
	}
	return spans
}

// patternSpans returns a span for every regexp match in the sentence.
func patternSpans(re *regexp.Regexp, sentence string) []Span {
	var spans []Span
	for _, loc := range re.FindAllStringIndex(sentence, -1) {
		spans = append(spans, Span{Start: loc[0], End: loc[1], Text: sentence[loc[0]:loc[1]]})
	}
	return spans
}

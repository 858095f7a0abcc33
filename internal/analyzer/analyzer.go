// Package analyzer scores sentences for unfalsifiable marketing language.
// It extracts boolean features from lexicon and regex matches, applies
// weighted penalty and bonus rules from a rule pack, and aggregates
// per-sentence scores into a document verdict.
package analyzer

import (
	"github.com/J2PIn/claimbs/internal/rulepack"
)

// Analyzer applies one rule pack to text. It is stateless between calls and
// safe for concurrent use.
type Analyzer struct {
	pack *rulepack.Pack
}

// New returns an Analyzer backed by the given pack.
func New(pack *rulepack.Pack) *Analyzer {
	return &Analyzer{pack: pack}
}

// SentenceAnalysis is the full scoring record for one sentence.
type SentenceAnalysis struct {
	Sentence       string         `json:"sentence"`
	SemanticClass  string         `json:"semantic_class"`
	Features       FeatureMap     `json:"features"`
	Flags          []Flag         `json:"flags"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	TotalScore     int            `json:"total_score"`
}

// ScoreBreakdown separates the penalty total from the bonus total so a
// reader can see how a clamped score came about.
type ScoreBreakdown struct {
	Penalties int `json:"penalties"`
	Bonus     int `json:"bonus"`
}

// AnalyzeSentence scores a single sentence. The sentence is matched in
// lowercase but every span offset refers to the original input.
func (a *Analyzer) AnalyzeSentence(sentence string) SentenceAnalysis {
	ex := a.extract(sentence)
	flags, penalties := a.applyPenalties(ex)
	bonus := a.applyBonuses(ex)

	total := penalties - bonus
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return SentenceAnalysis{
		Sentence:       sentence,
		SemanticClass:  classify(ex.features, a.pack.Classes),
		Features:       ex.features,
		Flags:          flags,
		ScoreBreakdown: ScoreBreakdown{Penalties: penalties, Bonus: bonus},
		TotalScore:     total,
	}
}

// AnalyzeText splits text into sentences, scores each, and aggregates the
// results. An input with no sentences yields the Empty verdict.
func (a *Analyzer) AnalyzeText(text string) AnalysisResult {
	sentences := SplitSentences(text)
	analyses := make([]SentenceAnalysis, 0, len(sentences))
	for _, s := range sentences {
		analyses = append(analyses, a.AnalyzeSentence(s))
	}
	return aggregate(analyses)
}

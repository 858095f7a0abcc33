package analyzer

import "math"

// Overall is the document-level verdict. The worst score and high-BS share
// are pointers because the Empty verdict omits them entirely, while 0 is a
// legitimate value for scored documents.
type Overall struct {
	ScoreMean          float64  `json:"score_mean"`
	ScoreWorstSentence *int     `json:"score_worst_sentence,omitempty"`
	PctSentencesHighBS *float64 `json:"pct_sentences_high_bs,omitempty"`
	Label              string   `json:"label"`
	NSentences         int      `json:"n_sentences"`
}

// AnalysisResult pairs the verdict with every sentence record.
type AnalysisResult struct {
	Overall   Overall            `json:"overall"`
	Sentences []SentenceAnalysis `json:"sentences"`
}

// highBS is the score at which a sentence counts toward the high-BS share.
const highBS = 51

func aggregate(analyses []SentenceAnalysis) AnalysisResult {
	if len(analyses) == 0 {
		return AnalysisResult{
			Overall:   Overall{ScoreMean: 0, Label: "Empty", NSentences: 0},
			Sentences: []SentenceAnalysis{},
		}
	}

	sum := 0
	worst := 0
	high := 0
	for _, a := range analyses {
		sum += a.TotalScore
		if a.TotalScore > worst {
			worst = a.TotalScore
		}
		if a.TotalScore >= highBS {
			high++
		}
	}
	mean := float64(sum) / float64(len(analyses))
	pct := round1(100 * float64(high) / float64(len(analyses)))

	return AnalysisResult{
		Overall: Overall{
			ScoreMean:          round1(mean),
			ScoreWorstSentence: &worst,
			PctSentencesHighBS: &pct,
			Label:              scoreLabel(mean),
			NSentences:         len(analyses),
		},
		Sentences: analyses,
	}
}

// scoreLabel buckets a mean score into the document verdict. The unrounded
// mean decides the bucket.
func scoreLabel(mean float64) string {
	switch {
	case mean <= 25:
		return "Solid / operational"
	case mean <= 50:
		return "Soft marketing"
	case mean <= 75:
		return "High BS risk"
	default:
		return "Persuasion fog"
	}
}

// round1 rounds to one decimal with ties going to the even digit, so a
// mean of exactly 0.25 reports as 0.2.
func round1(x float64) float64 {
	return math.RoundToEven(x*10) / 10
}

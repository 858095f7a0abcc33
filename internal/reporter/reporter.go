package reporter

import (
	"github.com/J2PIn/claimbs/internal/analyzer"
)

// FileResult pairs an input path with its analysis.
type FileResult struct {
	Path   string
	Result analyzer.AnalysisResult
}

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs the results for every analyzed input
	Report(results []FileResult) error
}

// Summary holds aggregate statistics for a run across files
type Summary struct {
	Files            int
	Sentences        int
	FlaggedSentences int
	WorstScore       int
}

// ComputeSummary computes run statistics from per-file results
func ComputeSummary(results []FileResult) Summary {
	s := Summary{Files: len(results)}

	for _, fr := range results {
		s.Sentences += fr.Result.Overall.NSentences
		for _, sentence := range fr.Result.Sentences {
			if len(sentence.Flags) > 0 {
				s.FlaggedSentences++
			}
			if sentence.TotalScore > s.WorstScore {
				s.WorstScore = sentence.TotalScore
			}
		}
	}

	return s
}

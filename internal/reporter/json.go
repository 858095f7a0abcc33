package reporter

import (
	"encoding/json"
	"io"

	"github.com/J2PIn/claimbs/internal/analyzer"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// fileJSON wraps one file's analysis with its path for multi-file output.
type fileJSON struct {
	Path string `json:"path"`
	analyzer.AnalysisResult
}

// Report outputs results as indented JSON. A single input emits the bare
// analysis document; multiple inputs emit an array with paths.
func (r *JSONReporter) Report(results []FileResult) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")

	if len(results) == 1 {
		return encoder.Encode(results[0].Result)
	}

	out := make([]fileJSON, 0, len(results))
	for _, fr := range results {
		out = append(out, fileJSON{Path: fr.Path, AnalysisResult: fr.Result})
	}
	return encoder.Encode(out)
}

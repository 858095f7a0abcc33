package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/J2PIn/claimbs/internal/analyzer"
	"github.com/J2PIn/claimbs/internal/ui"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func flaggedSentence() analyzer.SentenceAnalysis {
	return analyzer.SentenceAnalysis{
		Sentence:      "We boost revenue.",
		SemanticClass: "operational_or_mixed",
		Features:      analyzer.FeatureMap{analyzer.FeatureOutcome: true},
		Flags: []analyzer.Flag{{
			Type:  "outcome_without_metric",
			Label: "Outcome claim without metric",
			Spans: []analyzer.Span{{Start: 3, End: 8, Text: "boost"}},
		}},
		ScoreBreakdown: analyzer.ScoreBreakdown{Penalties: 47, Bonus: 0},
		TotalScore:     47,
	}
}

func cleanSentence() analyzer.SentenceAnalysis {
	return analyzer.SentenceAnalysis{
		Sentence:      "Plain words here.",
		SemanticClass: "operational_or_mixed",
		Features:      analyzer.FeatureMap{},
		Flags:         []analyzer.Flag{},
		TotalScore:    0,
	}
}

func sampleResult() analyzer.AnalysisResult {
	return analyzer.AnalysisResult{
		Overall: analyzer.Overall{
			ScoreMean:          23.5,
			ScoreWorstSentence: intp(47),
			PctSentencesHighBS: floatp(0),
			Label:              "Solid / operational",
			NSentences:         2,
		},
		Sentences: []analyzer.SentenceAnalysis{flaggedSentence(), cleanSentence()},
	}
}

func emptyResult() analyzer.AnalysisResult {
	return analyzer.AnalysisResult{
		Overall:   analyzer.Overall{ScoreMean: 0, Label: "Empty", NSentences: 0},
		Sentences: []analyzer.SentenceAnalysis{},
	}
}

func TestJSONReporterSingleFile(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)
	if err := r.Report([]FileResult{{Path: "copy.txt", Result: sampleResult()}}); err != nil {
		t.Fatalf("Report error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["overall"]; !ok {
		t.Error("single-file output missing overall key")
	}
	if _, ok := decoded["path"]; ok {
		t.Error("single-file output should not carry a path key")
	}
}

func TestJSONReporterMultiFile(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)
	results := []FileResult{
		{Path: "a.txt", Result: sampleResult()},
		{Path: "b.txt", Result: emptyResult()},
	}
	if err := r.Report(results); err != nil {
		t.Fatalf("Report error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d entries, want 2", len(decoded))
	}
	if decoded[0]["path"] != "a.txt" || decoded[1]["path"] != "b.txt" {
		t.Errorf("paths = %v, %v", decoded[0]["path"], decoded[1]["path"])
	}
	if _, ok := decoded[0]["overall"]; !ok {
		t.Error("entry missing overall key")
	}
}

func TestJSONReporterIndented(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)
	if err := r.Report([]FileResult{{Path: "copy.txt", Result: emptyResult()}}); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"overall\"") {
		t.Errorf("output not indented:\n%s", buf.String())
	}
}

func TestTerminalReporterDefaultShowsOnlyFlagged(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf, ui.NewStyles(false), false)
	if err := r.Report([]FileResult{{Path: "dir/copy.txt", Result: sampleResult()}}); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "We boost revenue.") {
		t.Errorf("flagged sentence missing:\n%s", out)
	}
	if strings.Contains(out, "Plain words here.") {
		t.Errorf("clean sentence should be hidden by default:\n%s", out)
	}
	for _, want := range []string{
		"copy.txt",
		"[outcome_without_metric]",
		"Outcome claim without metric",
		`"boost"`,
		"[ 47]",
		"mean 23.5",
		"worst 47",
		"Solid / operational",
		"2 sentences",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporterVerboseShowsEverything(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf, ui.NewStyles(false), true)
	if err := r.Report([]FileResult{{Path: "copy.txt", Result: sampleResult()}}); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Plain words here.") {
		t.Errorf("verbose output should list clean sentences:\n%s", out)
	}
	if !strings.Contains(out, "penalties 47, bonus 0") {
		t.Errorf("verbose output missing score breakdown:\n%s", out)
	}
}

func TestTerminalReporterEmptyFile(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf, ui.NewStyles(false), false)
	if err := r.Report([]FileResult{{Path: "empty.txt", Result: emptyResult()}}); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	if !strings.Contains(buf.String(), "no sentences found") {
		t.Errorf("output missing empty note:\n%s", buf.String())
	}
}

func TestTerminalReporterCleanFile(t *testing.T) {
	clean := analyzer.AnalysisResult{
		Overall: analyzer.Overall{
			ScoreMean:          0,
			ScoreWorstSentence: intp(0),
			PctSentencesHighBS: floatp(0),
			Label:              "Solid / operational",
			NSentences:         1,
		},
		Sentences: []analyzer.SentenceAnalysis{cleanSentence()},
	}
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf, ui.NewStyles(false), false)
	if err := r.Report([]FileResult{{Path: "clean.txt", Result: clean}}); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	if !strings.Contains(buf.String(), "No fog detected") {
		t.Errorf("output missing clean note:\n%s", buf.String())
	}
}

func TestTerminalReporterRunSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf, ui.NewStyles(false), false)
	results := []FileResult{
		{Path: "a.txt", Result: sampleResult()},
		{Path: "b.txt", Result: sampleResult()},
	}
	if err := r.Report(results); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	if !strings.Contains(buf.String(), "Scored 2 files, 4 sentences, 2 flagged (worst 47)") {
		t.Errorf("output missing run summary:\n%s", buf.String())
	}
}

func TestComputeSummary(t *testing.T) {
	results := []FileResult{
		{Path: "a.txt", Result: sampleResult()},
		{Path: "b.txt", Result: emptyResult()},
	}
	s := ComputeSummary(results)
	if s.Files != 2 {
		t.Errorf("Files = %d, want 2", s.Files)
	}
	if s.Sentences != 2 {
		t.Errorf("Sentences = %d, want 2", s.Sentences)
	}
	if s.FlaggedSentences != 1 {
		t.Errorf("FlaggedSentences = %d, want 1", s.FlaggedSentences)
	}
	if s.WorstScore != 47 {
		t.Errorf("WorstScore = %d, want 47", s.WorstScore)
	}
}

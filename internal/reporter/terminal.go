package reporter

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/J2PIn/claimbs/internal/analyzer"
	"github.com/J2PIn/claimbs/internal/ui"
)

// TerminalReporter renders results for humans. By default it lists only
// flagged sentences; verbose mode lists every sentence with its features
// and evidence spans.
type TerminalReporter struct {
	w       io.Writer
	styles  *ui.Styles
	verbose bool
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, styles *ui.Styles, verbose bool) *TerminalReporter {
	return &TerminalReporter{w: w, styles: styles, verbose: verbose}
}

// Report outputs results to the terminal
func (r *TerminalReporter) Report(results []FileResult) error {
	for _, fr := range results {
		r.printFile(fr)
	}

	if len(results) > 1 {
		r.printRunSummary(results)
	}

	return nil
}

func (r *TerminalReporter) printFile(fr FileResult) {
	overall := fr.Result.Overall

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s\n", r.styles.Header.Render(filepath.Base(fr.Path)))
	fmt.Fprintf(r.w, "  %s\n", r.styles.Path.Render(fr.Path))

	if overall.NSentences == 0 {
		fmt.Fprintf(r.w, "  %s\n", r.styles.Subheader.Render("(empty) no sentences found"))
		return
	}

	shown := 0
	for i, sentence := range fr.Result.Sentences {
		if !r.verbose && len(sentence.Flags) == 0 {
			continue
		}
		r.printSentence(i+1, sentence)
		shown++
	}
	if shown == 0 {
		fmt.Fprintf(r.w, "  %s %s\n",
			r.styles.Success.Render(r.styles.IconClean),
			"No fog detected")
	}

	r.printOverall(overall)
}

func (r *TerminalReporter) printSentence(n int, s analyzer.SentenceAnalysis) {
	score := float64(s.TotalScore)

	fmt.Fprintf(r.w, "  %s %s %s\n",
		r.styles.ScoreStyle(score).Render(r.styles.ScoreIcon(score)),
		r.styles.ScoreStyle(score).Render(fmt.Sprintf("[%3d]", s.TotalScore)),
		s.Sentence)

	if r.verbose && s.SemanticClass != analyzer.DefaultClass {
		fmt.Fprintf(r.w, "        %s\n", r.styles.Subheader.Render("class: "+s.SemanticClass))
	}

	for _, flag := range s.Flags {
		line := flag.Label
		if evidence := flagEvidence(flag, s.Sentence); evidence != "" {
			line += " " + r.styles.Evidence.Render("("+evidence+")")
		}
		fmt.Fprintf(r.w, "        %s %s\n", r.styles.FlagType.Render("["+flag.Type+"]"), line)
	}

	if r.verbose {
		fmt.Fprintf(r.w, "        %s\n", r.styles.Subheader.Render(
			fmt.Sprintf("penalties %d, bonus %d", s.ScoreBreakdown.Penalties, s.ScoreBreakdown.Bonus)))
	}
}

// flagEvidence condenses a flag's spans into a short quote. Whole-sentence
// spans add nothing next to the sentence itself, so they are skipped.
func flagEvidence(flag analyzer.Flag, sentence string) string {
	const maxLen = 60
	out := ""
	for _, span := range flag.Spans {
		if span.Text == sentence || len(span.Text) > maxLen {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += "\"" + span.Text + "\""
		if len(out) > maxLen {
			break
		}
	}
	return out
}

func (r *TerminalReporter) printOverall(overall analyzer.Overall) {
	band := r.styles.ScoreStyle(overall.ScoreMean)

	line := fmt.Sprintf("mean %.1f", overall.ScoreMean)
	if overall.ScoreWorstSentence != nil {
		line += fmt.Sprintf(" | worst %d", *overall.ScoreWorstSentence)
	}
	if overall.PctSentencesHighBS != nil {
		line += fmt.Sprintf(" | %.1f%% high-BS", *overall.PctSentencesHighBS)
	}
	line += fmt.Sprintf(" | %d sentences", overall.NSentences)

	fmt.Fprintf(r.w, "  %s %s\n", band.Render(overall.Label), r.styles.Subheader.Render(line))
}

func (r *TerminalReporter) printRunSummary(results []FileResult) {
	summary := ComputeSummary(results)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Separator.Render("-------------------------------------"))
	fmt.Fprintf(r.w, "Scored %d files, %d sentences, %d flagged (worst %d)\n",
		summary.Files, summary.Sentences, summary.FlaggedSentences, summary.WorstScore)
}

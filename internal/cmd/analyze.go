package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/J2PIn/claimbs/internal/analyzer"
	"github.com/J2PIn/claimbs/internal/parser"
	"github.com/J2PIn/claimbs/internal/reporter"
	"github.com/J2PIn/claimbs/internal/ui"
	"github.com/J2PIn/claimbs/internal/watcher"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	threshold float64
	watchMode bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path...]",
	Short: "Score files or stdin for marketing fog",
	Long: `Analyze prose for unsubstantiated claims.

Reads one or more text or markdown files, or stdin when no path (or "-")
is given. Markdown prose is extracted first; code blocks are not scored.

Examples:
  claimbs analyze README.md
  claimbs analyze --format json landing.md > report.json
  claimbs analyze --threshold 50 docs/about.md docs/pricing.md
  claimbs analyze --watch draft.md
  cat pitch.txt | claimbs analyze`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func init() {
	analyzeCmd.Flags().Float64Var(&threshold, "threshold", -1, "Exit non-zero when any mean score exceeds this value")
	analyzeCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-analyze files when they change")
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	u := GetUI()

	useStdin := len(args) == 0 || (len(args) == 1 && args[0] == "-")
	if watchMode && useStdin {
		return fmt.Errorf("watch mode requires file paths")
	}

	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	if progress != nil {
		progress.SetStage(ui.StageLoadRules)
	}

	pack, err := loadPack(rulePack)
	if err != nil {
		return fmt.Errorf("failed to load rule pack: %w", err)
	}
	a := analyzer.New(pack)

	if verbose {
		fmt.Fprintf(u.ErrWriter, "Rule pack %s: %s\n", pack.Name, pack.Describe())
	}

	var results []reporter.FileResult
	if useStdin {
		results, err = analyzeStdin(a, progress)
	} else {
		results, err = analyzeFiles(cmd.Context(), a, args, progress)
	}
	if err != nil {
		return err
	}

	// Stop progress before reporting
	if progress != nil {
		progress.Done(nil)
		progress = nil
	}

	if err := report(u, results); err != nil {
		return err
	}

	if watchMode {
		return watchAndReport(cmd.Context(), u, a, args)
	}

	return checkThreshold(results)
}

func analyzeStdin(a *analyzer.Analyzer, progress *ui.ProgressController) ([]reporter.FileResult, error) {
	if progress != nil {
		progress.SetStage(ui.StageReadInput)
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	if progress != nil {
		progress.SetStage(ui.StageAnalyze)
	}

	doc, err := parser.ParseContent("stdin", content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stdin: %w", err)
	}

	return []reporter.FileResult{{Path: "stdin", Result: a.AnalyzeText(doc.Prose)}}, nil
}

func analyzeFiles(ctx context.Context, a *analyzer.Analyzer, paths []string, progress *ui.ProgressController) ([]reporter.FileResult, error) {
	if progress != nil {
		progress.SetStage(ui.StageReadInput)
	}

	docs := make([]*parser.Document, len(paths))
	for i, path := range paths {
		if progress != nil {
			progress.SetOperation(filepath.Base(path))
		}
		doc, err := parser.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs[i] = doc
	}

	if progress != nil {
		progress.SetStage(ui.StageAnalyze)
		progress.SetFileCount(len(paths))
	}

	// Scoring is pure CPU work over a shared read-only pack, so files fan
	// out freely. Results land at their input index to keep report order.
	results := make([]reporter.FileResult, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, doc := range docs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if progress != nil {
				progress.FileStart(filepath.Base(doc.Path))
			}
			results[i] = reporter.FileResult{Path: doc.Path, Result: a.AnalyzeText(doc.Prose)}
			if progress != nil {
				progress.FileDone()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func report(u *ui.UI, results []reporter.FileResult) error {
	var rep reporter.Reporter
	if u.IsJSON() {
		rep = reporter.NewJSONReporter(u.Writer)
	} else {
		rep = reporter.NewTerminalReporter(u.Writer, u.Styles, u.Verbose)
	}
	return rep.Report(results)
}

func checkThreshold(results []reporter.FileResult) error {
	if threshold < 0 {
		return nil
	}
	for _, fr := range results {
		if fr.Result.Overall.ScoreMean > threshold {
			return fmt.Errorf("%s: mean fog score %.1f exceeds threshold %.1f",
				fr.Path, fr.Result.Overall.ScoreMean, threshold)
		}
	}
	return nil
}

// watchAndReport blocks re-running the full analysis whenever a watched
// file settles after a change. The threshold gate does not apply here;
// watch mode keeps running until interrupted.
func watchAndReport(ctx context.Context, u *ui.UI, a *analyzer.Analyzer, paths []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	warn := func(err error) {
		fmt.Fprintln(u.ErrWriter, u.Styles.Risk.Render(
			fmt.Sprintf("%s %v", u.Styles.IconFlag, err),
		))
	}

	onChange := func(changed []string) {
		names := make([]string, len(changed))
		for i, path := range changed {
			names[i] = filepath.Base(path)
		}
		fmt.Fprintf(u.ErrWriter, "\n%s\n", u.Styles.Separator.Render("changed: "+strings.Join(names, ", ")))

		results, err := analyzeFiles(ctx, a, paths, nil)
		if err != nil {
			warn(err)
			return
		}
		if err := report(u, results); err != nil {
			warn(err)
		}
	}

	w, err := watcher.New(paths, onChange, warn)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	w.Start(ctx)
	defer w.Stop()

	if len(paths) == 1 {
		fmt.Fprintf(u.ErrWriter, "Watching %s for changes. Press Ctrl-C to stop.\n", paths[0])
	} else {
		fmt.Fprintf(u.ErrWriter, "Watching %d files for changes. Press Ctrl-C to stop.\n", len(paths))
	}

	<-ctx.Done()
	fmt.Fprintln(u.ErrWriter, "Stopped watching.")
	return nil
}

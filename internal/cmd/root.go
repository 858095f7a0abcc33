package cmd

import (
	"os"

	"github.com/J2PIn/claimbs/internal/rulepack"
	"github.com/J2PIn/claimbs/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	format   string
	rulePack string
)

// RootCmd is the base command executed by the claimbs binary.
var RootCmd = &cobra.Command{
	Use:   "claimbs",
	Short: "A marketing fog detector for prose",
	Long: `claimbs scores prose for marketing fog: outcome claims without
metrics, speed claims without timeframes, buzzwords standing in for
mechanisms, and similar unsubstantiated-claim patterns.

Each sentence gets a 0-100 fog score built from configurable lexicons,
regex patterns, and weighted penalty rules, plus a semantic class. Sentence
scores aggregate into a per-document verdict.`,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&rulePack, "rules", "r", "agency_v0", "Rule pack name or directory")
}

// GetUI builds the UI for the current flag set.
func GetUI() *ui.UI {
	return ui.New(os.Stdout, os.Stderr, format, verbose)
}

// loadPack resolves --rules as a directory path first, then as a built-in
// pack name.
func loadPack(nameOrDir string) (*rulepack.Pack, error) {
	if info, err := os.Stat(nameOrDir); err == nil && info.IsDir() {
		return rulepack.LoadDir(nameOrDir)
	}
	return rulepack.Load(nameOrDir)
}

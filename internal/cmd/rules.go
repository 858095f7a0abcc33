package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/J2PIn/claimbs/internal/rulepack"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active rule pack",
	Long: `Print the lexicons, regex patterns, weights, and semantic classes
of the active rule pack.

Examples:
  claimbs rules
  claimbs rules --rules ./custom-pack
  claimbs rules --format json`,
	RunE:         runRules,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	u := GetUI()

	pack, err := loadPack(rulePack)
	if err != nil {
		return fmt.Errorf("failed to load rule pack: %w", err)
	}

	if u.IsJSON() {
		enc := json.NewEncoder(u.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(packSummary(pack))
	}

	fmt.Fprintln(u.Writer, u.Styles.Header.Render(pack.Name))
	fmt.Fprintln(u.Writer, pack.Describe())
	fmt.Fprintf(u.Writer, "Built-in packs: %s\n\n", strings.Join(rulepack.Available(), ", "))

	tw := tabwriter.NewWriter(u.Writer, 0, 4, 2, ' ', 0)

	lexNames := make([]string, 0, len(pack.Lexicons))
	for name := range pack.Lexicons {
		lexNames = append(lexNames, name)
	}
	sort.Strings(lexNames)

	fmt.Fprintln(u.Writer, u.Styles.Subheader.Render("Lexicons"))
	for _, name := range lexNames {
		fmt.Fprintf(tw, "  %s\t%d phrases\n", name, len(pack.Lexicons[name]))
	}
	tw.Flush()

	patNames := make([]string, 0, len(pack.Patterns))
	for name := range pack.Patterns {
		patNames = append(patNames, name)
	}
	sort.Strings(patNames)

	fmt.Fprintln(u.Writer, u.Styles.Subheader.Render("\nPatterns"))
	for _, name := range patNames {
		expr := pack.Patterns[name].String()
		if !verbose {
			expr = truncate(expr, 60)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", name, expr)
	}
	tw.Flush()

	fmt.Fprintln(u.Writer, u.Styles.Subheader.Render("\nPenalties"))
	for _, name := range rulepack.PenaltyNames() {
		fmt.Fprintf(tw, "  %s\t%d\n", name, pack.Penalties[name])
	}
	tw.Flush()

	fmt.Fprintln(u.Writer, u.Styles.Subheader.Render("\nBonuses"))
	for _, name := range rulepack.BonusNames() {
		fmt.Fprintf(tw, "  %s\t%d\n", name, pack.Bonuses[name])
	}
	tw.Flush()

	fmt.Fprintln(u.Writer, u.Styles.Subheader.Render("\nSemantic classes"))
	for _, class := range pack.Classes {
		fmt.Fprintf(tw, "  %s\trequires %s\tforbids %s\n",
			class.Name, orDash(class.Requires), orDash(class.Forbids))
	}
	tw.Flush()

	return nil
}

type packJSON struct {
	Name      string            `json:"name"`
	Lexicons  map[string]int    `json:"lexicons"`
	Patterns  map[string]string `json:"patterns"`
	Penalties map[string]int    `json:"penalties"`
	Bonuses   map[string]int    `json:"bonuses"`
	Classes   []classJSON       `json:"semantic_classes"`
}

type classJSON struct {
	Name     string   `json:"name"`
	Requires []string `json:"requires"`
	Forbids  []string `json:"forbids"`
}

func packSummary(pack *rulepack.Pack) packJSON {
	out := packJSON{
		Name:      pack.Name,
		Lexicons:  make(map[string]int, len(pack.Lexicons)),
		Patterns:  make(map[string]string, len(pack.Patterns)),
		Penalties: pack.Penalties,
		Bonuses:   pack.Bonuses,
		Classes:   make([]classJSON, 0, len(pack.Classes)),
	}
	for name, phrases := range pack.Lexicons {
		out.Lexicons[name] = len(phrases)
	}
	for name, re := range pack.Patterns {
		out.Patterns[name] = re.String()
	}
	for _, class := range pack.Classes {
		out.Classes = append(out.Classes, classJSON{
			Name:     class.Name,
			Requires: class.Requires,
			Forbids:  class.Forbids,
		})
	}
	return out
}

func orDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// truncate shortens s to at most n runes. Counting runes keeps a cut from
// landing inside a multibyte character in a user-supplied pattern.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

package rulepack

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Pack is a compiled, validated rule pack. It is read-only after Load and
// safe to share across concurrent analyses.
type Pack struct {
	// Name identifies the pack (directory or embedded pack name).
	Name string

	// Lexicons maps lexicon names to ordered phrase lists.
	Lexicons map[string][]string

	// Patterns maps pattern names to case-insensitively compiled regexps.
	Patterns map[string]*regexp.Regexp

	// Penalties maps penalty rule names to integer weights.
	Penalties map[string]int

	// Bonuses maps bonus feature names to integer weights.
	Bonuses map[string]int

	// Classes holds semantic class predicates in declaration order.
	Classes []SemanticClass
}

// SemanticClass is a feature predicate that assigns a class label when every
// required feature is present and no forbidden feature is.
type SemanticClass struct {
	Name     string
	Requires []string
	Forbids  []string
}

// Schema: the names a pack must define. Lexicons and patterns feed feature
// extraction; penalty and bonus names must cover the scoring tables exactly.
var (
	requiredLexicons = []string{
		"outcome_verbs",
		"speed_words",
		"hedges",
		"superlatives",
		"proof_theater",
		"buzzwords",
		"mechanism_tokens",
		"values_language",
	}

	requiredPatterns = []string{
		"number_unit",
		"timeframe",
		"baseline",
		"scope",
		"passive",
	}

	penaltyNames = []string{
		"outcome_without_metric",
		"speed_without_timeframe",
		"outcome_without_baseline",
		"outcome_without_scope",
		"proof_implied_no_evidence",
		"buzzword_no_mechanism",
		"outcome_without_mechanism",
		"process_no_levers",
		"passive_voice",
		"superlative_unbounded",
	}

	bonusNames = []string{
		"metric_present",
		"timeframe_present",
		"baseline_present",
		"mechanism_present",
		"scope_present",
	}
)

// PenaltyNames returns the penalty rule names a pack must weight, in rule
// application order.
func PenaltyNames() []string {
	out := make([]string, len(penaltyNames))
	copy(out, penaltyNames)
	return out
}

// BonusNames returns the bonus feature names a pack must weight.
func BonusNames() []string {
	out := make([]string, len(bonusNames))
	copy(out, bonusNames)
	return out
}

// validate checks the schema requirements and returns the first problem
// found. All missing names for a document are reported together so a pack
// author fixes them in one pass.
func (p *Pack) validate() error {
	var missing []string
	for _, name := range requiredLexicons {
		if _, ok := p.Lexicons[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("lexicons: missing required lists: %s", strings.Join(missing, ", "))
	}

	for _, name := range requiredLexicons {
		for i, phrase := range p.Lexicons[name] {
			if phrase == "" {
				return fmt.Errorf("lexicons: %s[%d] is empty", name, i)
			}
		}
	}

	missing = missing[:0]
	for _, name := range requiredPatterns {
		if _, ok := p.Patterns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("regex: missing required patterns: %s", strings.Join(missing, ", "))
	}

	if err := coverExactly("weights: penalties", p.Penalties, penaltyNames); err != nil {
		return err
	}
	if err := coverExactly("weights: bonuses", p.Bonuses, bonusNames); err != nil {
		return err
	}
	return nil
}

// coverExactly requires the weight table to name exactly the given set.
// Unknown names are rejected so a typo cannot silently zero a rule.
func coverExactly(doc string, table map[string]int, names []string) error {
	want := make(map[string]bool, len(names))
	var missing []string
	for _, name := range names {
		want[name] = true
		if _, ok := table[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing weights: %s", doc, strings.Join(missing, ", "))
	}
	var unknown []string
	for name := range table {
		if !want[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%s: unknown names: %s", doc, strings.Join(unknown, ", "))
	}
	return nil
}

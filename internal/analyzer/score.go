package analyzer

import "regexp"

// Flag is one triggered penalty rule with the spans that justify it.
type Flag struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Spans []Span `json:"spans"`
}

// processRe marks process-stage vocabulary that names activity without
// naming a lever. It runs against the lowercased sentence.
var processRe = regexp.MustCompile(`\b(discovery|strategy|execution|optimization|planning process|customer journey)\b`)

// penaltyRule ties a trigger predicate to its weight name, display label,
// and the spans reported when it fires.
type penaltyRule struct {
	name    string
	label   string
	trigger func(extraction) bool
	spans   func(extraction) []Span
}

// penaltyRules run in this order and flags keep it. Weights come from the
// pack by rule name.
var penaltyRules = []penaltyRule{
	{
		name:    "outcome_without_metric",
		label:   "Outcome claim without metric",
		trigger: without(FeatureOutcome, FeatureMetric),
		spans:   spansOf(FeatureOutcome),
	},
	{
		name:    "speed_without_timeframe",
		label:   "Speed claim without timeframe",
		trigger: without(FeatureSpeed, FeatureTimeframe),
		spans:   spansOf(FeatureSpeed),
	},
	{
		name:    "outcome_without_baseline",
		label:   "Outcome claim without baseline",
		trigger: without(FeatureOutcome, FeatureBaseline),
		spans:   spansOf(FeatureOutcome),
	},
	{
		name:    "outcome_without_scope",
		label:   "Outcome claim without scope",
		trigger: without(FeatureOutcome, FeatureScope),
		spans:   spansOf(FeatureOutcome),
	},
	{
		name:    "proof_implied_no_evidence",
		label:   "Proof implied without evidence structure",
		trigger: present(FeatureProof),
		spans:   spansOf(FeatureProof),
	},
	{
		name:    "buzzword_no_mechanism",
		label:   "Buzzword used as mechanism substitute",
		trigger: without(FeatureBuzzword, FeatureMechanism),
		spans:   spansOf(FeatureBuzzword),
	},
	{
		name:    "outcome_without_mechanism",
		label:   "Outcome claim without concrete mechanism",
		trigger: without(FeatureOutcome, FeatureMechanism),
		spans:   spansOf(FeatureOutcome),
	},
	{
		name:  "process_no_levers",
		label: "Process language without levers",
		trigger: func(ex extraction) bool {
			return processRe.MatchString(ex.lower) && !ex.features[FeatureMechanism]
		},
		// The whole sentence is the evidence for this one.
		spans: func(ex extraction) []Span {
			return []Span{{Start: 0, End: len(ex.sentence), Text: ex.sentence}}
		},
	},
	{
		name:    "passive_voice",
		label:   "Passive voice / agency evasion",
		trigger: present(FeaturePassive),
		spans:   spansOf(FeaturePassive),
	},
	{
		name:    "superlative_unbounded",
		label:   "Superlative without constraint",
		trigger: without(FeatureSuperlative, FeatureMetric),
		spans:   spansOf(FeatureSuperlative),
	},
}

// bonusFeatures earn their pack weight when present, applied in this order.
var bonusFeatures = []string{
	FeatureMetric,
	FeatureTimeframe,
	FeatureBaseline,
	FeatureMechanism,
	FeatureScope,
}

func present(feature string) func(extraction) bool {
	return func(ex extraction) bool { return ex.features[feature] }
}

// without triggers when the claim feature fires and the grounding feature
// does not.
func without(claim, grounding string) func(extraction) bool {
	return func(ex extraction) bool { return ex.features[claim] && !ex.features[grounding] }
}

func spansOf(feature string) func(extraction) []Span {
	return func(ex extraction) []Span { return ex.spans[feature] }
}

func (a *Analyzer) applyPenalties(ex extraction) ([]Flag, int) {
	flags := make([]Flag, 0, len(penaltyRules))
	penalties := 0
	for _, rule := range penaltyRules {
		if !rule.trigger(ex) {
			continue
		}
		penalties += a.pack.Penalties[rule.name]
		flags = append(flags, Flag{Type: rule.name, Label: rule.label, Spans: rule.spans(ex)})
	}
	return flags, penalties
}

func (a *Analyzer) applyBonuses(ex extraction) int {
	bonus := 0
	for _, feature := range bonusFeatures {
		if ex.features[feature] {
			bonus += a.pack.Bonuses[feature]
		}
	}
	return bonus
}

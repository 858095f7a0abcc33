package analyzer

import "strings"

// Feature names shared by lexicons, patterns, weights, and semantic
// classes. Eight come from phrase lexicons, five from regex patterns.
const (
	FeatureOutcome     = "outcome_present"
	FeatureSpeed       = "speed_present"
	FeatureHedge       = "hedge_present"
	FeatureSuperlative = "superlative_present"
	FeatureProof       = "proof_implied"
	FeatureBuzzword    = "buzzword_present"
	FeatureMechanism   = "mechanism_present"
	FeatureValues      = "values_present"
	FeatureMetric      = "metric_present"
	FeatureTimeframe   = "timeframe_present"
	FeatureBaseline    = "baseline_present"
	FeatureScope       = "scope_present"
	FeaturePassive     = "passive_present"
)

// FeatureMap records which features fired for a sentence. Every analysis
// carries all thirteen keys, true or false.
type FeatureMap map[string]bool

// lexiconFeatures maps each required lexicon to the feature it sets.
var lexiconFeatures = []struct {
	lexicon string
	feature string
}{
	{"outcome_verbs", FeatureOutcome},
	{"speed_words", FeatureSpeed},
	{"hedges", FeatureHedge},
	{"superlatives", FeatureSuperlative},
	{"proof_theater", FeatureProof},
	{"buzzwords", FeatureBuzzword},
	{"mechanism_tokens", FeatureMechanism},
	{"values_language", FeatureValues},
}

// patternFeatures maps each required pattern to the feature it sets.
var patternFeatures = []struct {
	pattern string
	feature string
}{
	{"number_unit", FeatureMetric},
	{"timeframe", FeatureTimeframe},
	{"baseline", FeatureBaseline},
	{"scope", FeatureScope},
	{"passive", FeaturePassive},
}

// extraction carries everything the scoring rules need about one sentence.
type extraction struct {
	sentence string
	lower    string
	features FeatureMap
	spans    map[string][]Span
}

func (a *Analyzer) extract(sentence string) extraction {
	n := len(lexiconFeatures) + len(patternFeatures)
	ex := extraction{
		sentence: sentence,
		lower:    strings.ToLower(sentence),
		features: make(FeatureMap, n),
		spans:    make(map[string][]Span, n),
	}
	for _, lf := range lexiconFeatures {
		spans := phraseSpans(sentence, ex.lower, a.pack.Lexicons[lf.lexicon])
		ex.features[lf.feature] = len(spans) > 0
		ex.spans[lf.feature] = spans
	}
	for _, pf := range patternFeatures {
		spans := patternSpans(a.pack.Patterns[pf.pattern], sentence)
		ex.features[pf.feature] = len(spans) > 0
		ex.spans[pf.feature] = spans
	}
	return ex
}

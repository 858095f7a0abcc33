package analyzer

import "github.com/J2PIn/claimbs/internal/rulepack"

// DefaultClass is assigned when no semantic class predicate matches.
const DefaultClass = "operational_or_mixed"

// classify evaluates class predicates in pack declaration order and returns
// the first match. Feature names a pack references but the extractor never
// sets read as false.
func classify(features FeatureMap, classes []rulepack.SemanticClass) string {
	for _, class := range classes {
		if classMatches(features, class) {
			return class.Name
		}
	}
	return DefaultClass
}

func classMatches(features FeatureMap, class rulepack.SemanticClass) bool {
	for _, name := range class.Requires {
		if !features[name] {
			return false
		}
	}
	for _, name := range class.Forbids {
		if features[name] {
			return false
		}
	}
	return true
}

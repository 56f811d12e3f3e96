package agents

import "strings"

// Intent is the classified category of a user question. It selects which
// agent handles the request and lives only for the single dispatch.
type Intent string

const (
	IntentAnalyst   Intent = "analyst"
	IntentHistogram Intent = "histogram"
	IntentBoxplot   Intent = "boxplot"
	IntentBarplot   Intent = "barplot"
	IntentPie       Intent = "pie"
	IntentPattern   Intent = "pattern"
	IntentAnomaly   Intent = "anomaly"
	IntentAdvisor   Intent = "advisor"
	IntentUnknown   Intent = "unknown"
)

// intentOrder is the canonical check order. Matching is substring-based, so
// a multi-label response ("boxplot or histogram") is resolved by the first
// label in this order, never by response position.
var intentOrder = []Intent{
	IntentAnalyst,
	IntentHistogram,
	IntentBoxplot,
	IntentBarplot,
	IntentPie,
	IntentPattern,
	IntentAnomaly,
	IntentAdvisor,
}

// matchIntent tests a normalized (lower-cased, trimmed) classifier response
// against the known labels in canonical order, first match wins.
func matchIntent(normalized string) (Intent, bool) {
	for _, intent := range intentOrder {
		if strings.Contains(normalized, string(intent)) {
			return intent, true
		}
	}
	return IntentUnknown, false
}

// wantsFrequencies reports whether a pattern question asks about value
// frequencies, which adds the categorical frequency view to the
// correlation analysis. Keys on the stem so "frequência", "frequentes"
// and "frequencias" all hit.
func wantsFrequencies(question string) bool {
	return strings.Contains(strings.ToLower(question), "frequ")
}

// wantsConclusions reports whether the raw question asks for conclusions or
// a summary. The check keys on the Portuguese stems so that "conclusão",
// "conclusões", "resumo", "resuma" etc. all hit.
func wantsConclusions(question string) bool {
	q := strings.ToLower(question)
	return strings.Contains(q, "conclus") || strings.Contains(q, "resum")
}

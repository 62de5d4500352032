package llm

import (
	"strings"

	"github.com/agentkeeper-ai/sdk/memory"
)

// ExtractFacts checks which fact contents a model response reflects and
// returns the matching fact identifiers in stored order.
//
// Facts following the "key: value" convention match when any value word
// longer than three characters appears in the response; other facts match
// when their whole content appears as a substring. Matching is case
// insensitive. This is a recall heuristic for continuity verification, not
// an exact-answer check.
func ExtractFacts(response string, facts []*memory.Fact) []string {
	var found []string
	lower := strings.ToLower(response)

	for _, fact := range facts {
		if _, value, ok := strings.Cut(fact.Content, ":"); ok {
			if matchesKeyword(lower, value) {
				found = append(found, fact.ID)
			}
			continue
		}
		if fact.Content != "" && strings.Contains(lower, strings.ToLower(fact.Content)) {
			found = append(found, fact.ID)
		}
	}
	return found
}

// matchesKeyword reports whether any word of value longer than three
// characters appears in the lowercased response.
func matchesKeyword(lowerResponse, value string) bool {
	for _, word := range strings.Fields(strings.ToLower(strings.TrimSpace(value))) {
		if len(word) > 3 && strings.Contains(lowerResponse, word) {
			return true
		}
	}
	return false
}

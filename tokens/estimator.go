// Package tokens provides the approximate token cost model used for memory
// reconstruction budgets.
//
// Estimate is a coarse stand-in for a real tokenizer: it is adequate for
// relative budget comparisons between facts, not for matching any provider's
// exact token accounting. BudgetFor maps a target model name to a
// conservative injection budget, falling back to DefaultBudget for unknown
// models.
package tokens

// Estimate returns the approximate token cost of text.
//
// The estimate is ceil(len(text)/4) with a floor of 1, roughly one token
// per four characters, the OpenAI/Anthropic average. It is deterministic,
// pure, and non-decreasing in text length.
func Estimate(text string) int {
	n := (len(text) + 3) / 4
	if n < 1 {
		return 1
	}
	return n
}

package tokens

// DefaultBudget is the injection budget used when the target model is not
// in the budget table. An unknown model name is not an error; the fallback
// keeps reconstruction working against models released after this table
// was written.
const DefaultBudget = 4000

// modelBudgets maps model names to conservative token budgets for memory
// injection. The values deliberately undershoot the models' context windows
// to leave room for the task prompt and the response.
var modelBudgets = map[string]int{
	"gpt-4":                      6000,
	"gpt-4-turbo":                8000,
	"claude-3-5-sonnet-20241022": 8000,
	"claude-3-haiku":             4000,
}

// BudgetFor returns the injection budget for the given model name, or
// DefaultBudget if the model is unknown.
func BudgetFor(model string) int {
	if budget, ok := modelBudgets[model]; ok {
		return budget
	}
	return DefaultBudget
}

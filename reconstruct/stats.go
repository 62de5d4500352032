package reconstruct

import "math"

// Stats summarizes a selection outcome for observability and testing.
type Stats struct {
	// TotalFacts is the number of facts in the agent's memory.
	TotalFacts int `json:"total_facts"`

	// SelectedFacts is the number of facts the selection would inject.
	SelectedFacts int `json:"selected_facts"`

	// CriticalTotal is the number of critical facts in memory.
	CriticalTotal int `json:"critical_total"`

	// CriticalSelected is the number of critical facts in the selection.
	CriticalSelected int `json:"critical_selected"`

	// CriticalRecoveryRate is CriticalSelected/CriticalTotal rounded to
	// three decimals, or 0 when there are no critical facts.
	CriticalRecoveryRate float64 `json:"critical_recovery_rate"`

	// TokensUsed is the total estimated cost of the selection.
	TokensUsed int `json:"tokens_used"`

	// TokenBudget is the budget the selection ran under.
	TokenBudget int `json:"token_budget"`
}

// Stats runs a selection under the given budget and reports its outcome.
// It is a read-only operation: the selection it performs is the same one
// Prioritize would produce, and the state's timestamps are untouched.
func (e *Engine) Stats(budget int) Stats {
	selected := e.Prioritize(budget)

	s := Stats{
		TotalFacts:    e.state.Len(),
		SelectedFacts: len(selected),
		CriticalTotal: len(e.state.CriticalFacts()),
		TokenBudget:   budget,
	}
	for _, f := range selected {
		s.TokensUsed += f.TokenCount
		if f.Critical {
			s.CriticalSelected++
		}
	}
	if s.CriticalTotal > 0 {
		rate := float64(s.CriticalSelected) / float64(s.CriticalTotal)
		s.CriticalRecoveryRate = math.Round(rate*1000) / 1000
	}
	return s
}

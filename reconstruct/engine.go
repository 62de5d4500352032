package reconstruct

import (
	"sort"

	"github.com/agentkeeper-ai/sdk/memory"
	"github.com/agentkeeper-ai/sdk/tokens"
)

// Engine selects the subset of an agent's facts to inject for a given token
// budget. It operates over a single CognitiveState and is not safe for
// concurrent use; callers serialize access per agent.
type Engine struct {
	state *memory.CognitiveState
}

// New creates an Engine over the given cognitive state.
func New(state *memory.CognitiveState) *Engine {
	return &Engine{state: state}
}

// Prioritize returns the facts to inject under the given budget, in
// insertion order.
//
// Every fact's token cost is recomputed from its content first; stale
// counts are never trusted. Candidates are then considered in working
// order (critical facts before non-critical, ascending cost within each
// tier, insertion order breaking ties) and greedily accepted while they
// fit the remaining budget.
//
// When a critical fact does not fit, exactly one eviction is attempted: the
// most recently accepted non-critical fact is dropped and the fit is tested
// once more. If the critical fact still does not fit it is excluded; there
// is no second eviction and no retry later in the pass. Because the working
// order places all critical facts first, no non-critical fact can have been
// accepted yet when a critical fact is considered, so the eviction can never
// free room for one; critical facts are best-effort, not force-included.
//
// A budget of zero or less selects nothing, and a single fact costing more
// than the whole budget is never selected. The source sequence is never
// reordered.
func (e *Engine) Prioritize(budget int) []*memory.Fact {
	facts := e.state.Facts()
	for _, f := range facts {
		f.TokenCount = tokens.Estimate(f.Content)
	}

	if budget <= 0 || len(facts) == 0 {
		return nil
	}

	working := make([]*memory.Fact, len(facts))
	copy(working, facts)
	sort.SliceStable(working, func(i, j int) bool {
		if working[i].Critical != working[j].Critical {
			return working[i].Critical
		}
		return working[i].TokenCount < working[j].TokenCount
	})

	// accepted is kept in acceptance order so the eviction scan can walk
	// back from the most recently added entry.
	accepted := make([]*memory.Fact, 0, len(working))
	used := 0

	for _, f := range working {
		switch {
		case used+f.TokenCount <= budget:
			accepted = append(accepted, f)
			used += f.TokenCount

		case f.Critical:
			for i := len(accepted) - 1; i >= 0; i-- {
				if !accepted[i].Critical {
					used -= accepted[i].TokenCount
					accepted = append(accepted[:i], accepted[i+1:]...)
					break
				}
			}
			if used+f.TokenCount <= budget {
				accepted = append(accepted, f)
				used += f.TokenCount
			}

		default:
			// Non-critical and over budget: skip.
		}
	}

	if len(accepted) == 0 {
		return nil
	}

	// Present the selection in source order, not working order.
	in := make(map[string]struct{}, len(accepted))
	for _, f := range accepted {
		in[f.ID] = struct{}{}
	}
	selected := make([]*memory.Fact, 0, len(accepted))
	for _, f := range facts {
		if _, ok := in[f.ID]; ok {
			selected = append(selected, f)
		}
	}
	return selected
}

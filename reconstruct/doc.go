// Package reconstruct implements the cognitive reconstruction engine: the
// budget-constrained selection of memory facts to inject when an agent is
// queried, plus the prompt assembly and selection statistics around it.
//
// The engine does not simply inject every fact. Given a token budget it
// selects a subset with a two-key policy: critical facts before non-critical
// facts, and within each tier cheaper facts first so more facts fit per
// token. Ties preserve insertion order, which makes selection deterministic
// and reproducible across calls and across persistence round-trips.
//
//	engine := reconstruct.New(state)
//	selected := engine.Prioritize(4000)
//	prompt := engine.BuildContextPrompt("summarize the project status", 4000)
//	stats := engine.Stats(4000)
//
// Selection is a pure computation over the in-memory state: it recomputes
// every fact's token cost, never reorders the source sequence, and never
// blocks. The only state it touches is each fact's derived TokenCount.
//
// Critical facts are best-effort within a single linear pass, not force
// included: a critical fact that does not fit the remaining budget when its
// turn comes is excluded. See Engine.Prioritize for the exact policy.
package reconstruct

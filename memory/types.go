package memory

// Fact is a single unit of agent memory: text content plus a criticality
// flag and a derived token cost.
//
// The Critical flag is set when the fact is created and never changes.
// Critical facts are prioritized over non-critical facts when memory is
// reconstructed under a token budget, though inclusion is not absolutely
// guaranteed if the budget cannot hold them.
//
// TokenCount is derived state: the reconstruction engine recomputes it from
// Content before every selection, so it must never be trusted across calls.
// All other fields are immutable after creation.
type Fact struct {
	// ID uniquely identifies the fact within its CognitiveState.
	ID string `json:"id"`

	// Content is the fact text. A "key: value" convention in the content
	// enables downstream keyword verification of model responses, but any
	// text is accepted.
	Content string `json:"content"`

	// Critical marks the fact as mandatory under budget pressure.
	Critical bool `json:"critical"`

	// TokenCount is the approximate token cost of Content, recomputed
	// from content on every selection run.
	TokenCount int `json:"token_count"`
}

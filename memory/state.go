package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors returned by document decoding.
var (
	// ErrInvalidDocument is returned when a persisted document is missing
	// required fields or violates the fact identifier uniqueness invariant.
	ErrInvalidDocument = errors.New("memory: invalid state document")
)

// CognitiveState is the full durable memory for one agent identity: an
// agent identifier, an insertion-ordered sequence of Facts, and creation and
// last-updated timestamps.
//
// UpdatedAt is refreshed on every mutation (fact added or removed) but not
// on read-only operations such as selection or querying.
type CognitiveState struct {
	agentID   string
	facts     []*Fact
	createdAt time.Time
	updatedAt time.Time
}

// NewState creates an empty CognitiveState for the given agent identifier.
// If agentID is empty, a fresh UUID is assigned.
func NewState(agentID string) *CognitiveState {
	if agentID == "" {
		agentID = uuid.NewString()
	}
	now := time.Now().UTC()
	return &CognitiveState{
		agentID:   agentID,
		createdAt: now,
		updatedAt: now,
	}
}

// AgentID returns the agent identifier. It is stable for the lifetime of
// the agent.
func (s *CognitiveState) AgentID() string {
	return s.agentID
}

// CreatedAt returns the creation timestamp of the state.
func (s *CognitiveState) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (s *CognitiveState) UpdatedAt() time.Time {
	return s.updatedAt
}

// AddFact creates a Fact with a fresh unique identifier, appends it to the
// end of the sequence, and refreshes UpdatedAt. The critical flag is fixed
// for the lifetime of the fact. Empty content is accepted.
//
// AddFact is the only way facts enter a state; this keeps identifiers
// unique and insertion order authoritative.
func (s *CognitiveState) AddFact(content string, critical bool) *Fact {
	fact := &Fact{
		ID:       uuid.NewString(),
		Content:  content,
		Critical: critical,
	}
	s.facts = append(s.facts, fact)
	s.updatedAt = time.Now().UTC()
	return fact
}

// RemoveFact deletes the fact with the given identifier and reports whether
// a removal occurred. Removing an absent identifier is a no-op, not an
// error, and does not touch UpdatedAt.
func (s *CognitiveState) RemoveFact(id string) bool {
	for i, f := range s.facts {
		if f.ID == id {
			s.facts = append(s.facts[:i], s.facts[i+1:]...)
			s.updatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// Fact returns the fact with the given identifier, if present.
func (s *CognitiveState) Fact(id string) (*Fact, bool) {
	for _, f := range s.facts {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

// Facts returns the facts in insertion order. The returned slice is a copy;
// mutating it does not affect the state's ordering. The facts themselves
// are shared, so the engine's token-count refresh is visible through it.
func (s *CognitiveState) Facts() []*Fact {
	out := make([]*Fact, len(s.facts))
	copy(out, s.facts)
	return out
}

// CriticalFacts returns the facts with Critical set, in insertion order.
func (s *CognitiveState) CriticalFacts() []*Fact {
	var out []*Fact
	for _, f := range s.facts {
		if f.Critical {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the number of facts in the state.
func (s *CognitiveState) Len() int {
	return len(s.facts)
}

// document is the persisted JSON shape of a CognitiveState.
type document struct {
	AgentID     string `json:"agent_id"`
	MemoryFacts []Fact `json:"memory_facts"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// MarshalDocument serializes the state into its persisted JSON document.
// Fact order in the document matches insertion order; timestamps are
// RFC 3339 with nanosecond precision.
func (s *CognitiveState) MarshalDocument() ([]byte, error) {
	doc := document{
		AgentID:     s.agentID,
		MemoryFacts: make([]Fact, len(s.facts)),
		CreatedAt:   s.createdAt.Format(time.RFC3339Nano),
		UpdatedAt:   s.updatedAt.Format(time.RFC3339Nano),
	}
	for i, f := range s.facts {
		doc.MemoryFacts[i] = *f
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("memory: marshal state document: %w", err)
	}
	return data, nil
}

// UnmarshalDocument reconstructs a CognitiveState from its persisted JSON
// document. Missing required fields (agent_id, timestamps), unparseable
// timestamps, facts without identifiers, and duplicate fact identifiers are
// hard failures wrapping ErrInvalidDocument. An absent or empty
// memory_facts array yields an empty state.
func UnmarshalDocument(data []byte) (*CognitiveState, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.AgentID == "" {
		return nil, fmt.Errorf("%w: missing agent_id", ErrInvalidDocument)
	}
	if doc.CreatedAt == "" || doc.UpdatedAt == "" {
		return nil, fmt.Errorf("%w: missing timestamps", ErrInvalidDocument)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: created_at: %v", ErrInvalidDocument, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, doc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: updated_at: %v", ErrInvalidDocument, err)
	}

	state := &CognitiveState{
		agentID:   doc.AgentID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}

	seen := make(map[string]struct{}, len(doc.MemoryFacts))
	for i := range doc.MemoryFacts {
		f := doc.MemoryFacts[i]
		if f.ID == "" {
			return nil, fmt.Errorf("%w: fact at index %d has no id", ErrInvalidDocument, i)
		}
		if _, dup := seen[f.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate fact id %q", ErrInvalidDocument, f.ID)
		}
		seen[f.ID] = struct{}{}
		state.facts = append(state.facts, &f)
	}

	return state, nil
}

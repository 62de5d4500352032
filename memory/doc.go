// Package memory defines the durable memory model for AgentKeeper agents.
//
// An agent's memory is a CognitiveState: an insertion-ordered collection of
// Facts owned by a single agent identity. Facts carry text content, a
// criticality flag fixed at creation, and a derived token cost that the
// reconstruction engine recomputes before every selection.
//
// # Facts
//
// Facts are created only through CognitiveState.AddFact, which assigns a
// fresh unique identifier and appends the fact to the end of the sequence:
//
//	state := memory.NewState("my-agent")
//	fact := state.AddFact("budget: 50k EUR", true)
//	state.AddFact("client prefers morning meetings", false)
//
// Insertion order is significant. The reconstruction engine uses it as the
// tie-break key during selection, and it must survive persistence
// round-trips, so no operation ever reorders the stored sequence.
//
// # Persistence document
//
// MarshalDocument and UnmarshalDocument convert a CognitiveState to and from
// the JSON document stored by the persistence gateway:
//
//	{
//	  "agent_id": "my-agent",
//	  "memory_facts": [
//	    {"id": "...", "content": "budget: 50k EUR", "critical": true, "token_count": 4}
//	  ],
//	  "created_at": "2026-08-25T09:00:00Z",
//	  "updated_at": "2026-08-25T09:01:30Z"
//	}
//
// A round-trip preserves fact identifiers, content, criticality flags, order,
// and both timestamps. Token counts are carried for observability but are
// recomputed from content at selection time, so a stale or zero value in the
// document is harmless.
//
// # Concurrency
//
// CognitiveState is not safe for concurrent mutation. Hosts that expose the
// same agent to concurrent callers must serialize access per agent
// identifier; the model itself provides no locking.
package memory

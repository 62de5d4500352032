// Package store provides the persistence gateway for agent cognitive
// state: a durable key-value mapping from agent identifier to the
// serialized state document, with SQLite, Redis, etcd, and in-memory
// backends.
//
// The SDK's core treats the gateway as an external collaborator: Save is an
// idempotent upsert keyed by agent identifier, Load returns ErrNotFound for
// absent agents, and Delete is a no-op for absent agents. All backends
// round-trip through the memory package's document codec, so a Save
// followed by a Load reproduces an equivalent state (same identifier,
// facts, order, and timestamps); token counts are recomputed at selection
// time and need not survive exactly.
//
//	st, err := store.NewSQLiteStore("agentkeeper.db")
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	if err := st.Save(ctx, state); err != nil {
//	    return err
//	}
//	restored, err := st.Load(ctx, state.AgentID())
//
// Structurally invalid persisted documents fail here, at the gateway
// boundary, wrapping memory.ErrInvalidDocument.
package store

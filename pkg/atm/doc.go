// Package atm implements the control logic of a simplified automated
// teller machine as a pure, deterministic finite-state machine.
//
// The machine models a single session lifecycle: card swipe, buffered PIN
// entry, verification against a digest captured at swipe time, and a
// guarded balance-mutating withdrawal. The whole package is built around
// one operation:
//
//	next := machine.NextState(current, event)
//
// NextState is total over its input domain: every (state, event)
// combination yields a defined successor state, there is no error path
// and no side effect. State values are replaced wholesale on every
// transition, never mutated in place, so the engine is referentially
// transparent and trivially safe to call from tests via plain equality
// checks on before/after snapshots.
//
// # State model
//
// A State aggregates the cash held inside the machine, the current
// authentication Phase (Waiting, Authenticating with the expected PIN
// digest, or Authenticated) and a keystroke buffer that accumulates
// presses within the current phase. The buffer is cleared on every phase
// change; the digest carried while Authenticating is always the digest of
// the correct PIN as supplied at swipe time, never of what the user has
// typed so far.
//
// # Failure handling
//
// Two logically distinct failures, a wrong PIN and an insufficient
// balance, are both encoded as a reset to Waiting with an empty buffer.
// The engine carries no reason code; that mirrors a physical ATM ejecting
// the card. Callers that need to distinguish why a session ended can diff
// pre/post snapshots with Classify, which derives an Outcome without the
// engine ever consulting it.
//
// # Concurrency
//
// A Machine is stateless and safe for concurrent use. The caller owns the
// single authoritative State value and is responsible for serializing
// transitions against it; see the terminal package for a ready-made
// holder.
package atm

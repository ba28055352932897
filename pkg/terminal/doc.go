// Package terminal wraps the pure ATM transition engine with the duties
// the engine deliberately leaves to its caller: owning the single
// authoritative state value, serializing transitions against it, and
// remembering why each session ended.
//
// The engine encodes both failure conditions (wrong PIN, insufficient
// funds) as a bare reset to the waiting phase, so a Terminal classifies
// every transition by diffing the pre/post snapshots and records the
// result in an in-memory journal alongside a structured log line. The
// journal is the out-of-band reason signal; the engine itself never sees
// it.
//
// # Usage
//
//	term := terminal.New(atm.New(), atm.NewState(100),
//		terminal.WithLogger(logger),
//	)
//	state, outcome := term.Apply(atm.SwipeCard{PINDigest: digest})
//
// A Terminal is safe for concurrent use; all transitions are applied
// under one mutex, one event at a time, exactly as a physical machine
// consumes them.
package terminal

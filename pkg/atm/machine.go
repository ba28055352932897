package atm

import (
	"slices"

	"github.com/tellerlabs/tellerkit/pkg/keypad"
	"github.com/tellerlabs/tellerkit/pkg/pindigest"
)

// Hasher digests an ordered key sequence into the unsigned 64-bit value
// PIN entries are compared against. It must be deterministic within one
// run and order-sensitive; collision resistance is not required for
// correctness because digests are only ever compared for equality.
type Hasher func(keys []keypad.Key) uint64

// Machine is the transition engine. It holds no session state, only the
// injected hashing primitive, so a single Machine can serve any number of
// independent State values concurrently.
type Machine struct {
	hash Hasher
}

// Option configures a Machine.
type Option func(*Machine)

// WithHasher replaces the default hashing primitive (pindigest.Sum).
// The same hasher must be used at enrollment time and at the machine, or
// no PIN will ever verify. Nil hashers are ignored.
func WithHasher(h Hasher) Option {
	return func(m *Machine) {
		if h != nil {
			m.hash = h
		}
	}
}

// New creates a transition engine.
func New(opts ...Option) *Machine {
	m := &Machine{hash: pindigest.Sum}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NextState computes the successor of state under event. It is a pure,
// total function: no side effects, and every (state, event) combination
// yields a defined result. Unknown event values (including nil) leave the
// state unchanged.
func (m *Machine) NextState(state State, event Event) State {
	switch ev := event.(type) {
	case SwipeCard:
		return m.swipeCard(state, ev)
	case PressKey:
		return m.pressKey(state, ev)
	default:
		return state
	}
}

// swipeCard captures the card's PIN digest and enters PIN entry. A
// re-swipe mid-entry refreshes the digest without discarding keys already
// typed; a swipe from any other phase starts a fresh session with an
// empty buffer.
func (m *Machine) swipeCard(state State, ev SwipeCard) State {
	if state.Phase.Status() == StatusAuthenticating {
		return State{
			CashInside: state.CashInside,
			Phase:      Authenticating(ev.PINDigest),
			Keystrokes: slices.Clone(state.Keystrokes),
		}
	}
	return state.withPhase(Authenticating(ev.PINDigest))
}

func (m *Machine) pressKey(state State, ev PressKey) State {
	switch state.Phase.Status() {
	case StatusAuthenticating:
		if ev.Key == keypad.Enter {
			return m.verifyPIN(state)
		}
		return state.withKeystroke(ev.Key)

	case StatusAuthenticated:
		if ev.Key == keypad.Enter {
			return m.withdraw(state)
		}
		return state.withKeystroke(ev.Key)

	default:
		// Keys pressed before a swipe are ignored.
		return state.withPhase(Waiting())
	}
}

// verifyPIN compares the digest of the typed keys against the digest
// captured at swipe time. A match authenticates the session; a mismatch
// ejects it back to Waiting. Either way the buffer is cleared and the
// cash is untouched.
func (m *Machine) verifyPIN(state State) State {
	expected, _ := state.Phase.PINDigest()
	if m.hash(state.Keystrokes) == expected {
		return state.withPhase(Authenticated())
	}
	return state.withPhase(Waiting())
}

// withdraw parses the typed keys as a decimal amount and debits the cash
// inside if it covers the request. Insufficient funds cancel the request
// silently; in both cases the session ends back at Waiting. The balance
// can never go negative.
func (m *Machine) withdraw(state State) State {
	amount := keypad.ParseAmount(state.Keystrokes)
	next := state.withPhase(Waiting())
	if amount <= state.CashInside {
		next.CashInside = state.CashInside - amount
	}
	return next
}

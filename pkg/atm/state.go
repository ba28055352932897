package atm

import (
	"fmt"
	"slices"

	"github.com/tellerlabs/tellerkit/pkg/keypad"
)

// AuthStatus names the authentication stage of a Phase.
type AuthStatus int

const (
	// StatusWaiting means no card is present.
	StatusWaiting AuthStatus = iota
	// StatusAuthenticating means a card was swiped and the user is
	// entering a PIN.
	StatusAuthenticating
	// StatusAuthenticated means the PIN was verified and the user may
	// request a withdrawal.
	StatusAuthenticated
)

// String returns a human-readable name for the status.
func (s AuthStatus) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Phase is the authentication phase of the machine. It is a comparable
// value type: the zero value is Waiting, and Authenticating carries the
// digest of the correct PIN captured at swipe time. Construct phases with
// Waiting, Authenticating and Authenticated.
type Phase struct {
	status    AuthStatus
	pinDigest uint64
}

// Waiting returns the no-card-present phase.
func Waiting() Phase {
	return Phase{status: StatusWaiting}
}

// Authenticating returns the PIN-entry phase carrying the expected PIN
// digest.
func Authenticating(pinDigest uint64) Phase {
	return Phase{status: StatusAuthenticating, pinDigest: pinDigest}
}

// Authenticated returns the verified phase.
func Authenticated() Phase {
	return Phase{status: StatusAuthenticated}
}

// Status reports which authentication stage the phase is in.
func (p Phase) Status() AuthStatus {
	return p.status
}

// PINDigest returns the expected PIN digest and true while
// authenticating, or 0 and false in any other phase.
func (p Phase) PINDigest() (uint64, bool) {
	if p.status != StatusAuthenticating {
		return 0, false
	}
	return p.pinDigest, true
}

// String renders the phase for display and logging.
func (p Phase) String() string {
	if p.status == StatusAuthenticating {
		return fmt.Sprintf("authenticating(%#016x)", p.pinDigest)
	}
	return p.status.String()
}

// State is the complete machine state: the cash held inside, the
// authentication phase and the keystroke buffer accumulated within the
// current phase. States are immutable snapshots; transitions return fresh
// values and never alias the keystroke buffer of their input.
type State struct {
	CashInside uint64
	Phase      Phase
	Keystrokes []keypad.Key
}

// NewState returns the initial machine state: Waiting, empty buffer, with
// the given cash loaded inside.
func NewState(cashInside uint64) State {
	return State{CashInside: cashInside, Phase: Waiting()}
}

// Equal reports whether two states are identical, treating nil and empty
// keystroke buffers as the same.
func (s State) Equal(other State) bool {
	return s.CashInside == other.CashInside &&
		s.Phase == other.Phase &&
		slices.Equal(s.Keystrokes, other.Keystrokes)
}

// String renders the state for display and logging. Keystrokes are shown
// only as a count: the buffer may hold PIN digits.
func (s State) String() string {
	return fmt.Sprintf("state(cash=%d phase=%s keystrokes=%d)", s.CashInside, s.Phase, len(s.Keystrokes))
}

// withPhase returns a copy of the state in the given phase with the
// keystroke buffer cleared. Every phase change goes through here so the
// buffer-reset invariant holds uniformly.
func (s State) withPhase(p Phase) State {
	return State{CashInside: s.CashInside, Phase: p}
}

// withKeystroke returns a copy of the state with the key appended to a
// fresh buffer; the input state's buffer is never aliased.
func (s State) withKeystroke(k keypad.Key) State {
	buf := make([]keypad.Key, 0, len(s.Keystrokes)+1)
	buf = append(buf, s.Keystrokes...)
	buf = append(buf, k)
	return State{CashInside: s.CashInside, Phase: s.Phase, Keystrokes: buf}
}

package atm

import (
	"fmt"

	"github.com/tellerlabs/tellerkit/pkg/keypad"
)

// Event is something an event source can do to the machine. The set is
// sealed: SwipeCard and PressKey are the only implementations.
type Event interface {
	fmt.Stringer

	isEvent()
}

// SwipeCard presents a card carrying the digest of its correct PIN, as
// produced at enrollment time by the same hashing convention the machine
// verifies with.
type SwipeCard struct {
	PINDigest uint64
}

func (SwipeCard) isEvent() {}

func (e SwipeCard) String() string {
	return fmt.Sprintf("SwipeCard(%#016x)", e.PINDigest)
}

// PressKey is a single keypad press.
type PressKey struct {
	Key keypad.Key
}

func (PressKey) isEvent() {}

func (e PressKey) String() string {
	return fmt.Sprintf("PressKey(%s)", e.Key)
}

package atm

import "github.com/tellerlabs/tellerkit/pkg/keypad"

// Outcome names what a single transition accomplished. The engine never
// produces or consults outcomes: they are derived after the fact by
// diffing the pre/post states, which is the only channel the state
// machine contract offers for telling a rejected PIN apart from a
// refused withdrawal or a successful one.
type Outcome int

const (
	// OutcomeNone means the event had no observable effect.
	OutcomeNone Outcome = iota
	// OutcomeCardAccepted means a swipe started or refreshed PIN entry.
	OutcomeCardAccepted
	// OutcomeKeyIgnored means a key was pressed before any card swipe.
	OutcomeKeyIgnored
	// OutcomeDigitBuffered means a key was appended to the buffer.
	OutcomeDigitBuffered
	// OutcomePINAccepted means Enter verified the typed PIN.
	OutcomePINAccepted
	// OutcomePINRejected means Enter was pressed on a wrong PIN and the
	// session was ejected.
	OutcomePINRejected
	// OutcomeCashDispensed means a withdrawal was granted and the
	// balance debited.
	OutcomeCashDispensed
	// OutcomeWithdrawalRefused means the requested amount exceeded the
	// cash inside and the session ended with the balance untouched.
	OutcomeWithdrawalRefused
)

// String returns a short name suitable for journals and logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCardAccepted:
		return "card_accepted"
	case OutcomeKeyIgnored:
		return "key_ignored"
	case OutcomeDigitBuffered:
		return "digit_buffered"
	case OutcomePINAccepted:
		return "pin_accepted"
	case OutcomePINRejected:
		return "pin_rejected"
	case OutcomeCashDispensed:
		return "cash_dispensed"
	case OutcomeWithdrawalRefused:
		return "withdrawal_refused"
	default:
		return "unknown"
	}
}

// Classify derives the outcome of one transition from the event and the
// surrounding state snapshots. It is pure and makes no call back into the
// engine; before and after must be the exact input and output of the same
// NextState call for the answer to be meaningful.
func Classify(before State, event Event, after State) Outcome {
	switch ev := event.(type) {
	case SwipeCard:
		return OutcomeCardAccepted

	case PressKey:
		switch before.Phase.Status() {
		case StatusWaiting:
			return OutcomeKeyIgnored

		case StatusAuthenticating:
			if ev.Key != keypad.Enter {
				return OutcomeDigitBuffered
			}
			if after.Phase.Status() == StatusAuthenticated {
				return OutcomePINAccepted
			}
			return OutcomePINRejected

		case StatusAuthenticated:
			if ev.Key != keypad.Enter {
				return OutcomeDigitBuffered
			}
			if keypad.ParseAmount(before.Keystrokes) <= before.CashInside {
				return OutcomeCashDispensed
			}
			return OutcomeWithdrawalRefused
		}
	}
	return OutcomeNone
}

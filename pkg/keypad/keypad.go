package keypad

// Key is a single symbol on the ATM keypad. The set is closed: four digit
// keys and Enter. The zero value is One.
type Key int

const (
	One Key = iota
	Two
	Three
	Four
	Enter
)

// String returns the canonical rendering of the key. The rendering is a
// display and digest contract only; callers must not branch on it.
func (k Key) String() string {
	switch k {
	case One:
		return "1"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Enter:
		return "Enter"
	default:
		return "unknown"
	}
}

// Digit returns the numeric value of a digit key and true, or 0 and false
// for Enter and out-of-range values.
func (k Key) Digit() (uint64, bool) {
	if k < One || k > Four {
		return 0, false
	}
	return uint64(k) + 1, true
}

// ParseAmount interprets a buffered key sequence as a decimal withdrawal
// amount, most significant digit first. An empty sequence is 0. Enter
// terminates accumulation wherever it appears, so a buffer that still
// carries its terminator parses the same as one that does not.
func ParseAmount(keys []Key) uint64 {
	var amount uint64
	for _, k := range keys {
		d, ok := k.Digit()
		if !ok {
			break
		}
		amount = amount*10 + d
	}
	return amount
}

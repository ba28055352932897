package pindigest

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/tellerlabs/tellerkit/pkg/keypad"
)

// keySeparator delimits key renderings in the digested stream so that the
// digest stays order-sensitive and unambiguous regardless of rendering
// length ("Enter" vs single digits).
const keySeparator = 0x00

// Sum digests an ordered key sequence into an unsigned 64-bit value.
// It is deterministic across calls and order-sensitive: [One, Two] and
// [Two, One] produce different digests.
func Sum(keys []keypad.Key) uint64 {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 fails only for oversized keys; we pass none.
		panic(fmt.Sprintf("pindigest: init blake2b: %v", err))
	}
	for _, k := range keys {
		h.Write([]byte(k.String()))
		h.Write([]byte{keySeparator})
	}
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}

// SumPIN digests a PIN written as a string of the digits 1-4, e.g. "1234".
// It produces the same digest Sum yields for the equivalent key sequence,
// which makes it suitable for enrolling the expected PIN at card-issue
// time.
func SumPIN(pin string) (uint64, error) {
	keys := make([]keypad.Key, 0, len(pin))
	for _, r := range pin {
		switch r {
		case '1':
			keys = append(keys, keypad.One)
		case '2':
			keys = append(keys, keypad.Two)
		case '3':
			keys = append(keys, keypad.Three)
		case '4':
			keys = append(keys, keypad.Four)
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidPINCharacter, r)
		}
	}
	return Sum(keys), nil
}

package pindigest

import "errors"

// ErrInvalidPINCharacter is returned by SumPIN when the PIN string
// contains a character outside the keypad alphabet (digits 1-4).
var ErrInvalidPINCharacter = errors.New("pin contains a character outside the keypad alphabet")

// Package keypad defines the closed set of symbols an ATM keypad can
// produce and the interpretation of buffered key sequences as withdrawal
// amounts.
//
// The keypad has exactly five keys: the digits 1 through 4 and Enter.
// Each key has a canonical textual rendering ("1", "2", "3", "4",
// "Enter") used for display and for feeding a digest function a stable
// byte representation. Control flow never depends on the rendering, only
// on key identity.
//
// # Usage
//
//	amount := keypad.ParseAmount([]keypad.Key{keypad.One, keypad.Four}) // 14
//
// ParseAmount is total: any sequence of valid keys yields a well-defined
// non-negative amount, with Enter acting as a terminator wherever it
// appears.
package keypad

// Package pindigest produces the one-way digest the ATM engine compares
// PIN entries against.
//
// The digest is a deterministic, order-sensitive function of a keypad key
// sequence: each key's canonical rendering is written followed by a
// separator byte, the whole stream is hashed with BLAKE2b-256, and the
// first eight bytes of the sum are returned as a big-endian uint64. The
// engine only ever compares digests for equality; nothing in the system
// inverts or inspects them.
//
// SumPIN is an enrollment convenience for card issuers: it digests a PIN
// written as a string of the digits 1-4, producing the same value Sum
// would for the equivalent key sequence.
package pindigest

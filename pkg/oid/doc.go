// Package oid produces and decodes 12-byte object identifiers.
//
// An identifier is laid out big-endian as:
//   - 4 bytes: timestamp, seconds since the Unix epoch (or any caller-supplied value)
//   - 5 bytes: process-unique value, drawn once per generator
//   - 3 bytes: counter, starting at a random value and incremented modulo 0xFFFFFF
//
// The textual form is 24 lowercase hex characters.
//
// The counter is advanced atomically, so a single Generator may be shared by
// goroutines. Identifiers are unique under low contention only: they are not
// unforgeable tokens and must not be used as secrets.
package oid

package oid

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/pkg/errors"
)

const (
	// Size is the number of raw bytes in an identifier.
	Size = 12

	// HexSize is the number of characters in the hex form of an identifier.
	HexSize = 2 * Size

	processUniqueSize = 5
	counterModulus    = 0xffffff
)

var (
	// ErrAbsent is returned when a required identifier is missing.
	ErrAbsent = errors.New("identifier is absent")

	// ErrInvalidLength is returned when input has neither raw nor hex identifier length.
	ErrInvalidLength = errors.New("invalid identifier length")

	// ErrInvalidHex is returned when hex text contains a character outside [0-9a-fA-F].
	ErrInvalidHex = errors.New("invalid hex character")
)

// ID is a 12-byte object identifier.
type ID [Size]byte

// Nil is the zero identifier.
var Nil ID

// FromRaw copies 12 raw bytes into an identifier. Content is not validated.
func FromRaw(b []byte) (ID, error) {
	if len(b) != Size {
		return Nil, errors.Wrapf(ErrInvalidLength, "expected %d raw bytes, got %d", Size, len(b))
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// FromBytes builds an identifier from 12 raw bytes or from 24 bytes of hex text.
// On any other length the zero identifier is returned together with ErrInvalidLength.
func FromBytes(b []byte) (ID, error) {
	switch len(b) {
	case Size:
		return FromRaw(b)
	case HexSize:
		return decodeHex(b)
	default:
		return Nil, errors.Wrapf(ErrInvalidLength, "expected %d or %d bytes, got %d", Size, HexSize, len(b))
	}
}

// FromID copies another identifier.
func FromID(other *ID) (ID, error) {
	if other == nil {
		return Nil, errors.WithStack(ErrAbsent)
	}
	return *other, nil
}

// FromTimestamp returns an identifier with only the timestamp field populated.
// Remaining bytes are zero.
func FromTimestamp(timestamp uint32) ID {
	var id ID
	binary.BigEndian.PutUint32(id[0:4], timestamp)
	return id
}

// IsValid reports whether s has the length of a raw or hex identifier.
// Characters are not checked.
func IsValid(s string) bool {
	return len(s) == Size || len(s) == HexSize
}

// IsValidBytes reports whether b has the length of a raw or hex identifier.
func IsValidBytes(b []byte) bool {
	return len(b) == Size || len(b) == HexSize
}

// Timestamp returns the timestamp field.
func (id ID) Timestamp() uint32 {
	return binary.BigEndian.Uint32(id[0:4])
}

// Time returns the timestamp field interpreted as Unix seconds.
func (id ID) Time() time.Time {
	return time.Unix(int64(id.Timestamp()), 0).UTC()
}

// ProcessUnique returns the process-unique field.
func (id ID) ProcessUnique() [processUniqueSize]byte {
	var pu [processUniqueSize]byte
	copy(pu[:], id[4:9])
	return pu
}

// Counter returns the counter field.
func (id ID) Counter() uint32 {
	return uint32(id[9])<<16 | uint32(id[10])<<8 | uint32(id[11])
}

// Bytes returns a copy of the raw bytes.
func (id ID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

// IsZero reports whether id is the zero identifier.
func (id ID) IsZero() bool {
	return id == Nil
}

// Equal reports whether both identifiers have the same bytes.
func (id ID) Equal(other ID) bool {
	return id == other
}

// EqualBytes compares id with 12 raw bytes or with 24 bytes of hex text.
// Hex text is compared case-insensitively. Any other length is unequal.
func (id ID) EqualBytes(b []byte) bool {
	switch len(b) {
	case Size:
		return bytes.Equal(id[:], b)
	case HexSize:
		var lower [HexSize]byte
		for i, c := range b {
			if c >= 'A' && c <= 'Z' {
				c |= 0x20
			}
			lower[i] = c
		}
		var own [HexSize]byte
		encodeHex(own[:], id)
		return own == lower
	default:
		return false
	}
}

// EqualString is EqualBytes for text.
func (id ID) EqualString(s string) bool {
	return id.EqualBytes([]byte(s))
}

// Compare returns -1, 0 or 1 comparing raw bytes lexically.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

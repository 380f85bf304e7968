package oid

import (
	"github.com/pkg/errors"
)

// Value is an owning handle of one identifier.
//
// Copying a Value with Clone or Set copies the identifier bytes. Move transfers
// ownership and leaves the source empty; an empty Value reports ErrAbsent.
type Value struct {
	id *ID
}

func own(id ID) Value {
	return Value{id: &id}
}

// NewValue returns a value holding a fresh identifier carrying the current time.
func NewValue() Value {
	return own(New())
}

// ValueAt returns a value holding a fresh identifier carrying the timestamp.
func ValueAt(timestamp uint32) Value {
	return own(NewAt(timestamp))
}

// ValueOf returns a value holding a copy of id.
func ValueOf(id ID) Value {
	return own(id)
}

// ValueFromBytes returns a value built from 12 raw bytes or 24 bytes of hex text.
func ValueFromBytes(b []byte) (Value, error) {
	id, err := FromBytes(b)
	if err != nil {
		return Value{}, err
	}
	return own(id), nil
}

// ValueFromString returns a value built from text of raw or hex identifier length.
func ValueFromString(s string) (Value, error) {
	return ValueFromBytes([]byte(s))
}

// ValueFromHex returns a value decoded from the hex form.
func ValueFromHex(s string) (Value, error) {
	id, err := FromHex(s)
	if err != nil {
		return Value{}, err
	}
	return own(id), nil
}

// ValueFromTime returns a value holding an identifier with only the timestamp set.
func ValueFromTime(timestamp uint32) Value {
	return own(FromTimestamp(timestamp))
}

// GenerateBytes returns raw bytes of a fresh identifier carrying the current time.
func GenerateBytes() []byte {
	return New().Bytes()
}

// GenerateBytesAt returns raw bytes of a fresh identifier carrying the timestamp.
func GenerateBytesAt(timestamp uint32) []byte {
	b := Generate(timestamp)
	return b[:]
}

// IsEmpty reports whether the value holds no identifier.
func (v Value) IsEmpty() bool {
	return v.id == nil
}

// ID returns the identifier.
func (v Value) ID() (ID, error) {
	return FromID(v.id)
}

// Timestamp returns the timestamp field of the identifier.
func (v Value) Timestamp() (uint32, error) {
	if v.id == nil {
		return 0, errors.WithStack(ErrAbsent)
	}
	return v.id.Timestamp(), nil
}

// Clone returns an independent copy.
func (v Value) Clone() Value {
	if v.id == nil {
		return Value{}
	}
	return own(*v.id)
}

// Move transfers the identifier to the returned value and leaves v empty.
func (v *Value) Move() Value {
	moved := Value{id: v.id}
	v.id = nil
	return moved
}

// Set copies the identifier held by other into v.
func (v *Value) Set(other Value) error {
	id, err := other.ID()
	if err != nil {
		return err
	}
	v.id = &id
	return nil
}

// Equal reports whether both values hold equal identifiers. Empty values are
// never equal.
func (v Value) Equal(other Value) bool {
	if v.id == nil || other.id == nil {
		return false
	}
	return v.id.Equal(*other.id)
}

// String returns the hex form, or an empty string for an empty value.
func (v Value) String() string {
	if v.id == nil {
		return ""
	}
	return v.id.Hex()
}

package oid

import (
	"sync"

	"github.com/pkg/errors"
)

const (
	hexDigits  = "0123456789abcdef"
	invalidHex = 0xff
)

type hexTables struct {
	encode [256][2]byte
	decode [256]byte
}

var tables = sync.OnceValue(func() *hexTables {
	t := &hexTables{}
	for i := range t.decode {
		t.decode[i] = invalidHex
	}
	for i := range 16 {
		t.decode[hexDigits[i]] = byte(i)
		if i >= 10 {
			t.decode[hexDigits[i]-'a'+'A'] = byte(i)
		}
	}
	for i := range t.encode {
		t.encode[i] = [2]byte{hexDigits[i>>4], hexDigits[i&0x0f]}
	}
	return t
})

// FromHex decodes the 24-character hex form. Both cases are accepted.
// On failure the zero identifier is returned.
func FromHex(s string) (ID, error) {
	if len(s) != HexSize {
		return Nil, errors.Wrapf(ErrInvalidLength, "expected %d hex characters, got %d", HexSize, len(s))
	}
	return decodeHex([]byte(s))
}

func decodeHex(b []byte) (ID, error) {
	t := tables()
	var id ID
	for i := range Size {
		high, low := t.decode[b[2*i]], t.decode[b[2*i+1]]
		if high == invalidHex || low == invalidHex {
			pos := 2 * i
			if high != invalidHex {
				pos++
			}
			return Nil, errors.Wrapf(ErrInvalidHex, "character %q at position %d", b[pos], pos)
		}
		id[i] = high<<4 | low
	}
	return id, nil
}

func encodeHex(dst []byte, id ID) {
	t := tables()
	for i, v := range id {
		dst[2*i] = t.encode[v][0]
		dst[2*i+1] = t.encode[v][1]
	}
}

// AppendHex appends the hex form of id to dst.
func (id ID) AppendHex(dst []byte) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, HexSize)...)
	encodeHex(dst[n:], id)
	return dst
}

// Hex returns the 24-character lowercase hex form.
func (id ID) Hex() string {
	var buf [HexSize]byte
	encodeHex(buf[:], id)
	return string(buf[:])
}

// String returns the hex form.
func (id ID) String() string {
	return id.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return id.AppendHex(make([]byte, 0, HexSize)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	if len(text) != HexSize {
		return errors.Wrapf(ErrInvalidLength, "expected %d hex characters, got %d", HexSize, len(text))
	}
	decoded, err := decodeHex(text)
	if err != nil {
		return err
	}
	*id = decoded
	return nil
}

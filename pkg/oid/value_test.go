package oid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConstructors(t *testing.T) {
	requireT := require.New(t)

	v := ValueAt(77)
	ts, err := v.Timestamp()
	requireT.NoError(err)
	requireT.Equal(uint32(77), ts)

	fromHex, err := ValueFromHex(v.String())
	requireT.NoError(err)
	requireT.True(v.Equal(fromHex))

	fromString, err := ValueFromString(strings.ToUpper(v.String()))
	requireT.NoError(err)
	requireT.True(v.Equal(fromString))

	id, err := v.ID()
	requireT.NoError(err)
	fromBytes, err := ValueFromBytes(id.Bytes())
	requireT.NoError(err)
	requireT.True(v.Equal(fromBytes))
	requireT.True(v.Equal(ValueOf(id)))

	requireT.Equal("0000004d0000000000000000", ValueFromTime(77).String())
	requireT.False(NewValue().IsEmpty())
}

func TestValueInvalid(t *testing.T) {
	requireT := require.New(t)

	v, err := ValueFromBytes(make([]byte, 7))
	requireT.ErrorIs(err, ErrInvalidLength)
	requireT.True(v.IsEmpty())

	v, err = ValueFromHex(strings.Repeat("x", HexSize))
	requireT.ErrorIs(err, ErrInvalidHex)
	requireT.True(v.IsEmpty())
}

func TestValueMove(t *testing.T) {
	requireT := require.New(t)

	v := NewValue()
	hex := v.String()

	moved := v.Move()
	requireT.True(v.IsEmpty())
	requireT.Equal(hex, moved.String())
	requireT.Empty(v.String())

	_, err := v.ID()
	requireT.ErrorIs(err, ErrAbsent)
	_, err = v.Timestamp()
	requireT.ErrorIs(err, ErrAbsent)
	requireT.False(v.Equal(moved))
	requireT.False(v.Equal(v))

	requireT.NoError(v.Set(moved))
	requireT.True(v.Equal(moved))
}

func TestValueCopy(t *testing.T) {
	requireT := require.New(t)

	a := ValueAt(1)
	b := a.Clone()
	requireT.True(a.Equal(b))

	c := ValueAt(2)
	requireT.NoError(b.Set(c))
	requireT.True(b.Equal(c))
	requireT.False(a.Equal(b))

	moved := c.Move()
	requireT.True(b.Equal(moved))
	requireT.ErrorIs(b.Set(c), ErrAbsent)
	requireT.True(Value{}.Clone().IsEmpty())
}

func TestGenerateBytes(t *testing.T) {
	b := GenerateBytes()
	assert.Len(t, b, Size)
	assert.True(t, IsValidBytes(b))

	b = GenerateBytesAt(0xffffffff)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, b[:4])
	pu := ProcessUnique()
	assert.Equal(t, pu[:], b[4:9])
}

package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/objectid/pkg/oid"
)

func TestID(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal(oid.FromTimestamp(1), ID("000000010000000000000000"))
	requireT.Panics(func() { ID("00000001") })
	requireT.Panics(func() { ID("00000001000000000000000x") })
}

func TestTimestamp(t *testing.T) {
	requireT := require.New(t)

	ts, err := Timestamp("1700000000")
	requireT.NoError(err)
	requireT.Equal(uint32(1700000000), ts)

	ts, err = Timestamp("2023-11-14T22:13:20Z")
	requireT.NoError(err)
	requireT.Equal(uint32(1700000000), ts)

	ts, err = Timestamp("4294967295")
	requireT.NoError(err)
	requireT.Equal(uint32(0xffffffff), ts)

	for _, invalid := range []string{"", "-1", "4294967296", "yesterday", "1969-12-31T23:59:59Z"} {
		_, err = Timestamp(invalid)
		requireT.Error(err, invalid)
	}
}

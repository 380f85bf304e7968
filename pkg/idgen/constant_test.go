package idgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/objectid/pkg/parse"
)

func TestConstant(t *testing.T) {
	const hex = "5f1d7f3e0102030405000001"

	gen := NewConstant(hex)
	require.Equal(t, parse.ID(hex), gen.ID())
	require.Panics(t, func() { gen.ID() })
}

func TestConstantInvalid(t *testing.T) {
	require.Panics(t, func() { NewConstant("5f1d7f3e01020304050000") })
	require.Panics(t, func() { NewConstant("5f1d7f3e010203040500000g") })
}

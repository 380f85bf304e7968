package idgen

import (
	"github.com/pkg/errors"

	"github.com/outofforest/objectid/pkg/oid"
)

// NewConstant returns new generator that produces a constant ID once.
func NewConstant(hex string) Generator {
	id, err := oid.FromHex(hex)
	if err != nil {
		panic(errors.Wrapf(err, "expected 24 hex characters, got %s", hex))
	}
	return &constantGenerator{id: &id}
}

// constantGenerator is a generator.
type constantGenerator struct {
	id *oid.ID
}

// ID is the implementation of Generator.ID.
func (cg *constantGenerator) ID() oid.ID {
	if cg.id == nil {
		// id was discarded, constantGenerator.ID shouldn't be use more than once
		panic("constantGenerator.ID shouldn't be use more than once")
	}
	id := *cg.id
	cg.id = nil
	return id
}

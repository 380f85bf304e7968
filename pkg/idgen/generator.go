package idgen

import "github.com/outofforest/objectid/pkg/oid"

// Generator is a generator of object identifiers.
type Generator interface {
	// ID generates a new identifier
	ID() oid.ID
}

type processGenerator struct{}

// Default is the process-wide generator. It is safe for concurrent use.
var Default Generator = processGenerator{}

func (processGenerator) ID() oid.ID {
	return oid.New()
}

func (processGenerator) IDAt(timestamp uint32) oid.ID {
	return oid.NewAt(timestamp)
}

type oidGenerator struct {
	g *oid.Generator
}

// New wraps oid.Generator.
func New(g *oid.Generator) Generator {
	return oidGenerator{g: g}
}

func (og oidGenerator) ID() oid.ID {
	return og.g.New()
}

func (og oidGenerator) IDAt(timestamp uint32) oid.ID {
	return og.g.NewAt(timestamp)
}

// TimedGenerator is a generator able to stamp identifiers with a given timestamp.
type TimedGenerator interface {
	Generator

	// IDAt generates a new identifier carrying the timestamp
	IDAt(timestamp uint32) oid.ID
}

type atGenerator struct {
	gen       TimedGenerator
	timestamp uint32
}

func (ag atGenerator) ID() oid.ID {
	return ag.gen.IDAt(ag.timestamp)
}

// At returns a generator stamping identifiers from gen with the timestamp.
// Process-unique value and counter stay those of gen. Generators which can't
// take a timestamp, like constant ones, are returned unchanged.
func At(gen Generator, timestamp uint32) Generator {
	if tg, ok := gen.(TimedGenerator); ok {
		return atGenerator{gen: tg, timestamp: timestamp}
	}
	return gen
}

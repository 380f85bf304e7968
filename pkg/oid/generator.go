package oid

import (
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Generator holds the state identifiers are generated from: the process-unique
// value and the running counter. State is drawn from the randomness source on
// first use.
type Generator struct {
	source io.Reader
	now    func() time.Time

	once          sync.Once
	processUnique [processUniqueSize]byte
	counter       atomic.Uint32
}

// Option configures a Generator.
type Option func(g *Generator)

// WithSource sets the randomness source the process-unique value and the
// initial counter are read from. By default math/rand seeded with the wall
// clock at first use is taken.
func WithSource(source io.Reader) Option {
	return func(g *Generator) {
		g.source = source
	}
}

// WithClock sets the clock used by New.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var std = NewGenerator()

func (g *Generator) init() {
	g.once.Do(func() {
		source := g.source
		if source == nil {
			source = rand.New(rand.NewSource(time.Now().UnixNano()))
		}

		var seed [processUniqueSize + 3]byte
		if _, err := io.ReadFull(source, seed[:]); err != nil {
			panic(errors.Wrap(err, "reading identifier generator seed failed"))
		}
		copy(g.processUnique[:], seed[:processUniqueSize])
		g.counter.Store((uint32(seed[5])<<16 | uint32(seed[6])<<8 | uint32(seed[7])) % counterModulus)
	})
}

func (g *Generator) nextCounter() uint32 {
	for {
		c := g.counter.Load()
		next := (c + 1) % counterModulus
		if g.counter.CompareAndSwap(c, next) {
			return next
		}
	}
}

// ProcessUnique returns the process-unique value embedded in every identifier
// produced by the generator.
func (g *Generator) ProcessUnique() [processUniqueSize]byte {
	g.init()
	return g.processUnique
}

// Generate produces identifier bytes for the timestamp.
func (g *Generator) Generate(timestamp uint32) [Size]byte {
	g.init()
	counter := g.nextCounter()

	var b [Size]byte
	binary.BigEndian.PutUint32(b[0:4], timestamp)
	copy(b[4:9], g.processUnique[:])
	b[9] = byte(counter >> 16)
	b[10] = byte(counter >> 8)
	b[11] = byte(counter)
	return b
}

// NewAt returns a fresh identifier carrying the timestamp.
func (g *Generator) NewAt(timestamp uint32) ID {
	return g.Generate(timestamp)
}

// New returns a fresh identifier carrying the current time.
func (g *Generator) New() ID {
	return g.NewAt(uint32(g.now().Unix()))
}

// New returns a fresh identifier from the process-wide generator.
func New() ID {
	return std.New()
}

// NewAt returns a fresh identifier carrying the timestamp from the process-wide generator.
func NewAt(timestamp uint32) ID {
	return std.NewAt(timestamp)
}

// Generate produces identifier bytes from the process-wide generator.
func Generate(timestamp uint32) [Size]byte {
	return std.Generate(timestamp)
}

// ProcessUnique returns the process-unique value of the process-wide generator.
func ProcessUnique() [processUniqueSize]byte {
	return std.ProcessUnique()
}

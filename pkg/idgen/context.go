package idgen

import (
	"context"

	"github.com/outofforest/objectid/pkg/oid"
)

type generatorKeyType int

const generatorKey generatorKeyType = iota

// WithGenerator returns a cloned context.Context with the given Generator
// injected into it.
func WithGenerator(ctx context.Context, generator Generator) context.Context {
	return context.WithValue(ctx, generatorKey, generator)
}

// FromContext returns the Generator that WithGenerator has injected into the
// context, or Default if there is none.
func FromContext(ctx context.Context) Generator {
	if g, ok := ctx.Value(generatorKey).(Generator); ok {
		return g
	}
	return Default
}

// ID generates an identifier using the generator from the given context.
func ID(ctx context.Context) oid.ID {
	return FromContext(ctx).ID()
}

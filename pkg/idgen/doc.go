// Package idgen hands out object identifiers through a Generator.
//
// Generators are passed around explicitly or injected into context.Context.
// Besides the process-wide generator there are:
//   - deterministic generators, producing the same sequence for the same key
//   - constant generators, producing a given identifier once
//
// Stream and Batch produce many identifiers at once.
package idgen

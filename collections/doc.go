// Package collections provides a generic, ordered, key-addressable
// Collection type whose elements are checked by a validation policy on every
// insertion, inspired by Laravel's Illuminate/Collections and PHP's
// ArrayObject.
//
// # Overview
//
// The central type is [Collection][T]. Values are addressed by [Key], either
// an integer [Index] or a string [Label], and keep insertion order:
//
//	c, err := collections.NewWithPolicy(collections.NonEmptyString(), "alpha", "beta")
//	_ = c.Append("gamma")                          // key 2
//	_ = c.Set(collections.Label("extra"), "delta") // no longer sequential
//	v, err := c.Get(collections.Index(1))          // "beta"
//	third, ok := c.GetNth(3)                       // "gamma", 1-based
//
// # Validation policies
//
// A [Validator] decides which values a collection may hold. Rejected values
// produce a [ValidationError] and never reach the collection; construction
// fails as a whole. Ready-made policies: [Numeric], [NonEmptyString],
// [SelfValidating], [ExactKind]. Combine them with [All].
//
// Typed wrappers put a policy and its helpers together: [Numbers]
// (Integers, Floats), [Text] (Concat) and [Objects]. Their Filter, Reject,
// Map, Slice and Chunk return the wrapper type, so a slice of [Text] can
// still be concatenated.
//
// # Sequential and keyed collections
//
// A collection whose keys are exactly 0..n-1 in order is sequential. It
// encodes as a JSON array and [Collection.Absorb] appends to it. Any other
// collection encodes as a JSON object and Absorb merges into it by key.
//
// # Combinators
//
// Filter, Map, Slice and Chunk build new collections governed by the same
// policy; Walk mutates in place; Reduce folds. Operations that change the
// element type are package-level functions: [Map], [Reduce].
//
// # Concurrency
//
// Collections are plain in-memory values with no locking. Serialise access
// when sharing one between goroutines.
package collections

// Package cache stores rendered report responses. Entries are namespaced by a
// generation counter so a single increment invalidates every cached report
// after a write.
package cache

import "context"

// Store is a byte cache with whole-namespace invalidation.
//
// A reader that misses must fill the entry with SetAt under the generation
// returned by Get, so a value computed before an invalidation can never be
// served after it.
type Store interface {
	// Get returns the cached value, the generation it was looked up in and
	// whether it was found.
	Get(ctx context.Context, key string) (value []byte, gen int64, found bool, err error)
	// SetAt stores value for key in generation gen. Entries of a generation
	// that is no longer current are never read back.
	SetAt(ctx context.Context, gen int64, key string, value []byte) error
	// Invalidate drops every entry written so far.
	Invalidate(ctx context.Context) error
}

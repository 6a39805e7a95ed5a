// Package kv abstracts the key-value store holding the authoritative world
// state: hashes for tiles and players, sets for the spatial indices, and a
// sorted set for the leaderboard. Production uses Redis; tests and dev mode
// use the in-memory implementation.
package kv

import "context"

//go:generate mockgen -destination=mock/mock_store.go -package=kvmock github.com/hexterra/world-api/internal/persistence/kv Store

// ScanStart is the cursor that begins a SetScan; the scan is complete when
// the store returns it again.
const ScanStart = "0"

// Member is a sorted-set member with its score
type Member struct {
	Member string
	Score  float64
}

// Store is the key-value surface the world engine runs on. Semantics follow
// Redis: hashes of string fields, unordered sets, score-ordered sorted sets,
// and cursor-based set iteration.
type Store interface {
	// HashGetAll returns every field of the hash at key; empty map if the
	// key does not exist.
	HashGetAll(ctx context.Context, key string) (map[string]string, error)

	// HashSet sets each field to its value, returning the number of new
	// fields created.
	HashSet(ctx context.Context, key string, fields map[string]string) (int64, error)

	// HashDelete removes fields from the hash, returning how many existed.
	HashDelete(ctx context.Context, key string, fields ...string) (int64, error)

	// HashIncrBy atomically adds delta to an integer field, returning the
	// new value.
	HashIncrBy(ctx context.Context, key, field string, delta int64) (int64, error)

	// HashSetNX sets a field only if it is absent, reporting whether it was set.
	HashSetNX(ctx context.Context, key, field, value string) (bool, error)

	// ZIncrBy adds delta to a member's score, returning the new score.
	ZIncrBy(ctx context.Context, key string, delta float64, member string) (float64, error)

	// ZRangeWithScores returns members by rank in score order, ascending or
	// descending. Negative stop counts from the end, Redis style.
	ZRangeWithScores(ctx context.Context, key string, start, stop int64, reverse bool) ([]Member, error)

	// SetAdd adds members, returning the number newly added.
	SetAdd(ctx context.Context, key string, members ...string) (int64, error)

	// SetRemove removes members, returning the number removed.
	SetRemove(ctx context.Context, key string, members ...string) (int64, error)

	// SetMembers returns all members of the set.
	SetMembers(ctx context.Context, key string) ([]string, error)

	// SetScan iterates the set in batches. Pass ScanStart to begin; the
	// returned cursor is ScanStart again once iteration is complete. Count
	// is a hint, not a guarantee.
	SetScan(ctx context.Context, key, cursor string, count int64) ([]string, string, error)
}

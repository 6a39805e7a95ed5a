package kv

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/hexterra/world-api/internal/errors"
)

// memoryStore is an in-process Store with Redis-compatible semantics. It
// backs the engine's unit tests and the dev-mode server when no Redis
// endpoint is configured.
type memoryStore struct {
	mu     sync.RWMutex
	hashes map[string]map[string]string
	sets   map[string]map[string]struct{}
	zsets  map[string]map[string]float64
}

// NewMemory creates an empty in-memory Store
func NewMemory() Store {
	return &memoryStore{
		hashes: make(map[string]map[string]string),
		sets:   make(map[string]map[string]struct{}),
		zsets:  make(map[string]map[string]float64),
	}
}

// Ensure memoryStore implements Store
var _ Store = (*memoryStore)(nil)

func (s *memoryStore) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, ctxErr(err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.hashes[key]))
	for field, value := range s.hashes[key] {
		out[field] = value
	}
	return out, nil
}

func (s *memoryStore) HashSet(ctx context.Context, key string, fields map[string]string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, ctxErr(err)
	}
	if len(fields) == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.hashes[key]
	if h == nil {
		h = make(map[string]string)
		s.hashes[key] = h
	}
	var created int64
	for field, value := range fields {
		if _, ok := h[field]; !ok {
			created++
		}
		h[field] = value
	}
	return created, nil
}

func (s *memoryStore) HashDelete(ctx context.Context, key string, fields ...string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, ctxErr(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.hashes[key]
	var removed int64
	for _, field := range fields {
		if _, ok := h[field]; ok {
			delete(h, field)
			removed++
		}
	}
	if len(h) == 0 {
		delete(s.hashes, key)
	}
	return removed, nil
}

func (s *memoryStore) HashIncrBy(ctx context.Context, key, field string, delta int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, ctxErr(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.hashes[key]
	if h == nil {
		h = make(map[string]string)
		s.hashes[key] = h
	}
	current := int64(0)
	if raw, ok := h[field]; ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, errors.Internalf("hash field %s.%s is not an integer: %q", key, field, raw)
		}
		current = parsed
	}
	current += delta
	h[field] = strconv.FormatInt(current, 10)
	return current, nil
}

func (s *memoryStore) HashSetNX(ctx context.Context, key, field, value string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, ctxErr(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.hashes[key]
	if h == nil {
		h = make(map[string]string)
		s.hashes[key] = h
	}
	if _, ok := h[field]; ok {
		return false, nil
	}
	h[field] = value
	return true, nil
}

func (s *memoryStore) ZIncrBy(ctx context.Context, key string, delta float64, member string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, ctxErr(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	z := s.zsets[key]
	if z == nil {
		z = make(map[string]float64)
		s.zsets[key] = z
	}
	z[member] += delta
	return z[member], nil
}

func (s *memoryStore) ZRangeWithScores(ctx context.Context, key string, start, stop int64, reverse bool) ([]Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, ctxErr(err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	z := s.zsets[key]
	members := make([]Member, 0, len(z))
	for member, score := range z {
		members = append(members, Member{Member: member, Score: score})
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].Score != members[j].Score {
			return members[i].Score < members[j].Score
		}
		return members[i].Member < members[j].Member
	})
	if reverse {
		for i, j := 0, len(members)-1; i < j; i, j = i+1, j-1 {
			members[i], members[j] = members[j], members[i]
		}
	}

	n := int64(len(members))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if start >= n || stop < start {
		return nil, nil
	}
	if stop >= n {
		stop = n - 1
	}
	return members[start : stop+1], nil
}

func (s *memoryStore) SetAdd(ctx context.Context, key string, members ...string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, ctxErr(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.sets[key]
	if set == nil {
		set = make(map[string]struct{})
		s.sets[key] = set
	}
	var added int64
	for _, m := range members {
		if _, ok := set[m]; !ok {
			set[m] = struct{}{}
			added++
		}
	}
	return added, nil
}

func (s *memoryStore) SetRemove(ctx context.Context, key string, members ...string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, ctxErr(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.sets[key]
	var removed int64
	for _, m := range members {
		if _, ok := set[m]; ok {
			delete(set, m)
			removed++
		}
	}
	if len(set) == 0 {
		delete(s.sets, key)
	}
	return removed, nil
}

func (s *memoryStore) SetMembers(ctx context.Context, key string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, ctxErr(err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]string, 0, len(s.sets[key]))
	for m := range s.sets[key] {
		members = append(members, m)
	}
	return members, nil
}

// SetScan returns the whole set in a single batch, which is a legal Redis
// scan: the cursor contract only promises termination, not batch sizes.
func (s *memoryStore) SetScan(ctx context.Context, key, cursor string, count int64) ([]string, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", ctxErr(err)
	}
	if cursor != ScanStart {
		return nil, ScanStart, nil
	}
	members, err := s.SetMembers(ctx, key)
	if err != nil {
		return nil, "", err
	}
	return members, ScanStart, nil
}

func ctxErr(err error) *errors.Error {
	if err == context.DeadlineExceeded {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "operation timed out")
	}
	return errors.WrapWithCode(err, errors.CodeCanceled, "operation canceled")
}

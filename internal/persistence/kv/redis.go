package kv

import (
	"context"
	stderrors "errors"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hexterra/world-api/internal/errors"
	redisclient "github.com/hexterra/world-api/internal/redis"
)

// RedisConfig holds the configuration for the Redis-backed store
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisStore struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed Store
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisStore{client: cfg.Client}, nil
}

// Ensure redisStore implements Store
var _ Store = (*redisStore)(nil)

func (s *redisStore) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	result, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, storeErr(err, "HGETALL %s", key)
	}
	return result, nil
}

func (s *redisStore) HashSet(ctx context.Context, key string, fields map[string]string) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	args := make([]interface{}, 0, len(fields)*2)
	for field, value := range fields {
		args = append(args, field, value)
	}
	created, err := s.client.HSet(ctx, key, args...).Result()
	if err != nil {
		return 0, storeErr(err, "HSET %s", key)
	}
	return created, nil
}

func (s *redisStore) HashDelete(ctx context.Context, key string, fields ...string) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	removed, err := s.client.HDel(ctx, key, fields...).Result()
	if err != nil {
		return 0, storeErr(err, "HDEL %s", key)
	}
	return removed, nil
}

func (s *redisStore) HashIncrBy(ctx context.Context, key, field string, delta int64) (int64, error) {
	value, err := s.client.HIncrBy(ctx, key, field, delta).Result()
	if err != nil {
		return 0, storeErr(err, "HINCRBY %s %s", key, field)
	}
	return value, nil
}

func (s *redisStore) HashSetNX(ctx context.Context, key, field, value string) (bool, error) {
	set, err := s.client.HSetNX(ctx, key, field, value).Result()
	if err != nil {
		return false, storeErr(err, "HSETNX %s %s", key, field)
	}
	return set, nil
}

func (s *redisStore) ZIncrBy(ctx context.Context, key string, delta float64, member string) (float64, error) {
	score, err := s.client.ZIncrBy(ctx, key, delta, member).Result()
	if err != nil {
		return 0, storeErr(err, "ZINCRBY %s", key)
	}
	return score, nil
}

func (s *redisStore) ZRangeWithScores(ctx context.Context, key string, start, stop int64, reverse bool) ([]Member, error) {
	var zs []goredis.Z
	var err error
	if reverse {
		zs, err = s.client.ZRevRangeWithScores(ctx, key, start, stop).Result()
	} else {
		zs, err = s.client.ZRangeWithScores(ctx, key, start, stop).Result()
	}
	if err != nil {
		return nil, storeErr(err, "ZRANGE %s", key)
	}

	members := make([]Member, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			member = toString(z.Member)
		}
		members = append(members, Member{Member: member, Score: z.Score})
	}
	return members, nil
}

func (s *redisStore) SetAdd(ctx context.Context, key string, members ...string) (int64, error) {
	if len(members) == 0 {
		return 0, nil
	}
	added, err := s.client.SAdd(ctx, key, toInterfaces(members)...).Result()
	if err != nil {
		return 0, storeErr(err, "SADD %s", key)
	}
	return added, nil
}

func (s *redisStore) SetRemove(ctx context.Context, key string, members ...string) (int64, error) {
	if len(members) == 0 {
		return 0, nil
	}
	removed, err := s.client.SRem(ctx, key, toInterfaces(members)...).Result()
	if err != nil {
		return 0, storeErr(err, "SREM %s", key)
	}
	return removed, nil
}

func (s *redisStore) SetMembers(ctx context.Context, key string) ([]string, error) {
	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, storeErr(err, "SMEMBERS %s", key)
	}
	return members, nil
}

func (s *redisStore) SetScan(ctx context.Context, key, cursor string, count int64) ([]string, string, error) {
	cur, err := strconv.ParseUint(cursor, 10, 64)
	if err != nil {
		return nil, "", errors.InvalidArgumentf("invalid scan cursor %q", cursor)
	}

	members, next, err := s.client.SScan(ctx, key, cur, "", count).Result()
	if err != nil {
		return nil, "", storeErr(err, "SSCAN %s", key)
	}
	return members, strconv.FormatUint(next, 10), nil
}

func storeErr(err error, format string, args ...interface{}) *errors.Error {
	code := errors.CodeUnavailable
	switch {
	case stderrors.Is(err, context.Canceled):
		code = errors.CodeCanceled
	case stderrors.Is(err, context.DeadlineExceeded):
		code = errors.CodeDeadlineExceeded
	}
	return errors.WrapWithCodef(err, code, format, args...)
}

func toInterfaces(members []string) []interface{} {
	out := make([]interface{}, len(members))
	for i, m := range members {
		out[i] = m
	}
	return out
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return ""
}

package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient to allow for easy mocking and to keep
// the rest of the codebase off the concrete go-redis types.
type Client interface {
	redis.UniversalClient
}

package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the catalog uses. Any UniversalClient,
// including ones pointed at miniredis, satisfies it.
type Client interface {
	redis.UniversalClient
}

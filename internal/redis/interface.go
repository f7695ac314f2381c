package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the statistics repository depends on.
// Tests hand in a client pointed at miniredis.
type Client interface {
	redis.UniversalClient
}

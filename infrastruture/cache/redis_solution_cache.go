package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	// default prefix for redis keys
	defaultPrefix = "pathfinder"

	// solution key string format
	solutionKeyFmt = "%s:solution:%s"

	// how long a solve lock survives a crashed holder
	lockExpiry = 10 * time.Second
)

// RedisSolutionCache stores maze solutions in Redis with a TTL and guards
// solving with a redsync mutex per maze digest.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
}

// NewRedisSolutionCache initializes a RedisSolutionCache with the provided Redis client and TTL.
func NewRedisSolutionCache(client *redis.Client, ttlSeconds int) (*RedisSolutionCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("invalid ttl %d", ttlSeconds)
	}

	c := &RedisSolutionCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		prefix: defaultPrefix,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

func (c *RedisSolutionCache) key(digest string) string {
	return fmt.Sprintf(solutionKeyFmt, c.prefix, digest)
}

// Get returns the cached solution for digest or dmn.ErrCacheMiss.
func (c *RedisSolutionCache) Get(ctx context.Context, digest string) (*maze.Solution, error) {
	raw, err := c.client.Get(ctx, c.key(digest)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, dmn.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var sol maze.Solution
	if err := json.Unmarshal(raw, &sol); err != nil {
		return nil, fmt.Errorf("decoding cached solution: %w", err)
	}
	return &sol, nil
}

// Set stores s under digest until the TTL expires.
func (c *RedisSolutionCache) Set(ctx context.Context, digest string, s *maze.Solution) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(digest), raw, c.ttl).Err()
}

// Lock obtains the solve lock for digest.
func (c *RedisSolutionCache) Lock(ctx context.Context, digest string) (func(), error) {
	mutex := c.locker.NewMutex(c.key(digest)+":solve_lock", redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

package i

import (
	"context"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// SolutionCache stores solved mazes keyed by the digest of their rows.
type SolutionCache interface {
	// Get returns the cached solution or dmn.ErrCacheMiss.
	Get(ctx context.Context, digest string) (*maze.Solution, error)

	// Set stores a solution until the cache's TTL expires.
	Set(ctx context.Context, digest string, s *maze.Solution) error

	// Lock serializes work on one digest across instances. The returned
	// function releases the lock.
	Lock(ctx context.Context, digest string) (func(), error)
}

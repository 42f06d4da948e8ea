// Package playback replays a finished maze path one step at a time.
package playback

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

const (
	DefaultDelay = 200 * time.Millisecond
)

// Facing is the direction an actor looks after reaching a step.
type Facing string

const (
	FacingRight Facing = "right"
	FacingLeft  Facing = "left"
	FacingUp    Facing = "up"
	FacingDown  Facing = "down"
)

// Step is one frame of playback.
type Step struct {
	Index    int             `json:"index"`
	Position maze.Coordinate `json:"position"`
	Facing   Facing          `json:"facing"`
	Last     bool            `json:"last"`
}

// Steps computes the facing for every cell of path. A vertical move wins over
// a horizontal one and a step without movement keeps the previous facing.
// Rows grow downward.
func Steps(path maze.Path) []Step {
	steps := make([]Step, 0, len(path))
	facing := FacingRight

	for i, c := range path {
		if i > 0 {
			facing = turn(path[i-1], c, facing)
		}
		steps = append(steps, Step{
			Index:    i,
			Position: c,
			Facing:   facing,
			Last:     i == len(path)-1,
		})
	}
	return steps
}

func turn(prev, cur maze.Coordinate, facing Facing) Facing {
	dx, dy := cur.X-prev.X, cur.Y-prev.Y

	if dx < 0 {
		facing = FacingLeft
	} else if dx > 0 {
		facing = FacingRight
	}

	if dy > 0 {
		facing = FacingDown
	} else if dy < 0 {
		facing = FacingUp
	}
	return facing
}

// Player emits the steps of a path with a fixed delay between them.
type Player struct {
	delay time.Duration
}

// NewPlayer creates a Player. A non-positive delay falls back to DefaultDelay.
func NewPlayer(delay time.Duration) *Player {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Player{delay: delay}
}

// Delay returns the time between two steps.
func (p *Player) Delay() time.Duration {
	return p.delay
}

// Play calls emit for each step, waiting the player's delay after each one.
// It returns ctx.Err() if the context ends first, or the first emit error.
func (p *Player) Play(ctx context.Context, path maze.Path, emit func(Step) error) error {
	ticker := time.NewTicker(p.delay)
	defer ticker.Stop()

	for _, step := range Steps(path) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(step); err != nil {
			return err
		}
		if step.Last {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
)

// MazeService solves, generates and stores mazes.
type MazeService interface {
	// Solve solves rows, serving repeated mazes from the cache.
	Solve(ctx context.Context, rows []string) (*maze.Solution, error)

	// Generate builds a random maze and returns its rows with their solution.
	Generate(ctx context.Context, width, height int, seed int64) ([]string, *maze.Solution, error)

	// Save validates and stores rows, returning the new maze ID.
	Save(ctx context.Context, rows []string) (uuid.UUID, error)

	// ByID returns a stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// SolveByID solves a stored maze.
	SolveByID(ctx context.Context, id uuid.UUID) (*maze.Solution, error)
}

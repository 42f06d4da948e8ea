package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze in the repository.
	Save(ctx context.Context, m *dmn.MazeRecord) error

	// ByID retrieves a maze by its unique ID.
	// Returns dmn.ErrMazeNotFound if no maze has that ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}

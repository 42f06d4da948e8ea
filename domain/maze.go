// Package domain holds the records shared by the service and its adapters.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMazeNotFound = errors.New("maze not found")
	ErrCacheMiss    = errors.New("solution not cached")
)

// MazeRecord is a stored maze.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Rows      []string  `bson:"rows" json:"rows"`
	Width     int       `bson:"width" json:"width"`
	Height    int       `bson:"height" json:"height"`
	Digest    string    `bson:"digest" json:"digest"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

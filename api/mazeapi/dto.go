// Package mazeapi provides the request and response shapes of the maze API.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// RowsRequest carries a maze as text rows.
type RowsRequest struct {
	Rows []string `json:"rows" binding:"required"`
}

// SolutionResponse is the JSON form of a solved maze.
type SolutionResponse struct {
	Start    maze.Coordinate   `json:"start"`
	End      maze.Coordinate   `json:"end"`
	HasStart bool              `json:"has_start"`
	HasEnd   bool              `json:"has_end"`
	Status   maze.Status       `json:"status"`
	Path     maze.Path         `json:"path"`
	Moves    []maze.Move       `json:"moves"`
	Walls    []maze.Coordinate `json:"walls"`
}

// GenerateResponse holds a generated maze and its solution.
type GenerateResponse struct {
	Seed     int64            `json:"seed"`
	Rows     []string         `json:"rows"`
	Solution SolutionResponse `json:"solution"`
}

// SaveResponse holds the ID of a stored maze.
type SaveResponse struct {
	ID string `json:"id"`
}

func newSolutionResponse(s *maze.Solution) SolutionResponse {
	return SolutionResponse{
		Start:    s.Start,
		End:      s.End,
		HasStart: s.HasStart,
		HasEnd:   s.HasEnd,
		Status:   s.Status,
		Path:     s.Path,
		Moves:    s.Path.Moves(),
		Walls:    s.Walls,
	}
}

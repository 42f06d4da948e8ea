package maze

import (
	"errors"
	"fmt"
)

var (
	// Directions maps a direction name to its grid offset. Rows grow southward.
	Directions = map[string]Coordinate{
		"North": {X: 0, Y: -1},
		"South": {X: 0, Y: 1},
		"East":  {X: 1, Y: 0},
		"West":  {X: -1, Y: 0},
	}

	ErrInvalidPath = errors.New("invalid path")
)

// Path is an ordered walk of 4-adjacent coordinates. An empty path means no
// route was found.
type Path []Coordinate

// Move represents a step from one cell to an adjacent one.
type Move struct {
	From      Coordinate `json:"from"`      // Starting cell
	To        Coordinate `json:"to"`        // Destination cell
	Direction string     `json:"direction"` // North, South, East or West
}

// Moves converts the path into single-cell steps.
func (p Path) Moves() []Move {
	if len(p) < 2 {
		return []Move{}
	}

	moves := make([]Move, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		moves = append(moves, Move{
			From:      p[i-1],
			To:        p[i],
			Direction: directionOf(p[i-1], p[i]),
		})
	}
	return moves
}

// directionOf names the step from a to b, or returns "" if they are not adjacent.
func directionOf(a, b Coordinate) string {
	delta := Coordinate{X: b.X - a.X, Y: b.Y - a.Y}
	for name, d := range Directions {
		if d == delta {
			return name
		}
	}
	return ""
}

// Validate checks that every cell of p is open in g, that consecutive cells
// are 4-adjacent and that no cell repeats.
func (p Path) Validate(g *Grid) error {
	seen := make(map[Coordinate]struct{}, len(p))
	for i, c := range p {
		kind, ok := g.Kind(c)
		if !ok {
			return fmt.Errorf("%w: step %d at (%d,%d) is outside the maze", ErrInvalidPath, i, c.X, c.Y)
		}
		if kind != Open {
			return fmt.Errorf("%w: step %d at (%d,%d) is not open", ErrInvalidPath, i, c.X, c.Y)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: (%d,%d) visited twice", ErrInvalidPath, c.X, c.Y)
		}
		seen[c] = struct{}{}

		if i > 0 && directionOf(p[i-1], c) == "" {
			return fmt.Errorf("%w: step %d is not adjacent to step %d", ErrInvalidPath, i, i-1)
		}
	}
	return nil
}

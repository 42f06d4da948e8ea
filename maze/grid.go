/*
Package maze turns a textual maze into a navigable grid and finds a route
between its entry and exit.

Walls are drawn with '+', '-' and '|', open floor with a blank space. The entry
is the topmost open cell of the first column and the exit is the bottom-most
open cell of the last column. Routes are found with a depth-first backtracking
search whose neighbor order is fixed, so the same input always yields the same
path.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput        = errors.New("malformed maze input")
	ErrUnclassifiedCharacter = fmt.Errorf("%w: unclassified character", ErrMalformedInput)
)

// Grid is a rectangular Wall/Open classification of a text maze.
// It is read-only once built.
type Grid struct {
	width  int
	height int
	cells  [][]CellKind
}

// Build parses rows into a Grid. The width is taken from the first row.
// Rows shorter than the width leave their trailing cells unclassified,
// rows longer than the width are rejected.
func Build(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedInput)
	}
	if len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: first row is empty", ErrMalformedInput)
	}

	g := &Grid{
		width:  len(rows[0]),
		height: len(rows),
		cells:  make([][]CellKind, len(rows)),
	}

	for y, row := range rows {
		if len(row) > g.width {
			return nil, fmt.Errorf("%w: row %d has length %d, want at most %d", ErrMalformedInput, y, len(row), g.width)
		}

		g.cells[y] = make([]CellKind, g.width)
		for x, ch := range row {
			kind, ok := kindOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnclassifiedCharacter, ch, x, y)
			}
			g.cells[y][x] = kind
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// inBounds reports whether c lies inside [0,width) x [0,height).
func (g *Grid) inBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsOpen reports whether c is inside the grid and classified Open.
func (g *Grid) IsOpen(c Coordinate) bool {
	return g.inBounds(c) && g.cells[c.Y][c.X] == Open
}

// Kind returns the classification at c. The boolean is false when c is out of
// bounds or was never classified.
func (g *Grid) Kind(c Coordinate) (CellKind, bool) {
	if !g.inBounds(c) || g.cells[c.Y][c.X] == unclassified {
		return unclassified, false
	}
	return g.cells[c.Y][c.X], true
}

// Walls lists every wall cell in row-major order.
func (g *Grid) Walls() []Coordinate {
	walls := make([]Coordinate, 0)
	for y, row := range g.cells {
		for x, kind := range row {
			if kind == Wall {
				walls = append(walls, Coordinate{X: x, Y: y})
			}
		}
	}
	return walls
}

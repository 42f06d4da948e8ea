/*
Package generator builds random perfect mazes with Wilson's algorithm and
renders them in the '+', '-', '|' text format understood by package maze.

Every rendered maze has one gap in its left border (the entry) and one gap in
its right border (the exit). A perfect maze has exactly one route between any
two cells, so generated mazes are always solvable.
*/
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	maxMazeDimension = 50
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidOpening    = errors.New("opening row out of range")
)

// Maze is a rectangular grid of cells with walls.
type Maze struct {
	Width    int       // Width of the maze (number of columns)
	Height   int       // Height of the maze (number of rows)
	Grid     [][]*Cell // 2D grid of cells forming the maze
	EntryRow int       // Cell row whose west border is open
	ExitRow  int       // Cell row whose east border is open

	rng *rand.Rand
}

// Option configures maze generation.
type Option func(*options)

type options struct {
	seed     int64
	entryRow int
	exitRow  int
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithEntryRow sets the cell row of the entry gap.
func WithEntryRow(row int) Option {
	return func(o *options) {
		o.entryRow = row
	}
}

// WithExitRow sets the cell row of the exit gap.
func WithExitRow(row int) Option {
	return func(o *options) {
		o.exitRow = row
	}
}

// New initializes a new maze of the given dimensions and generates its layout.
// The entry defaults to the first row and the exit to the last one.
func New(width, height int, opts ...Option) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension {
		return nil, fmt.Errorf("%w: %dx%d, each side must be in [1,%d]", ErrInvalidDimensions, width, height, maxMazeDimension)
	}

	o := &options{
		seed:     time.Now().UnixNano(),
		entryRow: 0,
		exitRow:  height - 1,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.entryRow < 0 || o.entryRow >= height || o.exitRow < 0 || o.exitRow >= height {
		return nil, fmt.Errorf("%w: entry %d, exit %d, height %d", ErrInvalidOpening, o.entryRow, o.exitRow, height)
	}

	grid := make([][]*Cell, height)
	for i := range grid {
		grid[i] = make([]*Cell, width)
		for j := range grid[i] {
			grid[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	m := &Maze{
		Width:    width,
		Height:   height,
		Grid:     grid,
		EntryRow: o.entryRow,
		ExitRow:  o.exitRow,
		rng:      rand.New(rand.NewSource(o.seed)),
	}
	m.generateMaze()
	return m, nil
}

// randomCellPosition generates a random position within the maze.
func (m *Maze) randomCellPosition() CellPosition {
	return CellPosition{Row: m.rng.Intn(m.Height), Col: m.rng.Intn(m.Width)}
}

// randomUnvisitedCellPosition selects a random position that has not been visited.
func (m *Maze) randomUnvisitedCellPosition(visited map[CellPosition]struct{}) CellPosition {
	for {
		pos := m.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors finds all in-bound moves from a given cell position.
func (m *Maze) neighbors(pos CellPosition) []Move {
	var result []Move
	for _, dir := range directions {
		neighbor := CellPosition{Row: pos.Row + dir.delta.Row, Col: pos.Col + dir.delta.Col}
		if neighbor.Row >= 0 && neighbor.Row < m.Height && neighbor.Col >= 0 && neighbor.Col < m.Width {
			result = append(result, Move{From: pos, To: neighbor, Direction: dir.name})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells in the specified direction.
func (m *Maze) openWall(move Move) {
	from := m.Grid[move.From.Row][move.From.Col]
	to := m.Grid[move.To.Row][move.To.Col]

	switch move.Direction {
	case "North":
		from.NorthWall = false
		to.SouthWall = false
	case "South":
		from.SouthWall = false
		to.NorthWall = false
	case "East":
		from.EastWall = false
		to.WestWall = false
	case "West":
		from.WestWall = false
		to.EastWall = false
	}
}

// randomWalk walks from an unvisited cell until it hits the visited set,
// remembering the last exit taken from every cell on the way. Following the
// last exits erases the loops of the walk.
func (m *Maze) randomWalk(visited map[CellPosition]struct{}) (CellPosition, map[CellPosition]Move) {
	start := m.randomUnvisitedCellPosition(visited)
	exits := make(map[CellPosition]Move)
	cell := start

	for {
		neighbors := m.neighbors(cell)
		randomNeighbor := neighbors[m.rng.Intn(len(neighbors))]
		exits[cell] = randomNeighbor
		if _, included := visited[randomNeighbor.To]; included {
			break
		}
		cell = randomNeighbor.To
	}

	return start, exits
}

// generateMaze carves a spanning tree using Wilson's algorithm.
func (m *Maze) generateMaze() {
	visited := make(map[CellPosition]struct{})
	visited[m.randomCellPosition()] = struct{}{}

	for len(visited) < m.Width*m.Height {
		start, exits := m.randomWalk(visited)
		for cell := start; ; {
			move := exits[cell]
			m.openWall(move)
			visited[cell] = struct{}{}
			if _, done := visited[move.To]; done {
				break
			}
			cell = move.To
		}
	}
}

// Rows renders the maze as text, one string per line, with the entry and exit
// gaps cut into the outer border.
func (m *Maze) Rows() []string {
	rows := make([]string, 0, 2*m.Height+1)

	// Top boundary
	rows = append(rows, "+"+strings.Repeat("---+", m.Width))

	for row := 0; row < m.Height; row++ {
		// Cell rows
		var cellRow strings.Builder
		if row == m.EntryRow {
			cellRow.WriteString(" ")
		} else {
			cellRow.WriteString("|")
		}
		for col := 0; col < m.Width; col++ {
			cellRow.WriteString("   ")
			switch {
			case col == m.Width-1 && row == m.ExitRow:
				cellRow.WriteString(" ")
			case m.Grid[row][col].EastWall:
				cellRow.WriteString("|")
			default:
				cellRow.WriteString(" ")
			}
		}
		rows = append(rows, cellRow.String())

		// Wall rows
		var wallRow strings.Builder
		wallRow.WriteString("+")
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col].SouthWall {
				wallRow.WriteString("---+")
			} else {
				wallRow.WriteString("   +")
			}
		}
		rows = append(rows, wallRow.String())
	}

	return rows
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return strings.Join(m.Rows(), "\n") + "\n"
}

package generator

// Cell represents a single cell in a maze grid with a wall on each side.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Move represents a movement from one cell to another in a specific direction.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction string       // Direction of the move (North, South, East, West)
}

// direction pairs a name with its offset. Kept as a slice so that walks are
// reproducible for a given seed.
type direction struct {
	name  string
	delta CellPosition
}

var directions = []direction{
	{name: "North", delta: CellPosition{Row: -1, Col: 0}},
	{name: "South", delta: CellPosition{Row: 1, Col: 0}},
	{name: "East", delta: CellPosition{Row: 0, Col: 1}},
	{name: "West", delta: CellPosition{Row: 0, Col: -1}},
}

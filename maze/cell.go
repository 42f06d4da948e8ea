package maze

// CellKind classifies a single grid position.
type CellKind int

const (
	unclassified CellKind = iota // never written by the parser; not navigable
	Wall                         // Wall blocks traversal.
	Open                         // Open is navigable floor.
)

// String returns a readable name for the kind.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	default:
		return "Unclassified"
	}
}

// Coordinate is a zero-based (column, row) grid position.
type Coordinate struct {
	X int `json:"x" bson:"x"` // Column index
	Y int `json:"y" bson:"y"` // Row index
}

// Add returns the coordinate offset by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// kindOf maps a maze-drawing glyph to its cell kind.
func kindOf(ch rune) (CellKind, bool) {
	switch ch {
	case '+', '-', '|':
		return Wall, true
	case ' ':
		return Open, true
	default:
		return unclassified, false
	}
}

package maze

// offsets is the neighbor exploration order: up, down, left, right.
// Changing it changes which path is returned.
var offsets = [4]Coordinate{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// search holds the state of one Search call.
type search struct {
	grid    *Grid
	end     Coordinate
	path    Path
	visited map[Coordinate]struct{}
}

// Search walks the grid depth-first from start and returns the first route to
// end it discovers, start and end included. Dead-end branches are popped on
// the way back. An empty path means end is unreachable.
func Search(g *Grid, start, end Coordinate) Path {
	s := &search{
		grid:    g,
		end:     end,
		visited: make(map[Coordinate]struct{}),
	}

	if !s.walk(start) {
		return Path{}
	}
	return s.path
}

// walk explores from current and reports whether end was reached.
// Cells stay visited after backtracking.
func (s *search) walk(current Coordinate) bool {
	if current == s.end {
		s.path = append(s.path, current)
		return true
	}

	s.visited[current] = struct{}{}

	for _, d := range offsets {
		next := current.Add(d)
		if !s.grid.IsOpen(next) {
			continue
		}
		if _, seen := s.visited[next]; seen {
			continue
		}

		s.path = append(s.path, current)
		if s.walk(next) {
			return true
		}
	}

	// Drop the step that led here.
	if len(s.path) > 0 {
		s.path = s.path[:len(s.path)-1]
	}
	return false
}

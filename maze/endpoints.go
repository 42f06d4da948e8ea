package maze

// Endpoints holds the start and end of a maze. HasStart and HasEnd are false
// when no open cell exists in the corresponding column.
type Endpoints struct {
	Start    Coordinate `json:"start"`
	End      Coordinate `json:"end"`
	HasStart bool       `json:"has_start"`
	HasEnd   bool       `json:"has_end"`
}

// Defined reports whether both endpoints were located.
func (e Endpoints) Defined() bool {
	return e.HasStart && e.HasEnd
}

// Locate scans the grid top-to-bottom, left-to-right. The first open cell in
// column 0 becomes the start; every open cell in the last column overwrites
// the end, so the bottom-most one is kept.
func Locate(g *Grid) Endpoints {
	var e Endpoints
	last := g.width - 1

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coordinate{X: x, Y: y}
			if !g.IsOpen(c) {
				continue
			}
			if x == 0 && !e.HasStart {
				e.Start = c
				e.HasStart = true
			}
			if x == last {
				e.End = c
				e.HasEnd = true
			}
		}
	}

	return e
}

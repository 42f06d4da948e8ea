package maze

import (
	"errors"
	"fmt"
	"io"
	"log"
)

var ErrMazeTooLarge = errors.New("maze exceeds the allowed cell count")

// Status tells apart the outcomes of a solve that did not fail on input.
type Status int

const (
	StatusSolved            Status = iota // A path connects start and end.
	StatusUndefinedEndpoint               // Start or end could not be located.
	StatusUnreachable                     // Both endpoints exist but are not connected.
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUndefinedEndpoint:
		return "undefined_endpoint"
	case StatusUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "solved":
		*s = StatusSolved
	case "undefined_endpoint":
		*s = StatusUndefinedEndpoint
	case "unreachable":
		*s = StatusUnreachable
	default:
		return fmt.Errorf("unknown status %q", b)
	}
	return nil
}

// Solution is the plain-data result of a solve.
type Solution struct {
	Endpoints
	Path   Path         `json:"path"`
	Walls  []Coordinate `json:"walls"`
	Status Status       `json:"status"`
}

// Solver composes Build, Locate and Search.
type Solver struct {
	maxCells int
	logger   *log.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxCells rejects grids with more than n cells. Zero means no limit.
func WithMaxCells(n int) Option {
	return func(s *Solver) {
		s.maxCells = n
	}
}

// WithLogger sets the logger used for solve summaries.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		s.logger = l
	}
}

// NewSolver creates a Solver. Without options it has no size limit and
// discards its logs.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve parses rows, locates the endpoints and searches for a path.
// Only malformed or oversized input fails; "no route" outcomes are reported through
// Solution.Status with an empty path.
func (s *Solver) Solve(rows []string) (*Solution, error) {
	g, err := s.Parse(rows)
	if err != nil {
		return nil, err
	}
	return s.SolveGrid(g), nil
}

// Parse builds the grid and enforces the solver's size limit.
func (s *Solver) Parse(rows []string) (*Grid, error) {
	g, err := Build(rows)
	if err != nil {
		return nil, err
	}

	if s.maxCells > 0 && g.Width()*g.Height() > s.maxCells {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrMazeTooLarge, g.Width(), g.Height(), s.maxCells)
	}
	return g, nil
}

// SolveGrid runs endpoint location and search on an already built grid.
func (s *Solver) SolveGrid(g *Grid) *Solution {
	sol := &Solution{
		Endpoints: Locate(g),
		Path:      Path{},
		Walls:     g.Walls(),
	}

	switch {
	case !sol.Defined():
		sol.Status = StatusUndefinedEndpoint
	default:
		sol.Path = Search(g, sol.Start, sol.End)
		if len(sol.Path) == 0 {
			sol.Status = StatusUnreachable
		}
	}

	s.logger.Printf("solved %dx%d maze: status=%s steps=%d", g.Width(), g.Height(), sol.Status, len(sol.Path))
	return sol
}

// Solve runs a default Solver.
func Solve(rows []string) (*Solution, error) {
	return NewSolver().Solve(rows)
}

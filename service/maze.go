package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/generator"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

// MazeService solves mazes through a shared solution cache and stores mazes
// in a repository.
type MazeService struct {
	solver *maze.Solver
	cache  i.SolutionCache
	repo   i.MazeRepo
	logger *log.Logger
}

// Config holds the dependencies of a MazeService. Cache and Repo may be nil;
// without a cache every call solves, without a repo Save and the ID lookups fail.
type Config struct {
	Solver *maze.Solver
	Cache  i.SolutionCache
	Repo   i.MazeRepo
	Logger *log.Logger
}

// NewMazeService creates a MazeService.
func NewMazeService(c *Config) (*MazeService, error) {
	if c == nil {
		c = &Config{}
	}

	s := &MazeService{
		solver: c.Solver,
		cache:  c.Cache,
		repo:   c.Repo,
		logger: c.Logger,
	}
	if s.solver == nil {
		s.solver = maze.NewSolver()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	return s, nil
}

// Digest identifies a maze by the content of its rows.
func Digest(rows []string) string {
	sum := sha256.Sum256([]byte(strings.Join(rows, "\n")))
	return hex.EncodeToString(sum[:])
}

// Solve returns the solution of rows, from the cache when possible.
// Rows are parsed before the cache is consulted, so bad input never takes a lock.
func (s *MazeService) Solve(ctx context.Context, rows []string) (*maze.Solution, error) {
	g, err := s.solver.Parse(rows)
	if err != nil {
		return nil, err
	}
	if s.cache == nil {
		return s.solver.SolveGrid(g), nil
	}

	digest := Digest(rows)
	if sol, ok := s.cached(ctx, digest, g); ok {
		return sol, nil
	}

	unlock, err := s.cache.Lock(ctx, digest)
	if err != nil {
		s.logger.Printf("%s[ERROR]%s locking %s: %v", config.LogErrorColor, config.LogColorReset, digest, err)
	} else {
		defer unlock()

		// Another instance may have solved it while we waited.
		if sol, ok := s.cached(ctx, digest, g); ok {
			return sol, nil
		}
	}

	sol := s.solver.SolveGrid(g)
	if err := s.cache.Set(ctx, digest, sol); err != nil {
		s.logger.Printf("%s[ERROR]%s caching %s: %v", config.LogErrorColor, config.LogColorReset, digest, err)
	}
	return sol, nil
}

// cached looks up digest. Cache failures other than a miss, and cached paths
// that do not fit g, are logged and treated as a miss.
func (s *MazeService) cached(ctx context.Context, digest string, g *maze.Grid) (*maze.Solution, bool) {
	sol, err := s.cache.Get(ctx, digest)
	if err != nil {
		if !errors.Is(err, dmn.ErrCacheMiss) {
			s.logger.Printf("%s[ERROR]%s reading cache %s: %v", config.LogErrorColor, config.LogColorReset, digest, err)
		}
		return nil, false
	}

	if err := sol.Path.Validate(g); err != nil {
		s.logger.Printf("%s[ERROR]%s discarding cached solution %s: %v", config.LogErrorColor, config.LogColorReset, digest, err)
		return nil, false
	}
	return sol, true
}

// Generate builds a random maze with the given seed and solves it.
func (s *MazeService) Generate(ctx context.Context, width, height int, seed int64) ([]string, *maze.Solution, error) {
	m, err := generator.New(width, height, generator.WithSeed(seed))
	if err != nil {
		return nil, nil, err
	}

	rows := m.Rows()
	sol, err := s.Solve(ctx, rows)
	if err != nil {
		return nil, nil, err
	}
	return rows, sol, nil
}

// Save validates rows and stores them under a new ID.
func (s *MazeService) Save(ctx context.Context, rows []string) (uuid.UUID, error) {
	if s.repo == nil {
		return uuid.Nil, errors.New("maze repository not configured")
	}

	g, err := s.solver.Parse(rows)
	if err != nil {
		return uuid.Nil, err
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Rows:      rows,
		Width:     g.Width(),
		Height:    g.Height(),
		Digest:    Digest(rows),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return uuid.Nil, err
	}

	s.logger.Printf("stored maze %s (%dx%d)", record.ID, record.Width, record.Height)
	return record.ID, nil
}

// ByID returns a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	if s.repo == nil {
		return nil, dmn.ErrMazeNotFound
	}
	return s.repo.ByID(ctx, id)
}

// SolveByID loads a stored maze and solves it.
func (s *MazeService) SolveByID(ctx context.Context, id uuid.UUID) (*maze.Solution, error) {
	record, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Solve(ctx, record.Rows)
}

package maze

import (
	"bytes"
	"encoding/json"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	t.Run("solved corridor", func(t *testing.T) {
		sol, err := Solve([]string{
			"+-+-+",
			"     ",
			"+-+-+",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusSolved, sol.Status)
		assert.Equal(t, Coordinate{X: 0, Y: 1}, sol.Start)
		assert.Equal(t, Coordinate{X: 4, Y: 1}, sol.End)
		assert.Equal(t, Path{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}}, sol.Path)
		assert.Len(t, sol.Walls, 10)
		assert.Equal(t, Coordinate{X: 0, Y: 0}, sol.Walls[0])
		assert.Equal(t, Coordinate{X: 4, Y: 2}, sol.Walls[9])
	})

	t.Run("undefined endpoint", func(t *testing.T) {
		sol, err := Solve([]string{
			"+-+",
			"|  ",
			"+-+",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusUndefinedEndpoint, sol.Status)
		assert.Empty(t, sol.Path)
	})

	t.Run("unreachable", func(t *testing.T) {
		sol, err := Solve([]string{
			"+++",
			" | ",
			"+++",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusUnreachable, sol.Status)
		assert.Empty(t, sol.Path)
		assert.True(t, sol.Defined())
	})

	t.Run("malformed input aborts", func(t *testing.T) {
		sol, err := Solve(nil)
		assert.ErrorIs(t, err, ErrMalformedInput)
		assert.Nil(t, sol)
	})

	t.Run("repeated solves are identical", func(t *testing.T) {
		rows := []string{
			"+--+",
			"    ",
			"+  +",
			"+--+",
		}
		first, err := Solve(rows)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := Solve(rows)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})
}

func TestSolverOptions(t *testing.T) {
	rows := []string{
		"+-+-+",
		"     ",
		"+-+-+",
	}

	t.Run("max cells", func(t *testing.T) {
		_, err := NewSolver(WithMaxCells(14)).Solve(rows)
		assert.ErrorIs(t, err, ErrMazeTooLarge)

		_, err = NewSolver(WithMaxCells(15)).Solve(rows)
		assert.NoError(t, err)
	})

	t.Run("logs a summary", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := NewSolver(WithLogger(log.New(&buf, "", 0))).Solve(rows)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "status=solved steps=5")
	})
}

func TestSolutionJSON(t *testing.T) {
	sol, err := Solve([]string{"  "})
	require.NoError(t, err)

	b, err := json.Marshal(sol)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"start": {"x": 0, "y": 0},
		"end": {"x": 1, "y": 0},
		"has_start": true,
		"has_end": true,
		"path": [{"x": 0, "y": 0}, {"x": 1, "y": 0}],
		"walls": [],
		"status": "solved"
	}`, string(b))

	var decoded Solution
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, *sol, decoded)
}

func TestPathMoves(t *testing.T) {
	p := Path{{0, 1}, {1, 1}, {1, 2}, {1, 1}, {0, 1}}
	moves := p.Moves()
	require.Len(t, moves, 4)

	var dirs []string
	for _, m := range moves {
		dirs = append(dirs, m.Direction)
	}
	assert.Equal(t, []string{"East", "South", "North", "West"}, dirs)
	assert.Equal(t, Coordinate{X: 1, Y: 2}, moves[1].To)

	assert.Empty(t, Path{{0, 0}}.Moves())
	assert.Empty(t, Path{}.Moves())
}

func TestPathValidate(t *testing.T) {
	g := mustBuild(t,
		"+--+",
		"    ",
		"+  +",
		"+--+",
	)

	assert.NoError(t, Path{{0, 1}, {1, 1}, {1, 2}}.Validate(g))
	assert.ErrorIs(t, Path{{0, 1}, {0, 0}}.Validate(g), ErrInvalidPath)
	assert.ErrorIs(t, Path{{0, 1}, {2, 1}}.Validate(g), ErrInvalidPath)
	assert.ErrorIs(t, Path{{0, 1}, {1, 1}, {0, 1}}.Validate(g), ErrInvalidPath)
	assert.ErrorIs(t, Path{{1, 1}, {2, 2}}.Validate(g), ErrInvalidPath)

	err := Path{{-1, 1}, {0, 1}}.Validate(g)
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.ErrorContains(t, err, "outside the maze")

	err = Path{{0, 0}}.Validate(g)
	assert.ErrorContains(t, err, "not open")
}

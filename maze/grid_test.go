package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("classifies walls and floor", func(t *testing.T) {
		g, err := Build([]string{
			"+-+",
			"| |",
			"+-+",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, g.Width())
		assert.Equal(t, 3, g.Height())

		assert.True(t, g.IsOpen(Coordinate{X: 1, Y: 1}))
		for _, c := range []Coordinate{{0, 0}, {1, 0}, {0, 1}, {2, 1}, {2, 2}} {
			assert.False(t, g.IsOpen(c), "expected wall at %v", c)
			kind, ok := g.Kind(c)
			assert.True(t, ok)
			assert.Equal(t, Wall, kind)
		}
		assert.Len(t, g.Walls(), 8)
		assert.NotContains(t, g.Walls(), Coordinate{X: 1, Y: 1})
	})

	t.Run("out of bounds is never open", func(t *testing.T) {
		g, err := Build([]string{"   ", "   "})
		require.NoError(t, err)

		for _, c := range []Coordinate{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}} {
			assert.False(t, g.IsOpen(c), "expected %v out of bounds", c)
			_, ok := g.Kind(c)
			assert.False(t, ok)
		}
	})

	t.Run("short rows leave cells unclassified", func(t *testing.T) {
		g, err := Build([]string{
			"     ",
			"  ",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, g.Width())

		assert.True(t, g.IsOpen(Coordinate{X: 1, Y: 1}))
		assert.False(t, g.IsOpen(Coordinate{X: 2, Y: 1}))
		assert.False(t, g.IsOpen(Coordinate{X: 4, Y: 1}))

		_, ok := g.Kind(Coordinate{X: 4, Y: 1})
		assert.False(t, ok)
	})

	t.Run("empty input is malformed", func(t *testing.T) {
		_, err := Build(nil)
		assert.ErrorIs(t, err, ErrMalformedInput)

		_, err = Build([]string{})
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("empty first row is malformed", func(t *testing.T) {
		_, err := Build([]string{"", "+-+"})
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("row wider than the first is malformed", func(t *testing.T) {
		_, err := Build([]string{"+-+", "|  |"})
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("unknown characters are rejected", func(t *testing.T) {
		for _, row := range []string{"+x+", "+\t+", "+.+", "+#+"} {
			_, err := Build([]string{"+-+", row})
			require.Error(t, err, "row %q", row)
			assert.True(t, errors.Is(err, ErrUnclassifiedCharacter))
			assert.True(t, errors.Is(err, ErrMalformedInput))
		}
	})
}

func TestLocate(t *testing.T) {
	t.Run("corridor endpoints", func(t *testing.T) {
		g, err := Build([]string{
			"+-+-+-+",
			"       ",
			"+-+-+-+",
		})
		require.NoError(t, err)

		e := Locate(g)
		assert.True(t, e.Defined())
		assert.Equal(t, Coordinate{X: 0, Y: 1}, e.Start)
		assert.Equal(t, Coordinate{X: 6, Y: 1}, e.End)
	})

	t.Run("first start wins and last end wins", func(t *testing.T) {
		g, err := Build([]string{
			" ++",
			"++ ",
			" ++",
			"++ ",
			"+++",
		})
		require.NoError(t, err)

		e := Locate(g)
		assert.Equal(t, Coordinate{X: 0, Y: 0}, e.Start)
		assert.Equal(t, Coordinate{X: 2, Y: 3}, e.End)
	})

	t.Run("start at the origin is found", func(t *testing.T) {
		g, err := Build([]string{
			"  ",
			"++",
		})
		require.NoError(t, err)

		e := Locate(g)
		assert.True(t, e.HasStart)
		assert.Equal(t, Coordinate{X: 0, Y: 0}, e.Start)
	})

	t.Run("missing endpoints are reported", func(t *testing.T) {
		g, err := Build([]string{
			"+++",
			"+  ",
			"+++",
		})
		require.NoError(t, err)

		e := Locate(g)
		assert.False(t, e.HasStart)
		assert.True(t, e.HasEnd)
		assert.False(t, e.Defined())
	})

	t.Run("unclassified cells in the last column are ignored", func(t *testing.T) {
		g, err := Build([]string{
			"   ",
			"  ",
		})
		require.NoError(t, err)

		e := Locate(g)
		assert.Equal(t, Coordinate{X: 2, Y: 0}, e.End)
		assert.Equal(t, Coordinate{X: 0, Y: 0}, e.Start)
	})
}

package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	path := maze.Path{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 1}}
	steps := Steps(path)
	require.Len(t, steps, len(path))

	var facings []Facing
	for i, s := range steps {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, path[i], s.Position)
		facings = append(facings, s.Facing)
	}
	assert.Equal(t, []Facing{FacingRight, FacingRight, FacingDown, FacingLeft, FacingUp, FacingUp}, facings)

	assert.True(t, steps[len(steps)-1].Last)
	assert.False(t, steps[0].Last)
	assert.Empty(t, Steps(maze.Path{}))
}

func TestPlay(t *testing.T) {
	path := maze.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

	t.Run("emits every step in order", func(t *testing.T) {
		var got []maze.Coordinate
		err := NewPlayer(time.Millisecond).Play(context.Background(), path, func(s Step) error {
			got = append(got, s.Position)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []maze.Coordinate(path), got)
	})

	t.Run("stops on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		n := 0
		err := NewPlayer(time.Hour).Play(ctx, path, func(s Step) error {
			n++
			cancel()
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, n)
	})

	t.Run("stops on emit error", func(t *testing.T) {
		boom := errors.New("boom")
		err := NewPlayer(time.Millisecond).Play(context.Background(), path, func(s Step) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty path", func(t *testing.T) {
		err := NewPlayer(0).Play(context.Background(), maze.Path{}, func(s Step) error {
			t.Fatal("unexpected step")
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("default delay", func(t *testing.T) {
		assert.Equal(t, DefaultDelay, NewPlayer(-1).Delay())
	})
}

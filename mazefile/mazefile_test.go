package mazefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("strips line endings and trailing blank lines", func(t *testing.T) {
		rows, err := Read(strings.NewReader("+-+\r\n   \r\n+-+\r\n\r\n\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"+-+", "   ", "+-+"}, rows)
	})

	t.Run("empty input is malformed", func(t *testing.T) {
		_, err := Read(strings.NewReader("\n\n"))
		assert.ErrorIs(t, err, maze.ErrMalformedInput)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	content := "+-+-+\n     \n+-+-+\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rows, err := Load(path)
	require.NoError(t, err)

	sol, err := maze.Solve(rows)
	require.NoError(t, err)
	assert.Equal(t, maze.StatusSolved, sol.Status)
	assert.Len(t, sol.Path, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOverlay(t *testing.T) {
	rows := []string{
		"+-+-+",
		"     ",
		"+-+-+",
	}
	path := maze.Path{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 9, Y: 9}}

	got := Overlay(rows, path, '.')
	assert.Equal(t, []string{"+-+-+", "...  ", "+-+-+"}, got)
	assert.Equal(t, "     ", rows[1], "input rows must not change")
}

// Package mazefile reads maze rows from text files.
package mazefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// Read returns the lines of r with line endings removed. Trailing empty lines
// are dropped; empty lines inside the maze are kept.
func Read(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		rows = append(rows, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: file has no rows", maze.ErrMalformedInput)
	}

	return rows, nil
}

// Load reads the maze rows stored at path.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Overlay returns a copy of rows with every cell of path replaced by mark.
// Cells outside rows are ignored.
func Overlay(rows []string, path maze.Path, mark byte) []string {
	out := make([][]byte, len(rows))
	for y, row := range rows {
		out[y] = []byte(row)
	}

	for _, c := range path {
		if c.Y < 0 || c.Y >= len(out) || c.X < 0 || c.X >= len(out[c.Y]) {
			continue
		}
		out[c.Y][c.X] = mark
	}

	result := make([]string, len(out))
	for y, row := range out {
		result[y] = string(row)
	}
	return result
}

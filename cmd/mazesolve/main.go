// Command mazesolve solves a maze read from a file or generated on the fly and
// prints it with the route marked.
//
// Exit status is 1 for unreadable or malformed input and 2 when the maze has
// no route from entry to exit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/generator"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/mazefile"
)

const (
	exitOK = iota
	exitBadInput
	exitNoPath
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "path of a maze text file")
	generate := fs.Bool("generate", false, "generate a maze instead of reading one")
	width := fs.Int("width", 10, "generated maze width in cells")
	height := fs.Int("height", 10, "generated maze height in cells")
	seed := fs.Int64("seed", time.Now().UnixNano(), "seed for the generator")
	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}

	rows, err := readRows(*file, *generate, *width, *height, *seed)
	if err != nil {
		fmt.Fprintf(stderr, "mazesolve: %v\n", err)
		return exitBadInput
	}

	sol, err := maze.Solve(rows)
	if err != nil {
		fmt.Fprintf(stderr, "mazesolve: %v\n", err)
		return exitBadInput
	}

	if sol.Status != maze.StatusSolved {
		for _, row := range rows {
			fmt.Fprintln(stdout, row)
		}
		fmt.Fprintf(stderr, "mazesolve: no route: %s\n", sol.Status)
		return exitNoPath
	}

	for _, row := range mazefile.Overlay(rows, sol.Path, '.') {
		fmt.Fprintln(stdout, row)
	}
	for _, c := range sol.Path {
		fmt.Fprintf(stdout, "(%d,%d)\n", c.X, c.Y)
	}
	return exitOK
}

func readRows(file string, generate bool, width, height int, seed int64) ([]string, error) {
	switch {
	case generate && file != "":
		return nil, errors.New("-file and -generate are mutually exclusive")
	case generate:
		m, err := generator.New(width, height, generator.WithSeed(seed))
		if err != nil {
			return nil, err
		}
		return m.Rows(), nil
	case file != "":
		return mazefile.Load(file)
	default:
		return mazefile.Read(os.Stdin)
	}
}

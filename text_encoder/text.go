// Package text implements the textual maze layout encoding: one row
// per line, 'S' for the entrance, 'E' for the exit, '0' for passable
// cells and '1' for walls. All rows must have the same length and the
// layout must contain exactly one 'S' and one 'E'.
package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/maze-api/maze"
)

var (
	// ErrEmptyLayout is returned when the input contains no rows.
	ErrEmptyLayout = errors.New("layout is empty")
	// ErrUnknownChar is returned for any character outside S, E, 0, 1.
	ErrUnknownChar = errors.New("unknown layout character")
	// ErrMissingMarker is returned when the layout lacks an 'S' or an
	// 'E', or contains more than one of either.
	ErrMissingMarker = errors.New("layout must contain exactly one 'S' and one 'E'")
)

// Unmarshal parses a textual layout into a Grid. Structural problems
// (ragged rows, undersized grids, markers on impossible cells) surface
// as the maze package's validation errors.
func Unmarshal(data []byte) (*maze.Grid, error) {
	raw := strings.ReplaceAll(string(data), "\r\n", "\n")
	raw = strings.Trim(raw, "\n")
	if raw == "" {
		return nil, ErrEmptyLayout
	}
	lines := strings.Split(raw, "\n")

	cells := make([][]maze.Cell, len(lines))
	var entrances, exits []maze.Coordinate
	for y, line := range lines {
		cells[y] = make([]maze.Cell, len(line))
		for x, ch := range line {
			switch ch {
			case '0':
				cells[y][x] = maze.Passable
			case '1':
				cells[y][x] = maze.Wall
			case 'S':
				cells[y][x] = maze.Passable
				entrances = append(entrances, maze.Coordinate{X: x, Y: y})
			case 'E':
				cells[y][x] = maze.Passable
				exits = append(exits, maze.Coordinate{X: x, Y: y})
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrUnknownChar, ch, y, x)
			}
		}
	}

	if len(entrances) != 1 || len(exits) != 1 {
		return nil, fmt.Errorf("%w: got %d 'S' and %d 'E'", ErrMissingMarker, len(entrances), len(exits))
	}

	return maze.NewGrid(cells, entrances[0], exits[0])
}

// Marshal renders a Grid in the textual layout format, one row per
// line with a trailing newline.
func Marshal(g *maze.Grid) []byte {
	var out strings.Builder
	entrance, exit := g.Entrance(), g.Exit()
	for y, row := range g.Cells() {
		for x, cell := range row {
			c := maze.Coordinate{X: x, Y: y}
			switch {
			case c == entrance:
				out.WriteByte('S')
			case c == exit:
				out.WriteByte('E')
			case cell == maze.Wall:
				out.WriteByte('1')
			default:
				out.WriteByte('0')
			}
		}
		out.WriteByte('\n')
	}
	return []byte(out.String())
}

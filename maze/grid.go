/*
Package maze provides tools for creating and solving rectangular mazes.

It defines the `Grid` structure, a validated, read-only matrix of
Passable and Wall cells with designated entrance and exit coordinates.

The package includes random maze generation with iterative
depth-first-search carving and shortest-path solving with A*. A Grid is
validated once at construction and never mutated afterwards, so a single
Grid may be shared across concurrent solves without synchronization.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadDimensions is returned when a grid is smaller than 2x2.
	ErrBadDimensions = errors.New("grid dimensions must be at least 2x2")
	// ErrRaggedRows is returned when the rows of a grid are not all
	// the same length.
	ErrRaggedRows = errors.New("grid rows must all have the same length")
	// ErrInvalidBoundary is returned when an entrance or exit
	// coordinate is out of bounds or references a Wall cell.
	ErrInvalidBoundary = errors.New("invalid entrance/exit coordinate")
)

// Grid is a rectangular maze. It is immutable after construction.
type Grid struct {
	width    int
	height   int
	cells    [][]Cell
	entrance Coordinate
	exit     Coordinate
}

// NewGrid constructs a Grid from a cell matrix and its entrance and
// exit coordinates. The matrix must be rectangular and at least 2x2,
// and both entrance and exit must reference in-bounds Passable cells.
// The cells are copied; the caller keeps ownership of the argument.
func NewGrid(cells [][]Cell, entrance, exit Coordinate) (*Grid, error) {
	height := len(cells)
	if height < 2 {
		return nil, fmt.Errorf("%w: height %d", ErrBadDimensions, height)
	}
	width := len(cells[0])
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), width)
		}
	}
	if width < 2 {
		return nil, fmt.Errorf("%w: width %d", ErrBadDimensions, width)
	}

	owned := make([][]Cell, height)
	for y, row := range cells {
		owned[y] = make([]Cell, width)
		copy(owned[y], row)
	}

	g := &Grid{
		width:    width,
		height:   height,
		cells:    owned,
		entrance: entrance,
		exit:     exit,
	}

	// Entrance and exit are validated independently.
	if !g.IsValidMove(entrance) {
		return nil, fmt.Errorf("%w: entrance (%d,%d)", ErrInvalidBoundary, entrance.X, entrance.Y)
	}
	if !g.IsValidMove(exit) {
		return nil, fmt.Errorf("%w: exit (%d,%d)", ErrInvalidBoundary, exit.X, exit.Y)
	}

	return g, nil
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows in the grid.
func (g *Grid) Height() int { return g.height }

// Entrance returns the entrance coordinate.
func (g *Grid) Entrance() Coordinate { return g.entrance }

// Exit returns the exit coordinate.
func (g *Grid) Exit() Coordinate { return g.exit }

// IsValidMove reports whether c is in bounds and references a Passable
// cell.
func (g *Grid) IsValidMove(c Coordinate) bool {
	if c.X < 0 || c.X >= g.width || c.Y < 0 || c.Y >= g.height {
		return false
	}
	return g.cells[c.Y][c.X] == Passable
}

// Cells returns a deep copy of the cell matrix, indexed [y][x].
func (g *Grid) Cells() [][]Cell {
	snapshot := make([][]Cell, g.height)
	for y, row := range g.cells {
		snapshot[y] = make([]Cell, g.width)
		copy(snapshot[y], row)
	}
	return snapshot
}

// String provides a textual representation of the grid, one row per
// line: '#' for walls, '.' for passable cells, 'S' and 'E' for the
// entrance and exit.
func (g *Grid) String() string {
	var output strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coordinate{X: x, Y: y}
			switch {
			case c == g.entrance:
				output.WriteByte('S')
			case c == g.exit:
				output.WriteByte('E')
			case g.cells[y][x] == Wall:
				output.WriteByte('#')
			default:
				output.WriteByte('.')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}

package i

import (
	"github.com/beka-birhanu/maze-api/maze"
	"github.com/google/uuid"
)

// MazeManager creates, stores, and solves mazes for the API layer.
type MazeManager interface {
	// Create generates a new random maze of roughly the requested
	// size (even dimensions are rounded up to the next odd value) and
	// returns its ID together with the maze.
	Create(width, height int) (uuid.UUID, *maze.Grid, error)

	// Import registers an externally supplied maze from its textual
	// layout.
	Import(layout []byte) (uuid.UUID, *maze.Grid, error)

	// Get returns the maze with the given ID.
	Get(id uuid.UUID) (*maze.Grid, error)

	// Solve returns a shortest entrance-to-exit path for the maze
	// with the given ID. A nil path means the maze has no solution.
	Solve(id uuid.UUID) ([]maze.Coordinate, error)
}

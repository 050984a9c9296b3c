// Package mazeapi exposes maze generation, import, and solving over
// HTTP.
package mazeapi

import (
	"strings"

	"github.com/beka-birhanu/maze-api/maze"
	text "github.com/beka-birhanu/maze-api/text_encoder"
	"github.com/google/uuid"
)

// CreateMazeRequest asks for a new random maze of roughly the given
// size. Even dimensions are rounded up to the next odd value; omitted
// dimensions fall back to the configured default.
type CreateMazeRequest struct {
	Width  int `json:"width" binding:"omitempty,min=3"`
	Height int `json:"height" binding:"omitempty,min=3"`
}

// ImportMazeRequest carries a textual maze layout ('S', 'E', '0', '1'
// rows separated by newlines).
type ImportMazeRequest struct {
	Layout string `json:"layout" binding:"required"`
}

// MazeResponse describes a stored maze. Rows use the same textual
// encoding accepted by import.
type MazeResponse struct {
	ID       uuid.UUID       `json:"id"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Entrance maze.Coordinate `json:"entrance"`
	Exit     maze.Coordinate `json:"exit"`
	Rows     []string        `json:"rows"`
}

// SolutionResponse is a shortest entrance-to-exit path. An empty path
// means the maze has no solution.
type SolutionResponse struct {
	ID   uuid.UUID         `json:"id"`
	Path []maze.Coordinate `json:"path"`
}

// newMazeResponse renders a grid into its transport shape.
func newMazeResponse(id uuid.UUID, g *maze.Grid) *MazeResponse {
	encoded := strings.Trim(string(text.Marshal(g)), "\n")
	return &MazeResponse{
		ID:       id,
		Width:    g.Width(),
		Height:   g.Height(),
		Entrance: g.Entrance(),
		Exit:     g.Exit(),
		Rows:     strings.Split(encoded, "\n"),
	}
}

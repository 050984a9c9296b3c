package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/maze-api/maze"
	text "github.com/beka-birhanu/maze-api/text_encoder"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrMazeNotFound is returned for lookups with an unknown maze ID.
	ErrMazeNotFound = errors.New("maze not found")
	// ErrDimensionTooLarge is returned when a requested maze exceeds
	// the configured dimension cap.
	ErrDimensionTooLarge = errors.New("maze dimension exceeds the configured maximum")
)

// MazeManager keeps generated and imported mazes in memory, keyed by
// ID, and runs the solver on demand. Grids are immutable, so reads
// need no copying; the lock only guards the registry map and the
// generator's randomness source.
type MazeManager struct {
	mazes        map[uuid.UUID]*maze.Grid
	generate     func(width, height int) (*maze.Grid, error)
	solve        func(*maze.Grid) []maze.Coordinate
	maxDimension int
	logger       logrus.FieldLogger
	sync.RWMutex
}

// Config holds the dependencies for a MazeManager.
type Config struct {
	Generate     func(width, height int) (*maze.Grid, error)
	Solve        func(*maze.Grid) []maze.Coordinate
	MaxDimension int
	Logger       logrus.FieldLogger
}

// NewMazeManager creates a MazeManager from the given configuration.
func NewMazeManager(c *Config) (*MazeManager, error) {
	if c.Generate == nil || c.Solve == nil {
		return nil, errors.New("maze manager requires a generator and a solver")
	}
	return &MazeManager{
		mazes:        make(map[uuid.UUID]*maze.Grid),
		generate:     c.Generate,
		solve:        c.Solve,
		maxDimension: c.MaxDimension,
		logger:       c.Logger,
	}, nil
}

// nextOdd rounds an even dimension up to the next odd value. The
// generator's parity invariant requires odd sizes; callers ask for a
// rough size and get the nearest valid one.
func nextOdd(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// Create generates, stores, and returns a new random maze.
func (m *MazeManager) Create(width, height int) (uuid.UUID, *maze.Grid, error) {
	width, height = nextOdd(width), nextOdd(height)
	if width > m.maxDimension || height > m.maxDimension {
		return uuid.Nil, nil, fmt.Errorf("%w: %dx%d > %d", ErrDimensionTooLarge, width, height, m.maxDimension)
	}

	m.Lock()
	grid, err := m.generate(width, height)
	if err != nil {
		m.Unlock()
		m.logger.Warnf("generating %dx%d maze: %v", width, height, err)
		return uuid.Nil, nil, err
	}
	id := uuid.New()
	m.mazes[id] = grid
	m.Unlock()

	m.logger.WithFields(logrus.Fields{
		"id":     id,
		"width":  grid.Width(),
		"height": grid.Height(),
	}).Info("maze generated")
	return id, grid, nil
}

// Import parses a textual layout and stores the resulting maze.
func (m *MazeManager) Import(layout []byte) (uuid.UUID, *maze.Grid, error) {
	grid, err := text.Unmarshal(layout)
	if err != nil {
		m.logger.Warnf("importing maze layout: %v", err)
		return uuid.Nil, nil, err
	}

	m.Lock()
	id := uuid.New()
	m.mazes[id] = grid
	m.Unlock()

	m.logger.WithFields(logrus.Fields{
		"id":     id,
		"width":  grid.Width(),
		"height": grid.Height(),
	}).Info("maze imported")
	return id, grid, nil
}

// Get returns the maze with the given ID.
func (m *MazeManager) Get(id uuid.UUID) (*maze.Grid, error) {
	m.RLock()
	grid, ok := m.mazes[id]
	m.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMazeNotFound, id)
	}
	return grid, nil
}

// Solve returns a shortest entrance-to-exit path for the stored maze.
// A nil path with a nil error means the maze has no solution.
func (m *MazeManager) Solve(id uuid.UUID) ([]maze.Coordinate, error) {
	grid, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	// Grids are read-only; solving needs no lock.
	path := m.solve(grid)
	if path == nil {
		m.logger.WithField("id", id).Info("maze has no solution")
	}
	return path, nil
}

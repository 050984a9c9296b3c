package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// placementAttempts bounds the random sampling for each of the two
	// boundary openings. Exhausting it fails the generation; callers
	// may retry with a new seed.
	placementAttempts = 100

	// maxBoundaryWalls is the acceptance threshold for a boundary
	// opening: counting out-of-bounds neighbors as walls, at most
	// this many of the four axis-aligned neighbors may be walls.
	// Edge cells always have one out-of-bounds neighbor and two wall
	// neighbors along the boundary ring, so the threshold admits
	// exactly the cells whose interior neighbor has been carved, and
	// rejects corners outright.
	maxBoundaryWalls = 3
)

var (
	// ErrInvalidDimensions is returned when the requested size is not
	// odd or is below the 3x3 minimum. Rounding even sizes up is the
	// caller's responsibility.
	ErrInvalidDimensions = errors.New("maze dimensions must be odd and at least 3")
	// ErrPlacementExhausted is returned when no acceptable entrance or
	// exit cell was found within the attempt budget.
	ErrPlacementExhausted = errors.New("unable to place entrance/exit")
)

// A side of the grid's outer boundary.
type side int

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)

// directions are the four axis-aligned unit deltas, in the fixed order
// up, down, left, right. Never mutated; shuffling operates on a local
// copy.
var directions = [4]Coordinate{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Generator builds random mazes. Each Generator owns its randomness
// source, so a fixed seed reproduces the same sequence of mazes.
// A Generator is not safe for concurrent use; use one per goroutine.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded with the given value.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces a random maze of the given dimensions. Both must
// be odd and at least 3. The carved interior forms a spanning tree
// over the odd-coordinate cells, so any two passable cells are
// connected by exactly one path. The entrance and exit are placed on
// two distinct random sides of the boundary.
func (g *Generator) Generate(width, height int) (*Grid, error) {
	if width < 3 || height < 3 || width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	g.carve(cells, width, height)

	// Two distinct sides so the openings can never coincide.
	sides := g.rng.Perm(4)
	entrance, err := g.placeOpening(cells, width, height, side(sides[0]))
	if err != nil {
		return nil, err
	}
	exit, err := g.placeOpening(cells, width, height, side(sides[1]))
	if err != nil {
		return nil, err
	}

	cells[entrance.Y][entrance.X] = Passable
	cells[exit.Y][exit.X] = Passable

	return NewGrid(cells, entrance, exit)
}

// carveFrame is one pending cell on the carving stack, together with
// the directions not yet tried from it.
type carveFrame struct {
	cell Coordinate
	dirs [4]Coordinate
	next int
}

// carve runs an iterative randomized depth-first search over the
// odd-coordinate lattice. The explicit stack replaces recursion so
// deep mazes cannot overflow the call stack.
func (g *Generator) carve(cells [][]Cell, width, height int) {
	start := Coordinate{
		X: 2*g.rng.Intn(width/2) + 1,
		Y: 2*g.rng.Intn(height/2) + 1,
	}
	cells[start.Y][start.X] = Passable

	stack := []carveFrame{g.newFrame(start)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		advanced := false
		for top.next < len(top.dirs) {
			dir := top.dirs[top.next]
			top.next++

			target := Coordinate{X: top.cell.X + 2*dir.X, Y: top.cell.Y + 2*dir.Y}
			if target.X < 1 || target.X > width-2 || target.Y < 1 || target.Y > height-2 {
				continue
			}
			if cells[target.Y][target.X] != Wall {
				continue
			}

			// Knock out the wall between the current cell and the
			// target, then descend into the target.
			cells[top.cell.Y+dir.Y][top.cell.X+dir.X] = Passable
			cells[target.Y][target.X] = Passable
			stack = append(stack, g.newFrame(target))
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}

// newFrame builds a carving frame with a freshly shuffled copy of the
// direction set.
func (g *Generator) newFrame(cell Coordinate) carveFrame {
	frame := carveFrame{cell: cell, dirs: directions}
	g.rng.Shuffle(len(frame.dirs), func(i, j int) {
		frame.dirs[i], frame.dirs[j] = frame.dirs[j], frame.dirs[i]
	})
	return frame
}

// placeOpening picks a boundary cell for an entrance or exit on the
// given side. It samples uniformly along the side and accepts the
// first cell open enough to reach the carved interior; the attempt
// budget makes the failure mode an error instead of an unbounded loop.
func (g *Generator) placeOpening(cells [][]Cell, width, height int, s side) (Coordinate, error) {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		c := g.randomBoundaryCell(s, width, height)
		if g.wallNeighbors(cells, width, height, c) <= maxBoundaryWalls {
			return c, nil
		}
	}
	return Coordinate{}, fmt.Errorf("%w: side %d after %d attempts", ErrPlacementExhausted, s, placementAttempts)
}

// randomBoundaryCell samples a uniform cell on the given side.
func (g *Generator) randomBoundaryCell(s side, width, height int) Coordinate {
	switch s {
	case sideTop:
		return Coordinate{X: g.rng.Intn(width), Y: 0}
	case sideRight:
		return Coordinate{X: width - 1, Y: g.rng.Intn(height)}
	case sideBottom:
		return Coordinate{X: g.rng.Intn(width), Y: height - 1}
	default:
		return Coordinate{X: 0, Y: g.rng.Intn(height)}
	}
}

// wallNeighbors counts the axis-aligned neighbors of c that are walls.
// Out-of-bounds neighbors count as walls.
func (g *Generator) wallNeighbors(cells [][]Cell, width, height int, c Coordinate) int {
	count := 0
	for _, dir := range directions {
		n := Coordinate{X: c.X + dir.X, Y: c.Y + dir.Y}
		if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
			count++
			continue
		}
		if cells[n.Y][n.X] == Wall {
			count++
		}
	}
	return count
}

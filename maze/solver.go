package maze

import "container/heap"

// frontierItem is one frontier entry. Stale entries for a cell whose g
// has since improved are left in the heap and skipped on pop.
type frontierItem struct {
	cell Coordinate
	f    int
	g    int
	seq  int
}

// frontier is a min-heap of frontierItems ordered by f, ties broken by
// insertion order so exploration among equal-cost cells is FIFO.
type frontier []frontierItem

func (h frontier) Len() int { return len(h) }
func (h frontier) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h frontier) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontier) Push(x interface{}) {
	*h = append(*h, x.(frontierItem))
}

func (h *frontier) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// manhattan is the A* heuristic: admissible and consistent for
// 4-connected unit-cost grids.
func manhattan(a, b Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Solve computes a shortest 4-connected path from the grid's entrance
// to its exit using A* with the Manhattan heuristic. The returned path
// includes both endpoints. A nil result means no path exists; that is
// a normal outcome for externally supplied grids, not an error.
//
// The path length is always minimal. Among equal-length paths the one
// returned is fixed by the tie-break policy: equal-cost frontier
// entries pop in insertion order, and neighbors are expanded in the
// order up, down, left, right.
func Solve(g *Grid) []Coordinate {
	start, goal := g.Entrance(), g.Exit()

	open := &frontier{}
	heap.Init(open)
	seq := 0
	heap.Push(open, frontierItem{cell: start, f: manhattan(start, goal), g: 0, seq: seq})

	gScore := map[Coordinate]int{start: 0}
	cameFrom := make(map[Coordinate]Coordinate)

	for open.Len() > 0 {
		current := heap.Pop(open).(frontierItem)
		if current.g > gScore[current.cell] {
			// Stale entry superseded by a better path.
			continue
		}
		if current.cell == goal {
			return reconstruct(cameFrom, start, goal)
		}

		for _, dir := range directions {
			neighbor := Coordinate{X: current.cell.X + dir.X, Y: current.cell.Y + dir.Y}
			if !g.IsValidMove(neighbor) {
				continue
			}
			tentative := current.g + 1
			if best, seen := gScore[neighbor]; seen && tentative >= best {
				continue
			}
			gScore[neighbor] = tentative
			cameFrom[neighbor] = current.cell
			seq++
			heap.Push(open, frontierItem{
				cell: neighbor,
				f:    tentative + manhattan(neighbor, goal),
				g:    tentative,
				seq:  seq,
			})
		}
	}

	return nil
}

// reconstruct walks the back-pointers from goal to start and reverses
// the result.
func reconstruct(cameFrom map[Coordinate]Coordinate, start, goal Coordinate) []Coordinate {
	path := []Coordinate{goal}
	for cell := goal; cell != start; {
		cell = cameFrom[cell]
		path = append(path, cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

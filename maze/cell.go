package maze

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Wall is an impassable cell.
	Wall Cell = iota
	// Passable is a traversable cell.
	Passable
)

// Coordinate identifies a cell in the grid. X grows rightward, Y grows
// downward. It is a value type; compare with == and use it directly as
// a map key.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

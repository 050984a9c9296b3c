package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onBoundary reports whether c lies on the outer ring of a grid.
func onBoundary(g *Grid, c Coordinate) bool {
	return c.X == 0 || c.X == g.Width()-1 || c.Y == 0 || c.Y == g.Height()-1
}

func TestGenerator(t *testing.T) {
	t.Run("Reject even dimensions", func(t *testing.T) {
		gen := NewGenerator(1)
		_, err := gen.Generate(4, 5)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
		_, err = gen.Generate(5, 4)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("Reject undersized dimensions", func(t *testing.T) {
		gen := NewGenerator(1)
		_, err := gen.Generate(1, 5)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
		_, err = gen.Generate(5, 1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("Deterministic for a fixed seed", func(t *testing.T) {
		a, err := NewGenerator(42).Generate(11, 9)
		require.NoError(t, err)
		b, err := NewGenerator(42).Generate(11, 9)
		require.NoError(t, err)

		assert.Equal(t, a.Cells(), b.Cells())
		assert.Equal(t, a.Entrance(), b.Entrance())
		assert.Equal(t, a.Exit(), b.Exit())
	})

	t.Run("Entrance and exit are open boundary cells", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			g, err := NewGenerator(seed).Generate(9, 7)
			require.NoError(t, err)

			assert.True(t, g.IsValidMove(g.Entrance()))
			assert.True(t, g.IsValidMove(g.Exit()))
			assert.True(t, onBoundary(g, g.Entrance()))
			assert.True(t, onBoundary(g, g.Exit()))
			assert.NotEqual(t, g.Entrance(), g.Exit())
		}
	})

	t.Run("Entrance and exit are mutually reachable", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			for _, size := range []struct{ w, h int }{{3, 3}, {5, 9}, {21, 21}} {
				g, err := NewGenerator(seed).Generate(size.w, size.h)
				require.NoError(t, err, "seed %d size %dx%d", seed, size.w, size.h)

				path := Solve(g)
				require.NotNil(t, path, "seed %d size %dx%d", seed, size.w, size.h)
				assert.Equal(t, g.Entrance(), path[0])
				assert.Equal(t, g.Exit(), path[len(path)-1])
			}
		}
	})

	t.Run("Every odd-coordinate cell is carved", func(t *testing.T) {
		g, err := NewGenerator(7).Generate(15, 11)
		require.NoError(t, err)

		for y := 1; y < g.Height(); y += 2 {
			for x := 1; x < g.Width(); x += 2 {
				assert.True(t, g.IsValidMove(Coordinate{X: x, Y: y}), "cell (%d,%d)", x, y)
			}
		}
	})

	t.Run("Carved interior is a spanning tree", func(t *testing.T) {
		for seed := int64(0); seed < 5; seed++ {
			t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
				g, err := NewGenerator(seed).Generate(13, 9)
				require.NoError(t, err)

				cells := g.Cells()
				interior := func(c Coordinate) bool {
					return g.IsValidMove(c) && c != g.Entrance() && c != g.Exit()
				}

				// A tree has exactly one fewer adjacency than it has
				// nodes; together with full reachability that rules
				// out cycles.
				nodes, edges := 0, 0
				for y := range cells {
					for x := range cells[y] {
						c := Coordinate{X: x, Y: y}
						if !interior(c) {
							continue
						}
						nodes++
						if interior(Coordinate{X: x + 1, Y: y}) {
							edges++
						}
						if interior(Coordinate{X: x, Y: y + 1}) {
							edges++
						}
					}
				}
				assert.Equal(t, nodes-1, edges)
			})
		}
	})
}

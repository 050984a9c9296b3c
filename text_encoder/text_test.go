package text

import (
	"testing"

	"github.com/beka-birhanu/maze-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	t.Run("Unmarshal then Marshal round trip", func(t *testing.T) {
		layout := "S1000\n01010\n00010\n01110\n0100E\n"

		g, err := Unmarshal([]byte(layout))
		require.NoError(t, err)
		assert.Equal(t, 5, g.Width())
		assert.Equal(t, 5, g.Height())
		assert.Equal(t, maze.Coordinate{X: 0, Y: 0}, g.Entrance())
		assert.Equal(t, maze.Coordinate{X: 4, Y: 4}, g.Exit())

		assert.Equal(t, layout, string(Marshal(g)))
	})

	t.Run("Marker cells are passable", func(t *testing.T) {
		g, err := Unmarshal([]byte("S1\n1E"))
		require.NoError(t, err)
		assert.True(t, g.IsValidMove(g.Entrance()))
		assert.True(t, g.IsValidMove(g.Exit()))
	})

	t.Run("Tolerates CRLF and trailing newlines", func(t *testing.T) {
		g, err := Unmarshal([]byte("S0\r\n0E\r\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, g.Height())
	})

	t.Run("Reject empty layout", func(t *testing.T) {
		_, err := Unmarshal([]byte(""))
		assert.ErrorIs(t, err, ErrEmptyLayout)

		_, err = Unmarshal([]byte("\n\n"))
		assert.ErrorIs(t, err, ErrEmptyLayout)
	})

	t.Run("Reject unknown character", func(t *testing.T) {
		_, err := Unmarshal([]byte("S0\n0X\n0E"))
		assert.ErrorIs(t, err, ErrUnknownChar)
	})

	t.Run("Reject missing entrance", func(t *testing.T) {
		_, err := Unmarshal([]byte("00\n0E"))
		assert.ErrorIs(t, err, ErrMissingMarker)
	})

	t.Run("Reject missing exit", func(t *testing.T) {
		_, err := Unmarshal([]byte("S0\n00"))
		assert.ErrorIs(t, err, ErrMissingMarker)
	})

	t.Run("Reject duplicate markers", func(t *testing.T) {
		_, err := Unmarshal([]byte("SS\n0E"))
		assert.ErrorIs(t, err, ErrMissingMarker)

		_, err = Unmarshal([]byte("SE\n0E"))
		assert.ErrorIs(t, err, ErrMissingMarker)
	})

	t.Run("Reject ragged rows", func(t *testing.T) {
		_, err := Unmarshal([]byte("S00\n0E"))
		assert.ErrorIs(t, err, maze.ErrRaggedRows)
	})

	t.Run("Reject undersized layout", func(t *testing.T) {
		_, err := Unmarshal([]byte("SE"))
		assert.ErrorIs(t, err, maze.ErrBadDimensions)
	})
}

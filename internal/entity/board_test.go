package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell is empty and there is no winner
	assert.Equal(t, 9, board.CountEmpty())
	assert.Equal(t, OutcomeNone, board.Winner())
	assert.False(t, board.HasWinner())
	assert.False(t, board.IsTie())
}

func TestRestoreBoard(t *testing.T) {
	t.Run("Copies a well formed layout", func(t *testing.T) {
		// Given: a persisted layout
		layout := Layout{
			{PlayerX, Empty, PlayerO},
			{Empty, PlayerX, Empty},
			{Empty, Empty, PlayerO},
		}

		// When: the board is restored
		board := RestoreBoard(layout)

		// Then: the grid matches the layout
		assert.Equal(t, layout, board.Layout())
		assert.Equal(t, 5, board.CountEmpty())
	})

	t.Run("Does not validate a malformed layout", func(t *testing.T) {
		// Given: a layout with a missing row, an extra column and a foreign value
		layout := Layout{
			{PlayerX, Cell(7), PlayerO, PlayerX},
			{PlayerO},
		}

		// When: the board is restored
		board := RestoreBoard(layout)

		// Then: cells inside the 3x3 area are copied as-is, the rest stays empty
		expected := Layout{
			{PlayerX, Cell(7), PlayerO},
			{PlayerO, Empty, Empty},
			{Empty, Empty, Empty},
		}
		assert.Equal(t, expected, board.Layout())
	})

	t.Run("Layout is detached from the board", func(t *testing.T) {
		// Given: a restored board
		board := RestoreBoard(Layout{{PlayerX}})

		// When: the exported layout is modified
		layout := board.Layout()
		layout[0][0] = PlayerO

		// Then: the board keeps its own value
		assert.Equal(t, PlayerX, board.Cell(0, 0))
	})
}

func TestBoard_SetCell(t *testing.T) {
	t.Run("Sets an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X plays the center
		ok := board.SetCell(1, 1, PlayerX)

		// Then: the move is applied
		require.True(t, ok)
		assert.Equal(t, PlayerX, board.Cell(1, 1))
		assert.Equal(t, 8, board.CountEmpty())
	})

	t.Run("Rejects a write onto an occupied cell", func(t *testing.T) {
		// Given: a board where X holds the center
		board := NewBoard()
		require.True(t, board.SetCell(1, 1, PlayerX))
		before := board.Grid()

		// When: O tries the same cell
		ok := board.SetCell(1, 1, PlayerO)

		// Then: nothing changes
		assert.False(t, ok)
		assert.Equal(t, before, board.Grid())
	})

	t.Run("Empty always clears a cell", func(t *testing.T) {
		// Given: a board where O holds a corner
		board := NewBoard()
		require.True(t, board.SetCell(2, 2, PlayerO))

		// When: the cell is reset to empty
		ok := board.SetCell(2, 2, Empty)

		// Then: the cell is empty again
		require.True(t, ok)
		assert.Equal(t, Empty, board.Cell(2, 2))
	})

	t.Run("Rejects unknown cell values", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: a foreign value is written
		ok := board.SetCell(0, 0, Cell(2))

		// Then: the board stays empty
		assert.False(t, ok)
		assert.Equal(t, 9, board.CountEmpty())
	})

	t.Run("Rejects out of range coordinates", func(t *testing.T) {
		board := NewBoard()

		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			assert.False(t, board.SetCell(move.Row, move.Col, PlayerX), "move %v", move)
		}

		assert.Equal(t, 9, board.CountEmpty())
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("SetWinner marks a player as winner", func(t *testing.T) {
		board := NewBoard()

		board.SetWinner(OutcomeFor(PlayerO))

		assert.True(t, board.HasWinner())
		assert.False(t, board.IsTie())
		assert.Equal(t, OutcomeO, board.Winner())
	})

	t.Run("SetTie marks the tie outcome", func(t *testing.T) {
		board := NewBoard()

		board.SetTie()

		assert.True(t, board.HasWinner())
		assert.True(t, board.IsTie())
		assert.NotEqual(t, OutcomeX, board.Winner())
		assert.NotEqual(t, OutcomeO, board.Winner())
	})
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "X", PlayerX.String())
	assert.Equal(t, "O", PlayerO.String())
	assert.Equal(t, "", Empty.String())
	assert.Equal(t, "", Cell(5).String())
}

func TestOutcomeFor(t *testing.T) {
	assert.Equal(t, OutcomeX, OutcomeFor(PlayerX))
	assert.Equal(t, OutcomeO, OutcomeFor(PlayerO))
	assert.Equal(t, OutcomeNone, OutcomeFor(Empty))
}

// Package view holds the presentation helpers shared by the HTTP and websocket transports.
package view

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/buzzmcgee/tictactoe/internal/apperror"
	"github.com/buzzmcgee/tictactoe/internal/entity"
)

var coordinatesPattern = regexp.MustCompile(`^([0-2]):([0-2])$`)

type Cell struct {
	Value       string `json:"value"`
	Coordinates string `json:"coordinates"`
}

type Board struct {
	CellLayout [][]Cell `json:"cellLayout"`
	Winner     string   `json:"winner"`
}

// Render - projects a board into display symbols addressed by "row:col".
func Render(board *entity.Board) *Board {
	cells := make([][]Cell, entity.BoardSize)

	for row := 0; row < entity.BoardSize; row++ {
		cells[row] = make([]Cell, entity.BoardSize)

		for col := 0; col < entity.BoardSize; col++ {
			cells[row][col] = Cell{
				Value:       board.Cell(row, col).String(),
				Coordinates: FormatCoordinates(entity.Move{Row: row, Col: col}),
			}
		}
	}

	return &Board{
		CellLayout: cells,
		Winner:     board.Winner().String(),
	}
}

func FormatCoordinates(move entity.Move) string {
	return fmt.Sprintf("%d:%d", move.Row, move.Col)
}

// ParseCoordinates - accepts exactly "row:col" with both parts in 0..2.
func ParseCoordinates(value string) (entity.Move, error) {
	matches := coordinatesPattern.FindStringSubmatch(value)
	if matches == nil {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCoordinates, value)
	}

	// the pattern guarantees single digits
	row, _ := strconv.Atoi(matches[1])
	col, _ := strconv.Atoi(matches[2])

	return entity.Move{Row: row, Col: col}, nil
}

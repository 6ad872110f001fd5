package tictactoe

import "github.com/buzzmcgee/tictactoe/internal/entity"

// IsValidLayout - checks that an external grid is 3x3, holds only known cells
// and that both players have made a plausible number of moves.
//
// The move balance is a cheap heuristic, it does not prove that the position
// is reachable by legal play.
func IsValidLayout(layout entity.Layout) bool {
	if len(layout) != entity.BoardSize {
		return false
	}

	countX, countO := 0, 0
	for _, row := range layout {
		if len(row) != entity.BoardSize {
			return false
		}

		for _, cell := range row {
			switch cell {
			case entity.PlayerX:
				countX++
			case entity.PlayerO:
				countO++
			case entity.Empty:
			default:
				return false
			}
		}
	}

	return abs(countO-countX) <= 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

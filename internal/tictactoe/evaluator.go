package tictactoe

import "github.com/buzzmcgee/tictactoe/internal/entity"

const lineCount = 2*entity.BoardSize + 2

// UpdateWinner - detects a winning line or a full board and records it on the board.
// Returns true if the game is over. It never clears an existing outcome.
func UpdateWinner(board *entity.Board) bool {
	for _, sum := range lineSums(board.Grid()) {
		switch sum {
		case entity.BoardSize * weight(entity.PlayerX):
			board.SetWinner(entity.OutcomeX)
			return true
		case entity.BoardSize * weight(entity.PlayerO):
			board.SetWinner(entity.OutcomeO)
			return true
		}
	}

	if board.CountEmpty() == 0 {
		board.SetTie()
		return true
	}

	return false
}

// lineSums - rows first, then columns, then the main and anti diagonal.
func lineSums(grid [entity.BoardSize][entity.BoardSize]entity.Cell) [lineCount]int {
	var sums [lineCount]int

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			value := weight(grid[row][col])

			sums[row] += value
			sums[entity.BoardSize+col] += value

			if row == col {
				sums[2*entity.BoardSize] += value
			}
			if row+col == entity.BoardSize-1 {
				sums[2*entity.BoardSize+1] += value
			}
		}
	}

	return sums
}

func weight(cell entity.Cell) int {
	return int(cell)
}

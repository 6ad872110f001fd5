package tictactoe

import "github.com/buzzmcgee/tictactoe/internal/entity"

const (
	scoreLoss = -1
	scoreTie  = 0
	scoreWin  = 1

	// bounds just outside the real score range so the first child always replaces them.
	scoreBelowMin = scoreLoss - 1
	scoreAboveMax = scoreWin + 1
)

type grid = [entity.BoardSize][entity.BoardSize]entity.Cell

// BestNextMove - finds the move that is optimal for player assuming opponent
// also plays optimally, by exploring the whole game tree.
// Ties between equally scored moves go to the first one in row-major order.
// Returns false if the board has no empty cell left.
//
// The board passed in is never modified, every candidate is tried on a copy.
func BestNextMove(board *entity.Board, player, opponent entity.Cell) (entity.Move, bool) {
	current := board.Grid()

	var best entity.Move
	found := false
	maxScore := scoreBelowMin

	forEachEmpty(current, func(row, col int) {
		next := current
		next[row][col] = player

		score := checkMovesAhead(next, false, 1, player, opponent)
		if score > maxScore {
			maxScore = score
			best = entity.Move{Row: row, Col: col}
			found = true
		}
	})

	return best, found
}

// checkMovesAhead - minimax score of a position from player's point of view.
// depth is tracked only for the recursion, faster wins are not preferred.
func checkMovesAhead(position grid, isPlayerTurn bool, depth int, player, opponent entity.Cell) int {
	board := entity.BoardFromGrid(position)
	if UpdateWinner(board) {
		switch board.Winner() {
		case entity.OutcomeFor(player):
			return scoreWin
		case entity.OutcomeTie:
			return scoreTie
		default:
			return scoreLoss
		}
	}

	mover := opponent
	result := scoreAboveMax
	if isPlayerTurn {
		mover = player
		result = scoreBelowMin
	}

	forEachEmpty(position, func(row, col int) {
		next := position
		next[row][col] = mover

		score := checkMovesAhead(next, !isPlayerTurn, depth+1, player, opponent)
		if isPlayerTurn {
			result = max(result, score)
		} else {
			result = min(result, score)
		}
	})

	return result
}

func forEachEmpty(position grid, visit func(row, col int)) {
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if position[row][col] == entity.Empty {
				visit(row, col)
			}
		}
	}
}

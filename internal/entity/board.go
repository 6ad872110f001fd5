package entity

const BoardSize = 3

// Cell values double as line weights: a full line of one player sums to 3 × value.
type Cell int8

const (
	PlayerO Cell = -1
	Empty   Cell = 0
	PlayerX Cell = 1
)

func (that Cell) IsValid() bool {
	switch that {
	case Empty, PlayerX, PlayerO:
		return true
	default:
		return false
	}
}

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeX
	OutcomeO
	OutcomeTie
)

// OutcomeFor - maps a player cell to its winning outcome.
func OutcomeFor(player Cell) Outcome {
	switch player {
	case PlayerX:
		return OutcomeX
	case PlayerO:
		return OutcomeO
	default:
		return OutcomeNone
	}
}

func (that Outcome) String() string {
	switch that {
	case OutcomeX:
		return "X"
	case OutcomeO:
		return "O"
	case OutcomeTie:
		return "tie"
	default:
		return ""
	}
}

// Layout is a raw grid as it is persisted or received from outside; its shape is not guaranteed.
type Layout [][]Cell

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Board struct {
	grid   [BoardSize][BoardSize]Cell
	winner Outcome
}

func NewBoard() *Board {
	return &Board{}
}

// RestoreBoard - builds a board from a persisted layout without validating it.
// Cells outside the 3x3 area are dropped, missing cells stay empty.
func RestoreBoard(layout Layout) *Board {
	board := &Board{}

	for row := 0; row < BoardSize && row < len(layout); row++ {
		for col := 0; col < BoardSize && col < len(layout[row]); col++ {
			board.grid[row][col] = layout[row][col]
		}
	}

	return board
}

// BoardFromGrid - wraps a copy of grid into a fresh, undecided board.
func BoardFromGrid(grid [BoardSize][BoardSize]Cell) *Board {
	return &Board{grid: grid}
}

func (that *Board) SetCell(row, col int, value Cell) bool {
	if !inBounds(row, col) || !value.IsValid() {
		return false
	}

	if value != Empty && that.grid[row][col] != Empty {
		return false
	}

	that.grid[row][col] = value

	return true
}

// Cell - returns Empty for coordinates outside the board.
func (that *Board) Cell(row, col int) Cell {
	if !inBounds(row, col) {
		return Empty
	}

	return that.grid[row][col]
}

func (that *Board) Grid() [BoardSize][BoardSize]Cell {
	return that.grid
}

func (that *Board) Layout() Layout {
	layout := make(Layout, BoardSize)
	for row := range that.grid {
		layout[row] = append([]Cell(nil), that.grid[row][:]...)
	}

	return layout
}

func (that *Board) CountEmpty() int {
	count := 0
	for _, row := range that.grid {
		for _, cell := range row {
			if cell == Empty {
				count++
			}
		}
	}

	return count
}

func (that *Board) Winner() Outcome {
	return that.winner
}

func (that *Board) SetWinner(outcome Outcome) {
	that.winner = outcome
}

func (that *Board) HasWinner() bool {
	return that.winner != OutcomeNone
}

func (that *Board) SetTie() {
	that.winner = OutcomeTie
}

func (that *Board) IsTie() bool {
	return that.winner == OutcomeTie
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/buzzmcgee/tictactoe/internal/apperror"
	"github.com/buzzmcgee/tictactoe/internal/entity"
	"github.com/buzzmcgee/tictactoe/internal/repository"
	"github.com/buzzmcgee/tictactoe/internal/tictactoe"
)

const (
	humanMark    = entity.PlayerX
	computerMark = entity.PlayerO
)

type boardRepo interface {
	Save(ctx context.Context, sessionID string, board *entity.Board) error
	GetByID(ctx context.Context, sessionID string) (entity.Layout, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

// GameManager runs the human-versus-computer loop on top of the session store.
// The human always plays X, the computer plays O.
type GameManager struct {
	logger    *slog.Logger
	boardRepo boardRepo
}

func NewGameManager(logger *slog.Logger, boardRepo boardRepo) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		boardRepo: boardRepo,
	}
}

// NewGame - replaces the session's board with a fresh one, the computer opens if asked to.
func (that *GameManager) NewGame(ctx context.Context, sessionID string, computerStarts bool) (*entity.Board, error) {
	board := entity.NewBoard()

	if computerStarts {
		that.computerTurn(board)
	}

	if err := that.boardRepo.Save(ctx, sessionID, board); err != nil {
		return nil, fmt.Errorf("failed to save new board: %w", err)
	}

	that.logger.Debug("new game", "session", sessionID, "computer_starts", computerStarts)

	return board, nil
}

// GetGame - loads the session's board and evaluates it.
func (that *GameManager) GetGame(ctx context.Context, sessionID string) (*entity.Board, error) {
	board, err := that.loadBoard(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	tictactoe.UpdateWinner(board)

	return board, nil
}

// MakeMove - applies the human move and, if the game goes on, answers with the computer move.
func (that *GameManager) MakeMove(ctx context.Context, sessionID string, move entity.Move) (*entity.Board, error) {
	log := that.logger.With("method", "MakeMove", "session", sessionID)

	if !onBoard(move) {
		return nil, fmt.Errorf("%w: %d:%d", apperror.ErrInvalidCoordinates, move.Row, move.Col)
	}

	board, err := that.loadBoard(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if tictactoe.UpdateWinner(board) {
		return board, apperror.ErrGameFinished
	}

	if !board.SetCell(move.Row, move.Col, humanMark) {
		return board, fmt.Errorf("%w: %d:%d", apperror.ErrCellOccupied, move.Row, move.Col)
	}

	if !tictactoe.UpdateWinner(board) {
		that.computerTurn(board)
	}

	if err = that.boardRepo.Save(ctx, sessionID, board); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	if board.HasWinner() {
		log.Info("game finished", "winner", board.Winner().String())
	}

	return board, nil
}

// ResetGame - forgets the session's board.
func (that *GameManager) ResetGame(ctx context.Context, sessionID string) error {
	if err := that.boardRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	return nil
}

// computerTurn - plays the best move for the computer; a full board ends in a tie.
func (that *GameManager) computerTurn(board *entity.Board) {
	move, ok := tictactoe.BestNextMove(board, computerMark, humanMark)
	if !ok {
		board.SetTie()
		return
	}

	board.SetCell(move.Row, move.Col, computerMark)
	tictactoe.UpdateWinner(board)
}

func onBoard(move entity.Move) bool {
	return move.Row >= 0 && move.Row < entity.BoardSize && move.Col >= 0 && move.Col < entity.BoardSize
}

func (that *GameManager) loadBoard(ctx context.Context, sessionID string) (*entity.Board, error) {
	layout, err := that.boardRepo.GetByID(ctx, sessionID)
	switch {
	case errors.Is(err, repository.ErrBoardNotFound):
		return nil, apperror.ErrNoActiveGame
	case errors.Is(err, repository.ErrCorruptedBoard):
		that.logger.Warn("stored board could not be decoded", "session", sessionID, "error", err)
		return nil, apperror.ErrInvalidLayout
	case err != nil:
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	if !tictactoe.IsValidLayout(layout) {
		that.logger.Warn("stored board layout is not plausible", "session", sessionID)
		return nil, apperror.ErrInvalidLayout
	}

	return entity.RestoreBoard(layout), nil
}

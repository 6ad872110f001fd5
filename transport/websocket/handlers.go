package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buzzmcgee/tictactoe/internal/apperror"
	"github.com/buzzmcgee/tictactoe/internal/entity"
	"github.com/buzzmcgee/tictactoe/transport/view"
)

const internalErrorText = "internal error"

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownAction    = errors.New("unknown action")
)

func (that *Server) handleNewGame(ctx context.Context, sessionID string, raw json.RawMessage) Payload {
	var req newGameRequest
	if err := decodePayload(raw, &req); err != nil {
		return that.result(nil, err)
	}

	board, err := that.game.NewGame(ctx, sessionID, req.ComputerStarts)
	return that.result(board, err)
}

func (that *Server) handleMove(ctx context.Context, sessionID string, raw json.RawMessage) Payload {
	var req moveRequest
	if err := decodePayload(raw, &req); err != nil {
		return that.result(nil, err)
	}

	move, err := view.ParseCoordinates(req.Coordinates)
	if err != nil {
		return that.result(nil, err)
	}

	board, err := that.game.MakeMove(ctx, sessionID, move)
	return that.result(board, err)
}

func (that *Server) handleState(ctx context.Context, sessionID string, _ json.RawMessage) Payload {
	board, err := that.game.GetGame(ctx, sessionID)
	if errors.Is(err, apperror.ErrNoActiveGame) {
		return Payload{ShowNewGame: true}
	}

	return that.result(board, err)
}

func (that *Server) handleReset(ctx context.Context, sessionID string, _ json.RawMessage) Payload {
	if err := that.game.ResetGame(ctx, sessionID); err != nil {
		return that.result(nil, err)
	}

	return Payload{ShowNewGame: true}
}

// result - builds a reply payload; errors the client cannot act on are logged and masked.
func (that *Server) result(board *entity.Board, err error) Payload {
	var payload Payload
	if board != nil {
		payload.Board = view.Render(board)
	}

	if err != nil {
		payload.Error = err.Error()

		if !isClientError(err) {
			that.logger.Error("request failed", "error", err)
			payload.Error = internalErrorText
		}
	}

	return payload
}

func decodePayload(raw json.RawMessage, target any) error {
	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %w", errMalformedMessage, err)
	}

	return nil
}

func isClientError(err error) bool {
	for _, known := range []error{
		apperror.ErrNoActiveGame,
		apperror.ErrInvalidLayout,
		apperror.ErrInvalidCoordinates,
		apperror.ErrCellOccupied,
		apperror.ErrGameFinished,
		errMalformedMessage,
	} {
		if errors.Is(err, known) {
			return true
		}
	}

	return false
}

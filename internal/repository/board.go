package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/buzzmcgee/tictactoe/internal/entity"
)

var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrCorruptedBoard = errors.New("stored board is corrupted")
)

type BoardRepository interface {
	Save(ctx context.Context, sessionID string, board *entity.Board) error
	GetByID(ctx context.Context, sessionID string) (entity.Layout, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type dbBoard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBoardRepository - stores one board per session; a zero ttl keeps boards forever.
func NewBoardRepository(client *redis.Client, ttl time.Duration) BoardRepository {
	return &dbBoard{
		client: client,
		ttl:    ttl,
	}
}

// Save - only the layout is persisted, the outcome is recomputed after loading.
func (that *dbBoard) Save(ctx context.Context, sessionID string, board *entity.Board) error {
	layoutJSON, err := json.Marshal(board.Layout())
	if err != nil {
		return fmt.Errorf("could not marshal board layout: %w", err)
	}

	if err = that.client.Set(ctx, boardKey(sessionID), layoutJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set board: %w", err)
	}

	return nil
}

// GetByID - returns the stored layout unchecked; callers validate it before building a board.
func (that *dbBoard) GetByID(ctx context.Context, sessionID string) (entity.Layout, error) {
	response, err := that.client.Get(ctx, boardKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBoardNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get board by id: %w", err)
	}

	var layout entity.Layout
	if err = json.Unmarshal(response, &layout); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedBoard, err)
	}

	return layout, nil
}

func (that *dbBoard) DeleteByID(ctx context.Context, sessionID string) error {
	if err := that.client.Del(ctx, boardKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete board by id: %w", err)
	}

	return nil
}

func boardKey(sessionID string) string {
	return "board:" + sessionID
}

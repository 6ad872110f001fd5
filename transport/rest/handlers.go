package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/buzzmcgee/tictactoe/internal/apperror"
	"github.com/buzzmcgee/tictactoe/internal/entity"
	"github.com/buzzmcgee/tictactoe/internal/pkg"
	"github.com/buzzmcgee/tictactoe/transport/view"
)

type sessionKey struct{}

type gameUseCase interface {
	NewGame(ctx context.Context, sessionID string, computerStarts bool) (*entity.Board, error)
	GetGame(ctx context.Context, sessionID string) (*entity.Board, error)
	MakeMove(ctx context.Context, sessionID string, move entity.Move) (*entity.Board, error)
	ResetGame(ctx context.Context, sessionID string) error
}

type gameResponse struct {
	ShowNewGame bool        `json:"showNewGame"`
	Board       *view.Board `json:"board,omitempty"`
	Error       string      `json:"error,omitempty"`
}

type GameHandler struct {
	logger *slog.Logger
	game   gameUseCase
}

func NewGameHandler(logger *slog.Logger, game gameUseCase) *GameHandler {
	return &GameHandler{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

// State - shows the current board, or asks for a new game if the session has none.
func (that *GameHandler) State(w http.ResponseWriter, r *http.Request) {
	board, err := that.game.GetGame(r.Context(), sessionID(r))
	if errors.Is(err, apperror.ErrNoActiveGame) {
		that.writeJSON(w, http.StatusOK, gameResponse{ShowNewGame: true})
		return
	}

	that.respond(w, board, err)
}

func (that *GameHandler) NewPlayerGame(w http.ResponseWriter, r *http.Request) {
	board, err := that.game.NewGame(r.Context(), sessionID(r), false)
	that.respond(w, board, err)
}

func (that *GameHandler) NewComputerGame(w http.ResponseWriter, r *http.Request) {
	board, err := that.game.NewGame(r.Context(), sessionID(r), true)
	that.respond(w, board, err)
}

func (that *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	move, err := view.ParseCoordinates(r.FormValue("coordinates"))
	if err != nil {
		that.respond(w, nil, err)
		return
	}

	board, err := that.game.MakeMove(r.Context(), sessionID(r), move)
	that.respond(w, board, err)
}

func (that *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := that.game.ResetGame(r.Context(), sessionID(r)); err != nil {
		that.respond(w, nil, err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameResponse{ShowNewGame: true})
}

// Session - makes sure every game request carries a session cookie.
func (that *GameHandler) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, created := pkg.SessionFromRequest(r)
		if created {
			http.SetCookie(w, cookie)
			that.logger.Debug("session cookie not found, new one created", "session", cookie.Value)
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, cookie.Value)))
	})
}

func (that *GameHandler) respond(w http.ResponseWriter, board *entity.Board, err error) {
	response := gameResponse{}
	if board != nil {
		response.Board = view.Render(board)
	}

	status := http.StatusOK
	if err != nil {
		status = statusFor(err)
		response.Error = err.Error()

		if status == http.StatusInternalServerError {
			that.logger.Error("request failed", "error", err)
			response.Error = http.StatusText(status)
		}
	}

	that.writeJSON(w, status, response)
}

func (that *GameHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNoActiveGame):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidLayout), errors.Is(err, apperror.ErrInvalidCoordinates):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionKey{}).(string)
	return id
}

package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/buzzmcgee/tictactoe/internal/entity"
	"github.com/buzzmcgee/tictactoe/internal/pkg"
)

const (
	writeWait       = 10 * time.Second
	maxMessageSize  = 4096
	shutdownTimeout = 5 * time.Second
)

type gameUseCase interface {
	NewGame(ctx context.Context, sessionID string, computerStarts bool) (*entity.Board, error)
	GetGame(ctx context.Context, sessionID string) (*entity.Board, error)
	MakeMove(ctx context.Context, sessionID string, move entity.Move) (*entity.Board, error)
	ResetGame(ctx context.Context, sessionID string) error
}

type handlerFunc func(ctx context.Context, sessionID string, payload json.RawMessage) Payload

type Server struct {
	logger   *slog.Logger
	game     gameUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, game gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionState] = server.handleState
	server.handlers[actionReset] = server.handleReset

	return server
}

// Handler - routes /ws to the upgrade handler.
func (that *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/ws", that.upgrade)

	return r
}

// Start - starts WebSocket server and stops it together with its connections once ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgrade - upgrades the connection to WebSocket, binding it to the caller's session.
func (that *Server) upgrade(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgrade")

	cookie, created := pkg.SessionFromRequest(r)

	header := http.Header{}
	if created {
		header.Add("Set-Cookie", cookie.String())
		log.Debug("session cookie not found, new one created", "session", cookie.Value)
	}

	conn, err := that.upgrader.Upgrade(w, r, header)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		log.Warn("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	// hijacked connections are not closed by http.Server.Shutdown
	stop := context.AfterFunc(r.Context(), func() { _ = conn.Close() })
	defer stop()

	log.Debug("WebSocket connection established", "session", cookie.Value)

	that.handleMessages(r.Context(), conn, cookie.Value)
}

// handleMessages - processes messages from the client until the connection is closed.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, sessionID string) {
	log := that.logger.With("method", "handleMessages", "session", sessionID)

	conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("connection closed unexpectedly", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			message.Action = ""
		}

		reply := Reply{Action: message.Action}

		handler, ok := that.handlers[message.Action]
		switch {
		case err != nil:
			reply.Payload = Payload{Error: errMalformedMessage.Error()}
		case !ok:
			reply.Payload = Payload{Error: fmt.Sprintf("%s: %q", errUnknownAction, message.Action)}
		default:
			reply.Payload = handler(ctx, sessionID, message.Payload)
		}

		if err = that.send(conn, reply); err != nil {
			log.Warn("failed to send reply", "action", reply.Action, "error", err)
			return
		}
	}
}

func (that *Server) send(conn *websocket.Conn, reply Reply) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := conn.WriteJSON(reply); err != nil {
		return fmt.Errorf("failed to write reply: %w", err)
	}

	return nil
}

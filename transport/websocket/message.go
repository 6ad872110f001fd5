package websocket

import (
	"encoding/json"

	"github.com/buzzmcgee/tictactoe/transport/view"
)

const (
	actionNewGame = "game:new"
	actionMove    = "game:move"
	actionState   = "game:state"
	actionReset   = "game:reset"
)

// Message - the envelope of every frame exchanged with a client.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Reply - the envelope sent back; Action echoes the request.
type Reply struct {
	Action  string  `json:"action"`
	Payload Payload `json:"payload"`
}

type Payload struct {
	ShowNewGame bool        `json:"showNewGame,omitempty"`
	Board       *view.Board `json:"board,omitempty"`
	Error       string      `json:"error,omitempty"`
}

type newGameRequest struct {
	ComputerStarts bool `json:"computerStarts"`
}

type moveRequest struct {
	Coordinates string `json:"coordinates"`
}

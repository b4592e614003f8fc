package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/game"
)

const (
	actionNewGame  = "game:new"
	actionTurn     = "game:turn"
	actionState    = "game:state"
	actionFinished = "game:finished"
	actionError    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type NewGamePayload struct {
	Kind  entity.MatchKind `json:"tipo"`
	Human entity.Mark      `json:"humano"`
}

type TurnPayload struct {
	Position *int `json:"posicao"`
}

type ResponsePayload struct {
	Game   *game.Session      `json:"game,omitempty"`
	Record *entity.GameRecord `json:"record,omitempty"`
	Error  string             `json:"error,omitempty"`
}

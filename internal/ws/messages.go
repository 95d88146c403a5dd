package ws

import (
	"encoding/json"

	"github.com/playpong/backend/internal/game"
)

// Event types carried in the "type" field of every frame.
const (
	MsgAssignPlayer = "assign_player"
	MsgGameFull     = "game_full"
	MsgUpdateGame   = "update_game"
	MsgMovePaddle   = "move_paddle"
	MsgRestartGame  = "restart_game"
	MsgError        = "error"
	MsgMatchEvent   = "match_event"
)

// WSMessage is an inbound frame.
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Outbound is a frame sent to clients.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type AssignPlayerData struct {
	Player game.Slot `json:"player"`
}

// MovePaddleData is the move_paddle payload. Player is accepted for
// compatibility with older clients and ignored.
type MovePaddleData struct {
	Position *float64 `json:"position"`
	Player   string   `json:"player,omitempty"`
}

type ErrorData struct {
	Message string `json:"message"`
}

func assignPlayer(slot game.Slot) Outbound {
	return Outbound{Type: MsgAssignPlayer, Data: AssignPlayerData{Player: slot}}
}

func gameFull() Outbound {
	return Outbound{Type: MsgGameFull, Data: struct{}{}}
}

func updateGame(s game.State) Outbound {
	return Outbound{Type: MsgUpdateGame, Data: s}
}

func errorMessage(msg string) Outbound {
	return Outbound{Type: MsgError, Data: ErrorData{Message: msg}}
}

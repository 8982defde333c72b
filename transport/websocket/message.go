package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/samber/lo"
)

const (
	actionGameNew     = "game:new"
	actionGameGet     = "game:get"
	actionGameTurn    = "game:turn"
	actionGameRestart = "game:restart"
	actionGameHint    = "game:hint"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID       string      `json:"game_id,omitempty"`
	Mode         string      `json:"mode,omitempty"`
	ComputerMark entity.Cell `json:"computer_mark,omitempty"`
	Cell         *int        `json:"cell,omitempty"`
}

// CellScore is a scored cell of a hint, addressed by its 0..8 index.
type CellScore struct {
	Cell  int `json:"cell"`
	Score int `json:"score"`
}

type ResponsePayload struct {
	Game     *entity.Game `json:"game,omitempty"`
	Computer *int         `json:"computer,omitempty"`
	Moves    []CellScore  `json:"moves,omitempty"`
	Best     *int         `json:"best,omitempty"`
	Value    *int         `json:"value,omitempty"`
	Error    string       `json:"error,omitempty"`
}

func hintPayload(game *entity.Game, result minimax.Result) ResponsePayload {
	best := result.Best(game.Turn).Index()

	return ResponsePayload{
		Game: game,
		Moves: lo.Map(result.Moves, func(move entity.Move, _ int) CellScore {
			return CellScore{Cell: move.Index(), Score: move.Score}
		}),
		Best:  &best,
		Value: &result.Value,
	}
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadJSON,
	}

	if err = conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action, errorMessage string) error {
	return that.sendMessage(conn, action, ResponsePayload{Error: errorMessage})
}

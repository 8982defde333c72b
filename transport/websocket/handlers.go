package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

// ruleErrors are reported to the client as they are.
var ruleErrors = []error{
	apperror.ErrGameFinished,
	apperror.ErrNotYourTurn,
	apperror.ErrCellOccupied,
	apperror.ErrInvalidCell,
	apperror.ErrUnknownMode,
	apperror.ErrInvalidMark,
	repository.ErrGameNotFound,
}

func clientError(err error, fallback string) string {
	for _, ruleErr := range ruleErrors {
		if errors.Is(err, ruleErr) {
			return ruleErr.Error()
		}
	}

	return fallback
}

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	err := json.Unmarshal(msg.Payload, &payload)

	return payload, err
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, "invalid payload")
	}

	game, err := that.uGame.CreateGame(ctx, payloadReq.Mode, payloadReq.ComputerMark)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendErrorResponse(conn, msg.Action, clientError(err, "failed to create a new game"))
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleGetGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, err := decodePayload(msg)
	if err != nil || payloadReq.GameID == "" {
		return that.sendErrorResponse(conn, msg.Action, "game_id is required")
	}

	game, err := that.uGame.GetGame(ctx, payloadReq.GameID)
	if err != nil {
		that.logger.Error("failed to get game", "method", "handleGetGame", "gameID", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, clientError(err, "failed to get the game"))
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, err := decodePayload(msg)
	if err != nil || payloadReq.GameID == "" || payloadReq.Cell == nil {
		return that.sendErrorResponse(conn, msg.Action, "game_id and cell are required")
	}

	log = log.With("gameID", payloadReq.GameID, "cell", *payloadReq.Cell)

	outcome, err := that.uGame.MakeTurn(ctx, payloadReq.GameID, *payloadReq.Cell)
	if err != nil {
		log.Warn("turn rejected", "error", err)
		return that.sendErrorResponse(conn, msg.Action, clientError(err, "failed to make turn"))
	}

	payloadResp := ResponsePayload{Game: outcome.Game}
	if outcome.Computer != nil {
		cell := outcome.Computer.Index()
		payloadResp.Computer = &cell
	}

	return that.sendMessage(conn, msg.Action, payloadResp)
}

func (that *Server) handleRestartGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, err := decodePayload(msg)
	if err != nil || payloadReq.GameID == "" {
		return that.sendErrorResponse(conn, msg.Action, "game_id is required")
	}

	game, err := that.uGame.RestartGame(ctx, payloadReq.GameID)
	if err != nil {
		that.logger.Error("failed to restart game", "method", "handleRestartGame", "gameID", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, clientError(err, "failed to restart the game"))
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleHint(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, err := decodePayload(msg)
	if err != nil || payloadReq.GameID == "" {
		return that.sendErrorResponse(conn, msg.Action, "game_id is required")
	}

	game, result, err := that.uGame.Hint(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, clientError(err, "failed to get a hint"))
	}

	return that.sendMessage(conn, msg.Action, hintPayload(game, result))
}

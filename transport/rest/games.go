package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

type gameHandler struct {
	logger *slog.Logger
	uGame  uGame
}

// GetGame - writes the live game as JSON, or 404 when it has expired or never existed.
func (that *gameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	game, err := that.uGame.GetGame(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}

		that.logger.Error("failed to get game", "method", "GetGame", "gameID", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(game); err != nil {
		that.logger.Error("failed to encode game", "method", "GetGame", "gameID", id, "error", err)
	}
}

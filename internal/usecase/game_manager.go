package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs game sessions on top of the game repository.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepoDep
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepoDep) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
	}
}

// CreateGame - starts a new game; the computer opens right away when it plays X.
func (that *GameManager) CreateGame(ctx context.Context, mode string, computerMark entity.Cell) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	game, err := tictactoe.NewGame(uuid.NewString(), mode, computerMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("game created", "gameID", game.ID, "mode", game.Mode, "computer", game.ComputerMark)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the human move at cell and the computer's answer, if any.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*tictactoe.Outcome, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome, err := tictactoe.PlayHuman(game, entity.MoveFromIndex(cell))
	if err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if outcome.Computer != nil {
		log.Debug("computer answered", "cell", outcome.Computer.Index(), "score", outcome.Computer.Score)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return outcome, nil
}

// RestartGame - resets the board of an existing game.
func (that *GameManager) RestartGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.Restart(game); err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game restarted", "method", "RestartGame", "gameID", id)

	return game, nil
}

// Hint - scores the free cells for whoever moves next.
func (that *GameManager) Hint(ctx context.Context, id string) (*entity.Game, minimax.Result, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, minimax.Result{}, err
	}

	result, err := tictactoe.Hint(game)
	if err != nil {
		return nil, minimax.Result{}, fmt.Errorf("failed to get hint: %w", err)
	}

	return game, result, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "method", "DeleteGame", "gameID", id)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

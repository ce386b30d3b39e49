package usecase

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

// GameManager owns the single hot-seat session. Every action holds the mutex until the
// game has finished notifying its display.
type GameManager struct {
	logger *slog.Logger

	mu       sync.Mutex
	display  tictactoe.Display
	game     *tictactoe.Game
	players  *entity.PlayerSequence
	defaults entity.PlayerForm
}

func NewGameManager(logger *slog.Logger, display tictactoe.Display, defaults entity.PlayerForm) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		display:  display,
		players:  entity.NewPlayerSequence(),
		defaults: defaults,
	}
}

// Start - sets up the default players and starts the first game.
func (that *GameManager) Start() (entity.GameSnapshot, error) {
	return that.ConfigurePlayers(entity.PlayerForm{})
}

// ConfigurePlayers - replaces both players from the submitted form and starts a new game.
// Blank fields fall back to the manager defaults.
func (that *GameManager) ConfigurePlayers(form entity.PlayerForm) (entity.GameSnapshot, error) {
	log := that.logger.With("method", "ConfigurePlayers")

	color1, err := that.pickColor(form.Player1Color, that.defaults.Player1Color)
	if err != nil {
		log.Warn("rejected player1 color", "color", form.Player1Color)
		return entity.GameSnapshot{}, fmt.Errorf("player1: %w", err)
	}

	color2, err := that.pickColor(form.Player2Color, that.defaults.Player2Color)
	if err != nil {
		log.Warn("rejected player2 color", "color", form.Player2Color)
		return entity.GameSnapshot{}, fmt.Errorf("player2: %w", err)
	}

	name1 := pickName(form.Player1Name, that.defaults.Player1Name, entity.DefaultPlayer1Name)
	name2 := pickName(form.Player2Name, that.defaults.Player2Name, entity.DefaultPlayer2Name)

	that.mu.Lock()
	defer that.mu.Unlock()

	player1 := that.players.NewPlayer(entity.MarkX, name1, color1)
	player2 := that.players.NewPlayer(entity.MarkO, name2, color2)

	if that.game == nil {
		that.game = tictactoe.New(that.logger, that.display, player1, player2)
	} else {
		that.game.SetPlayers(player1, player2)
	}
	that.game.NewGame()

	log.Info("players configured", "player1", player1.Name, "player2", player2.Name)

	return that.game.Snapshot(), nil
}

func (that *GameManager) NewGame() (entity.GameSnapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return entity.GameSnapshot{}, apperror.ErrGameNotStarted
	}

	that.game.NewGame()

	return that.game.Snapshot(), nil
}

// MakeTurn - plays the current player's marker at the 1-based (row, col).
func (that *GameManager) MakeTurn(row, col int) (entity.GameSnapshot, tictactoe.MoveResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return entity.GameSnapshot{}, tictactoe.MoveGameOver, apperror.ErrGameNotStarted
	}

	result := that.game.PlayTurn(row, col)
	that.logger.Debug("turn played", "row", row, "col", col, "result", result.String())

	return that.game.Snapshot(), result, nil
}

func (that *GameManager) Snapshot() (entity.GameSnapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return entity.GameSnapshot{}, apperror.ErrGameNotStarted
	}

	return that.game.Snapshot(), nil
}

func (that *GameManager) pickColor(value, fallback string) (string, error) {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}

	if strings.TrimSpace(value) == "" {
		return "", nil
	}

	return entity.NormalizeColor(value)
}

func pickName(value, fallback, def string) string {
	if name := strings.TrimSpace(value); name != "" {
		return name
	}

	if name := strings.TrimSpace(fallback); name != "" {
		return name
	}

	return def
}

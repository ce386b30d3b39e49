package usecase

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type countingDisplay struct {
	mu      sync.Mutex
	renders int
	results int
	enabled bool
}

func (that *countingDisplay) Render(entity.BoardSnapshot) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.renders++
}

func (that *countingDisplay) ShowTurn(*entity.Player) {}

func (that *countingDisplay) ShowResult(_, _ *entity.Player) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.results++
}

func (that *countingDisplay) Enable()  { that.enabled = true }
func (that *countingDisplay) Disable() { that.enabled = false }

func newTestManager(defaults entity.PlayerForm) (*GameManager, *countingDisplay) {
	display := &countingDisplay{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGameManager(logger, display, defaults), display
}

func TestGameManager_Start(t *testing.T) {
	t.Run("Starts with the default players", func(t *testing.T) {
		// Given: a manager with configured defaults
		manager, display := newTestManager(entity.PlayerForm{
			Player1Name: "Alice", Player1Color: "blue",
			Player2Color: "red",
		})

		// When: the session starts
		snapshot, err := manager.Start()

		// Then: player1 is X and moves first, player2 falls back to its slot name
		require.NoError(t, err)
		assert.Equal(t, "Alice", snapshot.Player1.Name)
		assert.Equal(t, entity.MarkX, snapshot.Player1.Mark)
		assert.Equal(t, "#0000ff", snapshot.Player1.Color)
		assert.Equal(t, entity.DefaultPlayer2Name, snapshot.Player2.Name)
		assert.Equal(t, entity.MarkO, snapshot.Player2.Mark)
		assert.Equal(t, "#ff0000", snapshot.Player2.Color)
		assert.Equal(t, snapshot.Player1.ID, snapshot.Turn.ID)
		assert.Equal(t, entity.StatusAwaitingMove, snapshot.Status)
		assert.True(t, display.enabled)
	})

	t.Run("Actions before Start are rejected", func(t *testing.T) {
		manager, _ := newTestManager(entity.PlayerForm{})

		_, err := manager.Snapshot()
		require.ErrorIs(t, err, apperror.ErrGameNotStarted)

		_, err = manager.NewGame()
		require.ErrorIs(t, err, apperror.ErrGameNotStarted)

		_, result, err := manager.MakeTurn(1, 1)
		require.ErrorIs(t, err, apperror.ErrGameNotStarted)
		assert.Equal(t, tictactoe.MoveGameOver, result)
	})
}

func TestGameManager_ConfigurePlayers(t *testing.T) {
	t.Run("Submitting the form creates fresh players and a new game", func(t *testing.T) {
		// Given: a started session with a move on the board
		manager, _ := newTestManager(entity.PlayerForm{})
		started, err := manager.Start()
		require.NoError(t, err)
		_, _, err = manager.MakeTurn(2, 2)
		require.NoError(t, err)

		// When: new players are submitted
		snapshot, err := manager.ConfigurePlayers(entity.PlayerForm{
			Player1Name: "  Carol ", Player1Color: "#0f0",
			Player2Name: "Dave", Player2Color: "#123456",
		})

		// Then: the players are new, named and coloured, and the board is empty
		require.NoError(t, err)
		assert.Equal(t, "Carol", snapshot.Player1.Name)
		assert.Equal(t, "#00ff00", snapshot.Player1.Color)
		assert.Equal(t, "Dave", snapshot.Player2.Name)
		assert.Equal(t, "#123456", snapshot.Player2.Color)
		assert.NotEqual(t, started.Player1.ID, snapshot.Player1.ID)
		assert.Equal(t, entity.EmptyCell, snapshot.Board.At(2, 2))
		assert.Equal(t, snapshot.Player1.ID, snapshot.Turn.ID)
	})

	t.Run("Blank names fall back to the slot names", func(t *testing.T) {
		manager, _ := newTestManager(entity.PlayerForm{})

		snapshot, err := manager.ConfigurePlayers(entity.PlayerForm{Player1Name: "   "})

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultPlayer1Name, snapshot.Player1.Name)
		assert.Equal(t, entity.DefaultPlayer2Name, snapshot.Player2.Name)
		assert.Empty(t, snapshot.Player1.Color)
	})

	t.Run("Invalid colour is rejected and the game is untouched", func(t *testing.T) {
		// Given: a started session
		manager, _ := newTestManager(entity.PlayerForm{})
		started, err := manager.Start()
		require.NoError(t, err)

		// When: a broken colour is submitted
		_, err = manager.ConfigurePlayers(entity.PlayerForm{Player2Color: "not-a-color"})

		// Then: the error is reported and the old players remain
		require.ErrorIs(t, err, apperror.ErrInvalidColor)

		snapshot, err := manager.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, started.Player2.ID, snapshot.Player2.ID)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Plays a full game to a win and refuses further moves", func(t *testing.T) {
		// Given: a started session
		manager, display := newTestManager(entity.PlayerForm{})
		_, err := manager.Start()
		require.NoError(t, err)

		// When: player1 completes the first row
		moves := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {1, 3}}
		var (
			snapshot entity.GameSnapshot
			result   tictactoe.MoveResult
		)
		for _, move := range moves {
			snapshot, result, err = manager.MakeTurn(move[0], move[1])
			require.NoError(t, err)
		}

		// Then: player1 won and the board was disabled
		assert.Equal(t, tictactoe.MoveWon, result)
		assert.Equal(t, entity.StatusWon, snapshot.Status)
		require.NotNil(t, snapshot.Winner)
		assert.Equal(t, snapshot.Player1.ID, snapshot.Winner.ID)
		assert.Nil(t, snapshot.Turn)
		assert.Equal(t, 1, display.results)
		assert.False(t, display.enabled)

		_, result, err = manager.MakeTurn(3, 3)
		require.NoError(t, err)
		assert.Equal(t, tictactoe.MoveGameOver, result)
	})

	t.Run("Occupied cell is reported and the turn stays", func(t *testing.T) {
		manager, _ := newTestManager(entity.PlayerForm{})
		_, err := manager.Start()
		require.NoError(t, err)

		_, _, err = manager.MakeTurn(1, 1)
		require.NoError(t, err)
		snapshot, result, err := manager.MakeTurn(1, 1)

		require.NoError(t, err)
		assert.Equal(t, tictactoe.MoveOccupied, result)
		assert.Equal(t, snapshot.Player2.ID, snapshot.Turn.ID)
	})

	t.Run("NewGame after a finished game resets the board", func(t *testing.T) {
		manager, _ := newTestManager(entity.PlayerForm{})
		_, err := manager.Start()
		require.NoError(t, err)
		for _, move := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {1, 3}} {
			_, _, err = manager.MakeTurn(move[0], move[1])
			require.NoError(t, err)
		}

		snapshot, err := manager.NewGame()

		require.NoError(t, err)
		assert.Equal(t, entity.StatusAwaitingMove, snapshot.Status)
		assert.Nil(t, snapshot.Winner)
		assert.Equal(t, entity.EmptyCell, snapshot.Board.At(1, 1))
	})

	t.Run("Concurrent moves are serialised", func(t *testing.T) {
		// Given: a started session
		manager, _ := newTestManager(entity.PlayerForm{})
		_, err := manager.Start()
		require.NoError(t, err)

		// When: every cell is clicked concurrently
		var wg sync.WaitGroup
		for row := 1; row <= 3; row++ {
			for col := 1; col <= 3; col++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, _, _ = manager.MakeTurn(row, col)
				}()
			}
		}
		wg.Wait()

		// Then: the game reached a consistent terminal or running state
		snapshot, err := manager.Snapshot()
		require.NoError(t, err)
		x, o := 0, 0
		for _, row := range snapshot.Board.Cells {
			for _, cell := range row {
				switch cell {
				case entity.MarkX:
					x++
				case entity.MarkO:
					o++
				}
			}
		}
		assert.True(t, x == o || x == o+1)
	})
}

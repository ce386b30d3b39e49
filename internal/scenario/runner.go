package scenario

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/display"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type Result struct {
	Name     string
	Expected string
	Actual   string
	Moves    []tictactoe.MoveResult
	Game     entity.GameSnapshot
}

func (that Result) Passed() bool {
	return that.Expected == that.Actual
}

// Run - plays the scenario on a fresh game. out may be nil.
func Run(logger *slog.Logger, s Scenario, out tictactoe.Display) Result {
	players := entity.NewPlayerSequence()
	player1 := players.NewPlayer(entity.MarkX, nameOr(s.Player1, entity.DefaultPlayer1Name), "blue")
	player2 := players.NewPlayer(entity.MarkO, nameOr(s.Player2, entity.DefaultPlayer2Name), "red")

	game := tictactoe.New(logger.With("scenario", s.Name), display.Multi(out), player1, player2)
	game.NewGame()

	result := Result{
		Name:     s.Name,
		Expected: s.Expect,
		Moves:    make([]tictactoe.MoveResult, 0, len(s.Moves)),
	}

	for _, move := range s.Moves {
		result.Moves = append(result.Moves, game.PlayTurn(move[0], move[1]))
	}

	result.Game = game.Snapshot()
	result.Actual = outcome(game, player1, player2)

	return result
}

// RunAll - runs every scenario in order.
func RunAll(logger *slog.Logger, scenarios []Scenario, out tictactoe.Display) []Result {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		results = append(results, Run(logger, s, out))
	}

	return results
}

func outcome(game *tictactoe.Game, player1, player2 *entity.Player) string {
	switch winner := game.Winner(); {
	case winner == player1:
		return OutcomePlayer1
	case winner == player2:
		return OutcomePlayer2
	case game.Status() == entity.StatusTied:
		return OutcomeTie
	default:
		return OutcomeOngoing
	}
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}

	return name
}

package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/display"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/scenario"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tui"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/rest"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/socket"
)

// RunServe - serves the hot-seat board to browsers until SIGINT or SIGTERM.
func RunServe(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	clock := quartz.NewReal()
	hub := socket.NewHub(logger, clock, conf.Socket.PingInterval, conf.Socket.WriteWait)
	sinks := []display.EventSink{hub}

	if conf.Redis.Enabled {
		events, closeStorage, err := connectEvents(ctx, logger, conf)
		if err != nil {
			return err
		}
		defer closeStorage()

		sinks = append(sinks, events)
	}

	manager := usecase.NewGameManager(logger, display.NewEventDisplay(logger, clock, sinks...), playerDefaults(conf))
	if _, err := manager.Start(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := rest.New(logger, manager, conf.SocketPort).Start(groupCtx, conf.HTTPPort); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		if err := socket.New(logger, manager, hub).Start(groupCtx, conf.SocketPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
		return nil
	})

	err := group.Wait()
	log.Info("servers stopped")

	return err
}

// RunPlay - hot-seat game in the terminal. Events also go to redis when enabled.
func RunPlay(logger *slog.Logger, conf *config.Config) error {
	screen := tui.NewScreen()
	var board tictactoe.Display = screen

	if conf.Redis.Enabled {
		events, closeStorage, err := connectEvents(context.Background(), logger, conf)
		if err != nil {
			return err
		}
		defer closeStorage()

		board = display.Multi(screen, display.NewEventDisplay(logger, quartz.NewReal(), events))
	}

	manager := usecase.NewGameManager(logger, board, playerDefaults(conf))
	if _, err := manager.Start(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	if _, err := tea.NewProgram(tui.New(logger, manager, screen), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	return nil
}

// RunWatch - prints the events of a game published to redis until interrupted.
func RunWatch(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	if !conf.Redis.Enabled {
		return apperror.ErrRedisDisabled
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	events, closeStorage, err := connectEvents(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	feed, err := events.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("could not follow the game: %w", err)
	}

	log.Info("watching", "channel", conf.Redis.Channel)

	text := display.NewText(out)
	for event := range feed {
		display.Replay(text, event)
	}

	return nil
}

// RunScript - plays scripted games from path, or the built-in ones when path is empty.
func RunScript(logger *slog.Logger, path string, verbose bool, out io.Writer) error {
	scenarios, err := loadScenarios(path)
	if err != nil {
		return err
	}

	var board tictactoe.Display
	if verbose {
		board = display.NewText(out)
	}

	output := termenv.NewOutput(out)
	failed := 0

	for _, s := range scenarios {
		if verbose {
			_, _ = fmt.Fprintf(out, "== %s\n", s.Name)
		}

		result := scenario.Run(logger, s, board)
		if result.Passed() {
			_, _ = fmt.Fprintf(out, "%s %s (%s)\n", output.String("PASS").Foreground(output.Color("#04B575")), result.Name, result.Actual)
			continue
		}

		failed++
		_, _ = fmt.Fprintf(out, "%s %s: expected %s, got %s\n",
			output.String("FAIL").Foreground(output.Color("#FF6B6B")).Bold(), result.Name, result.Expected, result.Actual)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", apperror.ErrScenarioFailed, failed, len(scenarios))
	}

	return nil
}

func loadScenarios(path string) ([]scenario.Scenario, error) {
	if path == "" {
		return scenario.Defaults()
	}

	return scenario.Load(path)
}

func connectEvents(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.EventRepository, func(), error) {
	log := logger.With("component", "app")

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewEventRepository(logger, redisStorage.Connection, conf.Redis.Channel), closeStorage, nil
}

func playerDefaults(conf *config.Config) entity.PlayerForm {
	return entity.PlayerForm{
		Player1Name:  conf.Players.Player1.Name,
		Player1Color: conf.Players.Player1.Color,
		Player2Name:  conf.Players.Player2.Name,
		Player2Color: conf.Players.Player2.Color,
	}
}

func signalContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()

	return ctx, cancel
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	app "github.com/rocketscienceinc/tictactoe-hotseat/internal"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/logger"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Config  string           `short:"c" default:"config.yml" type:"path" help:"Path to the YAML configuration file"`
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Play   PlayCmd   `cmd:"" default:"1" help:"Play hot-seat in the terminal"`
	Serve  ServeCmd  `cmd:"" help:"Serve the board to browsers over websocket"`
	Watch  WatchCmd  `cmd:"" help:"Follow a game through the redis event feed"`
	Script ScriptCmd `cmd:"" help:"Play scripted games and check their outcome"`
}

type PlayCmd struct{}

func (that *PlayCmd) Run(logger *slog.Logger, conf *config.Config) error {
	return app.RunPlay(logger, conf)
}

type ServeCmd struct{}

func (that *ServeCmd) Run(logger *slog.Logger, conf *config.Config) error {
	return app.RunServe(logger, conf)
}

type WatchCmd struct{}

func (that *WatchCmd) Run(logger *slog.Logger, conf *config.Config) error {
	return app.RunWatch(logger, conf, os.Stdout)
}

type ScriptCmd struct {
	File    string `arg:"" optional:"" type:"existingfile" help:"HCL scenario file, the built-in scenarios when omitted"`
	Verbose bool   `help:"Print every board and status line"`
}

func (that *ScriptCmd) Run(logger *slog.Logger) error {
	return app.RunScript(logger, that.File, that.Verbose, os.Stdout)
}

// main - is the entry point of the application. It parses the command line, loads the configuration and runs the command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tictactoe"),
		kong.Description("Two-player hot-seat tic-tac-toe"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	conf := config.MustLoad(cli.Config)

	logOutput, closeLog := initLogOutput(conf, ctx.Command())
	defer closeLog()

	if err := ctx.Run(initLogger(conf, logOutput), conf); err != nil {
		panic(fmt.Errorf("%s failed: %w", ctx.Command(), err))
	}
}

// initLogOutput - the terminal UI owns the screen, so play only logs to the log file.
func initLogOutput(conf *config.Config, command string) (io.Writer, func()) {
	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		return file, func() { _ = file.Close() }
	}

	if command == "play" {
		return io.Discard, func() {}
	}

	return os.Stderr, func() {}
}

// initialize logger.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	return logger.New(w, conf.LogLevel, conf.LogFormat)
}

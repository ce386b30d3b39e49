package socket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	ConfigurePlayers(form entity.PlayerForm) (entity.GameSnapshot, error)
	NewGame() (entity.GameSnapshot, error)
	MakeTurn(row, col int) (entity.GameSnapshot, tictactoe.MoveResult, error)
	Snapshot() (entity.GameSnapshot, error)
}

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	hub      *Hub
	upgrader websocket.Upgrader

	handlers map[string]func(c *client, message *Message) error
}

func New(logger *slog.Logger, uGame uGame, hub *Hub) *Server {
	server := &Server{
		logger: logger.With("component", "socket_server"),
		uGame:  uGame,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the board is served to any page; there is no session to protect
			CheckOrigin: func(*http.Request) bool { return true },
		},
		handlers: make(map[string]func(*client, *Message) error),
	}

	server.handlers[ActionState] = server.handleState
	server.handlers[ActionNewGame] = server.handleNewGame
	server.handlers[ActionTurn] = server.handleTurn
	server.handlers[ActionSetPlayers] = server.handleSetPlayers

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - serves websockets on port until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		that.hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down", "error", err)
		}
	}()

	that.logger.Info("websocket server started", "port", port)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection and starts the client pumps.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		that.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	c := that.hub.register(conn)

	go c.writePump()
	go c.readPump(that.handleMessage)
}

// handleMessage - processes one message from the client.
func (that *Server) handleMessage(c *client, raw []byte) {
	log := c.logger.With("method", "handleMessage")

	var message Message
	if err := json.Unmarshal(raw, &message); err != nil {
		log.Warn("failed to unmarshal message", "error", err)
		that.sendError(c, ActionError, "malformed message")
		return
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unsupported action", "error", fmt.Errorf("%w: %s", apperror.ErrUnknownAction, message.Action))
		that.sendError(c, message.Action, apperror.ErrUnknownAction.Error())
		return
	}

	if err := handler(c, &message); err != nil {
		log.Error("error processing message", "action", message.Action, "error", err)
	}
}

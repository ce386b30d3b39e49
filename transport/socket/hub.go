package socket

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Hub keeps the connected browsers and broadcasts game events to them.
// It is an event sink of the event display.
type Hub struct {
	logger       *slog.Logger
	clock        quartz.Clock
	pingInterval time.Duration
	writeWait    time.Duration

	mu      sync.RWMutex
	clients map[string]*client
}

func NewHub(logger *slog.Logger, clock quartz.Clock, pingInterval, writeWait time.Duration) *Hub {
	return &Hub{
		logger:       logger.With("component", "socket_hub"),
		clock:        clock,
		pingInterval: pingInterval,
		writeWait:    writeWait,
		clients:      make(map[string]*client),
	}
}

// Publish - broadcasts the event to every connected client. Slow clients are dropped.
func (that *Hub) Publish(_ context.Context, event *entity.Event) error {
	message, err := newMessage(ActionEvent, event)
	if err != nil {
		return err
	}

	that.mu.RLock()
	clients := make([]*client, 0, len(that.clients))
	for _, c := range that.clients {
		clients = append(clients, c)
	}
	that.mu.RUnlock()

	for _, c := range clients {
		c.queue(message)
	}

	return nil
}

func (that *Hub) ClientCount() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.clients)
}

// Close - disconnects every client.
func (that *Hub) Close() {
	that.mu.Lock()
	clients := that.clients
	that.clients = make(map[string]*client)
	that.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

func (that *Hub) register(conn *websocket.Conn) *client {
	c := &client{
		id:     uuid.NewString(),
		conn:   conn,
		hub:    that,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		ticker: that.clock.NewTicker(that.pingInterval, "socket", "ping"),
	}
	c.logger = that.logger.With("client", c.id)

	that.mu.Lock()
	that.clients[c.id] = c
	total := len(that.clients)
	that.mu.Unlock()

	c.logger.Info("client connected", "total", total)

	return c
}

func (that *Hub) unregister(c *client) {
	that.mu.Lock()
	_, ok := that.clients[c.id]
	delete(that.clients, c.id)
	total := len(that.clients)
	that.mu.Unlock()

	if ok {
		c.logger.Info("client disconnected", "total", total)
	}

	c.close()
}

package socket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

type client struct {
	id     string
	logger *slog.Logger
	conn   *websocket.Conn
	hub    *Hub

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	ticker    *quartz.Ticker
}

// queue - never blocks the game; a client that cannot keep up is disconnected.
func (that *client) queue(message []byte) {
	select {
	case <-that.done:
	case that.send <- message:
	default:
		that.logger.Warn("send buffer full, closing connection")
		go that.hub.unregister(that)
	}
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		that.ticker.Stop()
		_ = that.conn.Close()
	})
}

// readPump - reads messages until the peer goes away. Deadlines on the
// connection are wall-clock.
func (that *client) readPump(handle func(c *client, message []byte)) {
	defer that.hub.unregister(that)

	pongWait := that.hub.pingInterval * 10 / 9

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				that.logger.Warn("unexpected close", "error", err)
			}
			return
		}

		handle(that, message)
	}
}

func (that *client) writePump() {
	defer that.hub.unregister(that)

	for {
		select {
		case <-that.done:
			return

		case message := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.hub.writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				that.logger.Error("failed to write message", "error", err)
				return
			}

		case <-that.ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.hub.writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

package socket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/display"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const (
	testPingInterval = 30 * time.Second
	testWriteWait    = time.Second
	readTimeout      = 5 * time.Second
)

type testServer struct {
	hub   *Hub
	clock *quartz.Mock
	url   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := quartz.NewMock(t)

	hub := NewHub(logger, clock, testPingInterval, testWriteWait)
	manager := usecase.NewGameManager(logger, display.NewEventDisplay(logger, clock, hub), entity.PlayerForm{})
	_, err := manager.Start()
	require.NoError(t, err)

	srv := httptest.NewServer(New(logger, manager, hub).Handler())
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})

	return &testServer{
		hub:   hub,
		clock: clock,
		url:   "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws",
	}
}

func (that *testServer) dial(t *testing.T) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(that.url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return that.hub.ClientCount() > 0 }, readTimeout, 10*time.Millisecond)

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: raw}))
}

func read(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(readTimeout)))

	var message Message
	require.NoError(t, conn.ReadJSON(&message))

	return message
}

// readUntil - skips broadcast events until the reply to action arrives.
func readUntil(t *testing.T, conn *websocket.Conn, action string) (ResponsePayload, []*entity.Event) {
	t.Helper()

	var events []*entity.Event
	for {
		message := read(t, conn)

		if message.Action == ActionEvent {
			var event entity.Event
			require.NoError(t, json.Unmarshal(message.Payload, &event))
			events = append(events, &event)
			continue
		}

		require.Equal(t, action, message.Action)

		var payload ResponsePayload
		require.NoError(t, json.Unmarshal(message.Payload, &payload))

		return payload, events
	}
}

func TestServer_State(t *testing.T) {
	// Given: a running session and a connected browser
	ts := newTestServer(t)
	conn := ts.dial(t)

	// When: the state is requested
	send(t, conn, ActionState, nil)

	// Then: the fresh game comes back
	payload, _ := readUntil(t, conn, ActionState)
	require.NotNil(t, payload.Game)
	assert.Equal(t, entity.StatusAwaitingMove, payload.Game.Status)
	assert.Equal(t, entity.DefaultPlayer1Name, payload.Game.Turn.Name)
	assert.Empty(t, payload.Error)
}

func TestServer_Turn(t *testing.T) {
	t.Run("Turn is played and the display events are broadcast", func(t *testing.T) {
		// Given: two connected browsers
		ts := newTestServer(t)
		player := ts.dial(t)
		spectator := ts.dial(t)
		require.Eventually(t, func() bool { return ts.hub.ClientCount() == 2 }, readTimeout, 10*time.Millisecond)

		// When: the first one plays the centre
		send(t, player, ActionTurn, TurnPayload{Row: 2, Col: 2})

		// Then: the player gets the result after the events
		payload, events := readUntil(t, player, ActionTurn)
		assert.Equal(t, "played", payload.Result)
		assert.Equal(t, entity.MarkX, payload.Game.Board.At(2, 2))
		assert.Equal(t, entity.DefaultPlayer2Name, payload.Game.Turn.Name)

		kinds := make([]string, 0, len(events))
		for _, event := range events {
			kinds = append(kinds, event.Kind)
		}
		assert.Equal(t, []string{entity.EventTurn, entity.EventTurn, entity.EventBoard}, kinds)

		// And: the spectator sees the same events
		for range 3 {
			message := read(t, spectator)
			assert.Equal(t, ActionEvent, message.Action)
		}
	})

	t.Run("Occupied cell is reported", func(t *testing.T) {
		ts := newTestServer(t)
		conn := ts.dial(t)

		send(t, conn, ActionTurn, TurnPayload{Row: 1, Col: 1})
		readUntil(t, conn, ActionTurn)
		send(t, conn, ActionTurn, TurnPayload{Row: 1, Col: 1})

		payload, _ := readUntil(t, conn, ActionTurn)
		assert.Equal(t, "occupied", payload.Result)
		assert.Equal(t, entity.DefaultPlayer2Name, payload.Game.Turn.Name)
	})

	t.Run("Out of range cell is reported", func(t *testing.T) {
		ts := newTestServer(t)
		conn := ts.dial(t)

		send(t, conn, ActionTurn, TurnPayload{Row: 0, Col: 4})

		payload, _ := readUntil(t, conn, ActionTurn)
		assert.Equal(t, "out_of_range", payload.Result)
	})

	t.Run("Malformed payload is an error", func(t *testing.T) {
		ts := newTestServer(t)
		conn := ts.dial(t)

		send(t, conn, ActionTurn, "center")

		payload, _ := readUntil(t, conn, ActionTurn)
		assert.NotEmpty(t, payload.Error)
		assert.Nil(t, payload.Game)
	})
}

func TestServer_NewGameAndPlayers(t *testing.T) {
	t.Run("players:set restarts with the submitted players", func(t *testing.T) {
		ts := newTestServer(t)
		conn := ts.dial(t)

		send(t, conn, ActionSetPlayers, entity.PlayerForm{Player1Name: "Alice", Player1Color: "#f00"})

		payload, events := readUntil(t, conn, ActionSetPlayers)
		require.NotNil(t, payload.Game)
		assert.Equal(t, "Alice", payload.Game.Player1.Name)
		assert.Equal(t, "#ff0000", payload.Game.Player1.Color)
		assert.Equal(t, entity.DefaultPlayer2Name, payload.Game.Player2.Name)
		require.NotEmpty(t, events)
		assert.Equal(t, entity.EventEnable, events[len(events)-1].Kind)
	})

	t.Run("players:set with a bad colour is an error", func(t *testing.T) {
		ts := newTestServer(t)
		conn := ts.dial(t)

		send(t, conn, ActionSetPlayers, entity.PlayerForm{Player2Color: "#zzzzzz"})

		payload, _ := readUntil(t, conn, ActionSetPlayers)
		assert.Contains(t, payload.Error, "invalid player color")
	})

	t.Run("game:new clears the board", func(t *testing.T) {
		ts := newTestServer(t)
		conn := ts.dial(t)

		send(t, conn, ActionTurn, TurnPayload{Row: 3, Col: 3})
		readUntil(t, conn, ActionTurn)
		send(t, conn, ActionNewGame, nil)

		payload, _ := readUntil(t, conn, ActionNewGame)
		assert.Equal(t, entity.EmptyCell, payload.Game.Board.At(3, 3))
		assert.Equal(t, entity.DefaultPlayer1Name, payload.Game.Turn.Name)
	})
}

func TestServer_UnknownAction(t *testing.T) {
	ts := newTestServer(t)
	conn := ts.dial(t)

	send(t, conn, "game:join", nil)

	payload, _ := readUntil(t, conn, "game:join")
	assert.Equal(t, "unknown action", payload.Error)
}

func TestHub(t *testing.T) {
	t.Run("Ping is sent on every interval", func(t *testing.T) {
		// Given: a connected client that records pings
		ts := newTestServer(t)
		conn := ts.dial(t)

		pinged := make(chan struct{}, 1)
		conn.SetPingHandler(func(string) error {
			pinged <- struct{}{}
			return nil
		})
		go func() {
			for {
				if _, _, err := conn.NextReader(); err != nil {
					return
				}
			}
		}()

		// When: the clock passes the ping interval
		ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()
		ts.clock.Advance(testPingInterval).MustWait(ctx)

		// Then: the client got a ping
		select {
		case <-pinged:
		case <-ctx.Done():
			t.Fatal("no ping received")
		}
	})

	t.Run("Disconnected clients are forgotten", func(t *testing.T) {
		ts := newTestServer(t)
		conn := ts.dial(t)

		require.NoError(t, conn.Close())

		assert.Eventually(t, func() bool { return ts.hub.ClientCount() == 0 }, readTimeout, 10*time.Millisecond)
	})

	t.Run("Publishing without clients is fine", func(t *testing.T) {
		ts := newTestServer(t)

		err := ts.hub.Publish(context.Background(), &entity.Event{Kind: entity.EventEnable})

		require.NoError(t, err)
	})
}

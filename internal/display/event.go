package display

import (
	"context"
	"log/slog"
	"time"

	"github.com/coder/quartz"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const publishTimeout = 2 * time.Second

type EventSink interface {
	Publish(ctx context.Context, event *entity.Event) error
}

// EventDisplay turns display notifications into events for every sink.
type EventDisplay struct {
	logger *slog.Logger
	clock  quartz.Clock
	sinks  []EventSink
}

func NewEventDisplay(logger *slog.Logger, clock quartz.Clock, sinks ...EventSink) *EventDisplay {
	return &EventDisplay{
		logger: logger.With("component", "event-display"),
		clock:  clock,
		sinks:  sinks,
	}
}

func (that *EventDisplay) Render(board entity.BoardSnapshot) {
	that.emit(&entity.Event{Kind: entity.EventBoard, Board: &board})
}

func (that *EventDisplay) ShowTurn(player *entity.Player) {
	that.emit(&entity.Event{Kind: entity.EventTurn, Player: player.Clone()})
}

func (that *EventDisplay) ShowResult(player1, player2 *entity.Player) {
	that.emit(&entity.Event{Kind: entity.EventResult, Players: []*entity.Player{player1.Clone(), player2.Clone()}})
}

func (that *EventDisplay) Enable() {
	that.emit(&entity.Event{Kind: entity.EventEnable})
}

func (that *EventDisplay) Disable() {
	that.emit(&entity.Event{Kind: entity.EventDisable})
}

func (that *EventDisplay) emit(event *entity.Event) {
	event.At = that.clock.Now()

	for _, sink := range that.sinks {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := sink.Publish(ctx, event); err != nil {
			that.logger.Error("failed to publish event", "kind", event.Kind, "error", err)
		}
		cancel()
	}
}

// Replay - feeds an event back into a display.
func Replay(d tictactoe.Display, event *entity.Event) {
	switch event.Kind {
	case entity.EventBoard:
		if event.Board != nil {
			d.Render(*event.Board)
		}
	case entity.EventTurn:
		d.ShowTurn(event.Player)
	case entity.EventResult:
		var player1, player2 *entity.Player
		if len(event.Players) == 2 {
			player1, player2 = event.Players[0], event.Players[1]
		}
		d.ShowResult(player1, player2)
	case entity.EventEnable:
		d.Enable()
	case entity.EventDisable:
		d.Disable()
	}
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const subscriptionBuffer = 64

// EventRepository carries display events over a redis channel. Nothing is stored.
type EventRepository interface {
	Publish(ctx context.Context, event *entity.Event) error
	Subscribe(ctx context.Context) (<-chan *entity.Event, error)
}

type redisEvents struct {
	logger  *slog.Logger
	client  *redis.Client
	channel string
}

func NewEventRepository(logger *slog.Logger, client *redis.Client, channel string) EventRepository {
	return &redisEvents{
		logger:  logger.With("component", "event_repository", "channel", channel),
		client:  client,
		channel: channel,
	}
}

func (that *redisEvents) Publish(ctx context.Context, event *entity.Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subscribe - the returned channel is closed once ctx is done.
func (that *redisEvents) Subscribe(ctx context.Context) (<-chan *entity.Event, error) {
	sub := that.client.Subscribe(ctx, that.channel)

	// wait for the subscription confirmation so no event published afterwards is missed
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	events := make(chan *entity.Event, subscriptionBuffer)

	go func() {
		defer close(events)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var event entity.Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					that.logger.Warn("skipping malformed event", "error", err)
					continue
				}

				select {
				case events <- &event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

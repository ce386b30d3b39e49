package socket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

func (that *Server) handleState(c *client, message *Message) error {
	snapshot, err := that.uGame.Snapshot()
	if err != nil {
		that.sendError(c, message.Action, err.Error())
		return fmt.Errorf("failed to get game: %w", err)
	}

	return that.sendMessage(c, message.Action, ResponsePayload{Game: &snapshot})
}

func (that *Server) handleNewGame(c *client, message *Message) error {
	snapshot, err := that.uGame.NewGame()
	if err != nil {
		that.sendError(c, message.Action, err.Error())
		return fmt.Errorf("failed to start a new game: %w", err)
	}

	return that.sendMessage(c, message.Action, ResponsePayload{Game: &snapshot})
}

func (that *Server) handleTurn(c *client, message *Message) error {
	var turn TurnPayload
	if err := json.Unmarshal(message.Payload, &turn); err != nil {
		that.sendError(c, message.Action, "row and col are required")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	snapshot, result, err := that.uGame.MakeTurn(turn.Row, turn.Col)
	if err != nil {
		that.sendError(c, message.Action, err.Error())
		return fmt.Errorf("failed make turn: %w", err)
	}

	return that.sendMessage(c, message.Action, ResponsePayload{Game: &snapshot, Result: result.String()})
}

func (that *Server) handleSetPlayers(c *client, message *Message) error {
	var form entity.PlayerForm
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &form); err != nil {
			that.sendError(c, message.Action, "malformed player form")
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	snapshot, err := that.uGame.ConfigurePlayers(form)
	if err != nil {
		that.sendError(c, message.Action, err.Error())
		return fmt.Errorf("failed to configure players: %w", err)
	}

	return that.sendMessage(c, message.Action, ResponsePayload{Game: &snapshot})
}

func (that *Server) sendMessage(c *client, action string, payload ResponsePayload) error {
	message, err := newMessage(action, payload)
	if err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	c.queue(message)

	return nil
}

func (that *Server) sendError(c *client, action, text string) {
	if err := that.sendMessage(c, action, ResponsePayload{Error: text}); err != nil {
		c.logger.Error("failed to send error", "error", err)
	}
}

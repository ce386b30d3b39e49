package socket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	ActionState      = "game:state"
	ActionNewGame    = "game:new"
	ActionTurn       = "game:turn"
	ActionSetPlayers = "players:set"
	ActionEvent      = "game:event"
	ActionError      = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// TurnPayload - 1-based cell coordinates.
type TurnPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type ResponsePayload struct {
	Game   *entity.GameSnapshot `json:"game,omitempty"`
	Result string               `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

func newMessage(action string, payload any) ([]byte, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not marshal payload: %w", err)
	}

	messageJSON, err := json.Marshal(Message{Action: action, Payload: payloadJSON})
	if err != nil {
		return nil, fmt.Errorf("could not marshal message: %w", err)
	}

	return messageJSON, nil
}

package entity

import "time"

const (
	EventBoard   = "board"
	EventTurn    = "turn"
	EventResult  = "result"
	EventEnable  = "enable"
	EventDisable = "disable"
)

// Event is a display notification in wire form.
type Event struct {
	Kind    string         `json:"kind"`
	Board   *BoardSnapshot `json:"board,omitempty"`
	Player  *Player        `json:"player,omitempty"`
	Players []*Player      `json:"players,omitempty"`
	At      time.Time      `json:"at"`
}

package entity

import (
	"fmt"
	"sync/atomic"
)

const (
	DefaultPlayer1Name = "Player 1"
	DefaultPlayer2Name = "Player 2"
)

type Player struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Mark   Marker `json:"mark"`
	Color  string `json:"color,omitempty"`
	Winner bool   `json:"winner"`
}

func (that *Player) Clone() *Player {
	if that == nil {
		return nil
	}

	clone := *that
	return &clone
}

// PlayerSequence hands out player ids. Ids start at 1 and are never reused.
type PlayerSequence struct {
	last atomic.Int64
}

func NewPlayerSequence() *PlayerSequence {
	return &PlayerSequence{}
}

func (that *PlayerSequence) NewPlayer(mark Marker, name, color string) *Player {
	id := int(that.last.Add(1))

	if name == "" {
		name = fmt.Sprintf("Player %d", id)
	}

	return &Player{
		ID:    id,
		Name:  name,
		Mark:  mark,
		Color: color,
	}
}

// PlayerForm is the submitted player configuration.
type PlayerForm struct {
	Player1Name  string `json:"p1_name"`
	Player1Color string `json:"p1_color"`
	Player2Name  string `json:"p2_name"`
	Player2Color string `json:"p2_color"`
}

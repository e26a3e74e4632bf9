package events

import (
	"context"

	"ctchen222/Tic-Tac-Toe/internal/game"
)

// Type names an event emitted while a game or match is played.
type Type string

const (
	GameStarted  Type = "game_started"
	MoveMade     Type = "move_made"
	MoveRejected Type = "move_rejected"
	GameOver     Type = "game_over"
	MatchOver    Type = "match_over"
)

// Event describes something that happened at the table.
type Event struct {
	Type    Type
	MatchID string
	GameID  string
	Board   game.Board
	// Mark is the side that moved, or tried to.
	Mark     game.PlayerMark
	PlayerID string
	Position game.Position
	// Opening is set on the move placed before either source was asked.
	Opening  bool
	Next     game.PlayerMark
	Winner   game.PlayerMark
	Draw     bool
	Reason   string
	Score    *Scoreboard
}

// Scoreboard is the running tally of a match.
type Scoreboard struct {
	Games int
	Draws int
	Wins  map[string]int
}

// NewScoreboard returns an empty tally.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{Wins: make(map[string]int)}
}

// Record adds one finished game to the tally. An empty winnerID is a draw.
func (s *Scoreboard) Record(winnerID string) {
	s.Games++
	if winnerID == "" {
		s.Draws++
		return
	}
	s.Wins[winnerID]++
}

// Listener receives events in the order they happen.
type Listener interface {
	Handle(ctx context.Context, e Event) error
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ctx context.Context, e Event) error

func (f ListenerFunc) Handle(ctx context.Context, e Event) error {
	return f(ctx, e)
}

// Multi dispatches each event to every listener and stops at the first error.
type Multi []Listener

func (m Multi) Handle(ctx context.Context, e Event) error {
	for _, l := range m {
		if l == nil {
			continue
		}
		if err := l.Handle(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Discard drops every event.
var Discard Listener = ListenerFunc(func(context.Context, Event) error { return nil })

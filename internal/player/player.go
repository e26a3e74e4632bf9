package player

//go:generate mockgen -source=player.go -destination=mock/move_source_mock.go -package=mock

import (
	"context"

	"ctchen222/Tic-Tac-Toe/internal/game"

	"github.com/google/uuid"
)

// Kind tells bots and humans apart.
type Kind string

const (
	KindBot   Kind = "bot"
	KindHuman Kind = "human"
)

// MoveSource decides the next move for a seat at the table.
type MoveSource interface {
	NextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (game.Position, error)
}

// Player represents one side of a game.
type Player struct {
	ID     string
	Name   string
	Kind   Kind
	Mark   game.PlayerMark
	Source MoveSource
}

// NewPlayer creates a new player. An empty id gets a generated one.
func NewPlayer(id, name string, kind Kind, source MoveSource) *Player {
	if id == "" {
		id = NewID(kind)
	}
	return &Player{
		ID:     id,
		Name:   name,
		Kind:   kind,
		Source: source,
	}
}

// NewID returns "bot-<8 hex>" for bots and a full UUID for humans.
func NewID(kind Kind) string {
	if kind == KindBot {
		return "bot-" + uuid.New().String()[:8]
	}
	return uuid.New().String()
}

// IsBot reports whether the player is driven by the search.
func (p *Player) IsBot() bool {
	return p.Kind == KindBot
}

func (p *Player) String() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

package proto

import "ctchen222/Tic-Tac-Toe/internal/game"

// Message types written by the JSON renderer.
const (
	TypeStart    = "start"
	TypeMove     = "move"
	TypeRejected = "rejected"
	TypeGameOver = "game_over"
	TypeMatch    = "match_over"
)

// GameMessage reports the state of a game after something happened in it.
type GameMessage struct {
	Type     string              `json:"type" validate:"required,oneof=start move rejected game_over"`
	MatchID  string              `json:"matchId,omitempty"`
	GameID   string              `json:"gameId" validate:"required"`
	Board    [][]game.PlayerMark `json:"board"`
	PlayerID string              `json:"playerId,omitempty"`
	Mark     game.PlayerMark     `json:"mark,omitempty"`
	Position []int               `json:"position,omitempty" validate:"omitempty,len=2,dive,min=0,max=2"`
	Opening  bool                `json:"opening,omitempty"`
	Next     game.PlayerMark     `json:"next,omitempty"`
	Winner   game.PlayerMark     `json:"winner,omitempty"`
	Draw     bool                `json:"draw,omitempty"`
	Reason   string              `json:"reason,omitempty"`
}

// MatchMessage carries the final score of a series.
type MatchMessage struct {
	Type    string         `json:"type" validate:"required,eq=match_over"`
	MatchID string         `json:"matchId" validate:"required"`
	Games   int            `json:"games" validate:"min=0"`
	Draws   int            `json:"draws" validate:"min=0,ltefield=Games"`
	Wins    map[string]int `json:"wins"`
}

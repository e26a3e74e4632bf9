package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"

	"ctchen222/Tic-Tac-Toe/internal/events"
	"ctchen222/Tic-Tac-Toe/internal/game"
	"ctchen222/Tic-Tac-Toe/internal/validator"
	"ctchen222/Tic-Tac-Toe/pkg/proto"
)

// JSONRenderer writes one proto message per event as a JSON line.
type JSONRenderer struct {
	enc *json.Encoder
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

// Handle implements events.Listener.
func (j *JSONRenderer) Handle(_ context.Context, e events.Event) error {
	msg, err := toMessage(e)
	if err != nil {
		return err
	}
	if err := validator.GetValidator().Struct(msg); err != nil {
		return fmt.Errorf("invalid %s message: %w", e.Type, err)
	}
	return j.enc.Encode(msg)
}

func toMessage(e events.Event) (any, error) {
	if e.Type == events.MatchOver {
		msg := proto.MatchMessage{Type: proto.TypeMatch, MatchID: e.MatchID, Wins: map[string]int{}}
		if e.Score != nil {
			msg.Games = e.Score.Games
			msg.Draws = e.Score.Draws
			maps.Copy(msg.Wins, e.Score.Wins)
		}
		return msg, nil
	}

	msg := proto.GameMessage{
		MatchID:  e.MatchID,
		GameID:   e.GameID,
		Board:    game.BoardArrayToSlice(e.Board),
		PlayerID: e.PlayerID,
		Mark:     e.Mark,
		Next:     e.Next,
		Winner:   e.Winner,
		Draw:     e.Draw,
		Reason:   e.Reason,
	}
	switch e.Type {
	case events.GameStarted:
		msg.Type = proto.TypeStart
	case events.MoveMade:
		msg.Type = proto.TypeMove
		msg.Position = []int{e.Position.Row, e.Position.Col}
		msg.Opening = e.Opening
	case events.MoveRejected:
		msg.Type = proto.TypeRejected
	case events.GameOver:
		msg.Type = proto.TypeGameOver
	default:
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}
	return msg, nil
}

package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe/internal/events"
	"ctchen222/Tic-Tac-Toe/internal/game"
	"ctchen222/Tic-Tac-Toe/internal/player"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// MaxInvalidMoves is how many rejected moves in a row a player may submit.
const MaxInvalidMoves = 3

var (
	ErrTooManyInvalidMoves = errors.New("too many invalid moves")
	ErrInvalidFirstMover   = errors.New("first mover must be X or O")
)

var tracer = otel.Tracer("room")

// Room hosts a single game between two players.
type Room struct {
	ID       string
	MatchID  string
	Players  map[game.PlayerMark]*player.Player
	Game     *game.Game
	listener events.Listener
	opening  *game.Position
}

// Option configures a Room.
type Option func(*Room)

// WithOpening makes the first mover start on p without asking its source.
func WithOpening(p game.Position) Option {
	return func(r *Room) {
		r.opening = &p
	}
}

// WithMatchID tags every event of the room with the surrounding match.
func WithMatchID(id string) Option {
	return func(r *Room) {
		r.MatchID = id
	}
}

// NewRoom creates a new game room. The players are assigned their marks here.
func NewRoom(id string, playerX, playerO *player.Player, first game.PlayerMark, listener events.Listener, opts ...Option) *Room {
	if id == "" {
		id = uuid.New().String()
	}
	if listener == nil {
		listener = events.Discard
	}
	playerX.Mark = game.PlayerX
	playerO.Mark = game.PlayerO

	r := &Room{
		ID: id,
		Players: map[game.PlayerMark]*player.Player{
			game.PlayerX: playerX,
			game.PlayerO: playerO,
		},
		Game:     game.NewGame(first),
		listener: listener,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run plays the game to the end and returns the finished game.
func (r *Room) Run(ctx context.Context) (*game.Game, error) {
	ctx, span := tracer.Start(ctx, "room.Run", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player.x", r.Players[game.PlayerX].ID),
		attribute.String("player.o", r.Players[game.PlayerO].ID),
		attribute.String("game.first", string(r.Game.CurrentTurn)),
	))
	defer span.End()

	if !r.Game.CurrentTurn.Valid() {
		err := fmt.Errorf("room %s: %w", r.ID, ErrInvalidFirstMover)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid first mover")
		return nil, err
	}

	slog.InfoContext(ctx, "Game started", "room.id", r.ID, "first", r.Game.CurrentTurn)
	if err := r.emit(ctx, events.Event{Type: events.GameStarted, Next: r.Game.CurrentTurn}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to announce game start")
		return nil, err
	}

	if r.opening != nil {
		if err := r.applyOpening(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Invalid opening")
			return nil, err
		}
	}

	for !r.Game.IsOver() {
		if err := r.playTurn(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Turn failed")
			return nil, err
		}
	}

	result := r.Game.Result()
	span.SetAttributes(attribute.String("game.result", string(result)), attribute.Int("game.moves", r.Game.Moves))
	slog.InfoContext(ctx, "Game over", "room.id", r.ID, "result", result, "moves", r.Game.Moves)

	if err := r.emit(ctx, events.Event{
		Type:   events.GameOver,
		Winner: r.Game.Winner,
		Draw:   r.Game.IsDraw(),
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to announce game over")
		return r.Game, err
	}
	return r.Game, nil
}

// Winner returns the winning player, or nil for a draw or an unfinished game.
func (r *Room) Winner() *player.Player {
	if r.Game.Winner == game.None {
		return nil
	}
	return r.Players[r.Game.Winner]
}

func (r *Room) applyOpening(ctx context.Context) error {
	mark := r.Game.CurrentTurn
	p := r.Players[mark]
	pos := *r.opening
	if err := r.Game.Move(pos.Row, pos.Col); err != nil {
		return fmt.Errorf("opening %v: %w", pos, err)
	}
	slog.DebugContext(ctx, "Opening placed", "room.id", r.ID, "player.id", p.ID, "row", pos.Row, "col", pos.Col)
	return r.emit(ctx, events.Event{
		Type:     events.MoveMade,
		Mark:     mark,
		PlayerID: p.ID,
		Position: pos,
		Next:     r.Game.CurrentTurn,
		Opening:  true,
	})
}

// playTurn asks the current player for a move until one is accepted.
func (r *Room) playTurn(ctx context.Context) error {
	mark := r.Game.CurrentTurn
	current := r.Players[mark]

	ctx, span := tracer.Start(ctx, "room.playTurn", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player.id", current.ID),
		attribute.String("player.mark", string(mark)),
		attribute.Int("game.moves", r.Game.Moves),
	))
	defer span.End()

	for rejected := 0; ; {
		pos, err := current.Source.NextMove(ctx, r.Game.Board, mark)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Move source failed")
			return fmt.Errorf("player %s: %w", current.ID, err)
		}

		if err := r.Game.Move(pos.Row, pos.Col); err != nil {
			rejected++
			slog.WarnContext(ctx, "invalid move from player", "player.id", current.ID, "row", pos.Row, "col", pos.Col, "error", err)
			span.SetAttributes(attribute.Bool("move.valid", false))
			if emitErr := r.emit(ctx, events.Event{
				Type:     events.MoveRejected,
				Mark:     mark,
				PlayerID: current.ID,
				Position: pos,
				Next:     mark,
				Reason:   err.Error(),
			}); emitErr != nil {
				span.RecordError(emitErr)
				span.SetStatus(codes.Error, "Failed to announce rejected move")
				return emitErr
			}
			if rejected >= MaxInvalidMoves {
				span.SetStatus(codes.Error, "Too many invalid moves")
				return fmt.Errorf("player %s: %w", current.ID, ErrTooManyInvalidMoves)
			}
			continue
		}

		span.SetAttributes(
			attribute.Bool("move.valid", true),
			attribute.Int("move.row", pos.Row),
			attribute.Int("move.col", pos.Col),
		)
		slog.DebugContext(ctx, "Move applied", "room.id", r.ID, "player.id", current.ID, "mark", mark, "row", pos.Row, "col", pos.Col)
		return r.emitMove(ctx, current, mark, pos)
	}
}

func (r *Room) emitMove(ctx context.Context, p *player.Player, mark game.PlayerMark, pos game.Position) error {
	next := r.Game.CurrentTurn
	if r.Game.IsOver() {
		next = game.None
	}
	return r.emit(ctx, events.Event{
		Type:     events.MoveMade,
		Mark:     mark,
		PlayerID: p.ID,
		Position: pos,
		Next:     next,
		Winner:   r.Game.Winner,
	})
}

// emit stamps e with the room's identity and current board.
func (r *Room) emit(ctx context.Context, e events.Event) error {
	e.GameID = r.ID
	e.MatchID = r.MatchID
	e.Board = r.Game.Board
	if err := r.listener.Handle(ctx, e); err != nil {
		return fmt.Errorf("room %s: deliver %s: %w", r.ID, e.Type, err)
	}
	return nil
}

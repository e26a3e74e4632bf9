package match

import (
	"context"
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe/internal/events"
	"ctchen222/Tic-Tac-Toe/internal/game"
	"ctchen222/Tic-Tac-Toe/internal/player"
	"ctchen222/Tic-Tac-Toe/internal/room"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("match")

// FirstMoverFunc picks who starts game number gameNo (1-based).
type FirstMoverFunc func(ctx context.Context, gameNo int) (game.PlayerMark, error)

// OpeningFunc may return a cell the first mover is placed on without being asked.
type OpeningFunc func(gameNo int) *game.Position

// AgainFunc decides whether another game is played after score was updated.
type AgainFunc func(ctx context.Context, score *events.Scoreboard) (bool, error)

// Match plays a series of games between the same two players.
type Match struct {
	ID      string
	PlayerX *player.Player
	PlayerO *player.Player
	Score   *events.Scoreboard

	FirstMover FirstMoverFunc
	Opening    OpeningFunc
	Again      AgainFunc

	listener events.Listener
}

// NewMatch creates a single-game match where X moves first.
// The hooks can be replaced before calling Run.
func NewMatch(playerX, playerO *player.Player, listener events.Listener) *Match {
	if listener == nil {
		listener = events.Discard
	}
	return &Match{
		ID:         uuid.New().String(),
		PlayerX:    playerX,
		PlayerO:    playerO,
		Score:      events.NewScoreboard(),
		FirstMover: Always(game.PlayerX),
		Opening:    NoOpening,
		Again:      UpTo(1),
		listener:   listener,
	}
}

// Run plays games until Again says stop, then announces the final score.
func (m *Match) Run(ctx context.Context) (*events.Scoreboard, error) {
	ctx, span := tracer.Start(ctx, "match.Run", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("player.x", m.PlayerX.ID),
		attribute.String("player.o", m.PlayerO.ID),
	))
	defer span.End()

	for gameNo := 1; ; gameNo++ {
		if err := m.playOne(ctx, gameNo); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Game failed")
			return m.Score, err
		}

		again, err := m.Again(ctx, m.Score)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Rematch decision failed")
			return m.Score, fmt.Errorf("match %s: %w", m.ID, err)
		}
		if !again {
			break
		}
	}

	span.SetAttributes(attribute.Int("match.games", m.Score.Games), attribute.Int("match.draws", m.Score.Draws))
	slog.InfoContext(ctx, "Match over", "match.id", m.ID, "games", m.Score.Games, "draws", m.Score.Draws)

	if err := m.listener.Handle(ctx, events.Event{
		Type:    events.MatchOver,
		MatchID: m.ID,
		Score:   m.Score,
	}); err != nil {
		return m.Score, fmt.Errorf("match %s: deliver %s: %w", m.ID, events.MatchOver, err)
	}
	return m.Score, nil
}

func (m *Match) playOne(ctx context.Context, gameNo int) error {
	first, err := m.FirstMover(ctx, gameNo)
	if err != nil {
		return fmt.Errorf("match %s: game %d: %w", m.ID, gameNo, err)
	}

	opts := []room.Option{room.WithMatchID(m.ID)}
	if pos := m.Opening(gameNo); pos != nil {
		opts = append(opts, room.WithOpening(*pos))
	}

	r := room.NewRoom("", m.PlayerX, m.PlayerO, first, m.listener, opts...)
	slog.DebugContext(ctx, "Starting game", "match.id", m.ID, "room.id", r.ID, "game", gameNo)
	if _, err := r.Run(ctx); err != nil {
		return fmt.Errorf("match %s: game %d: %w", m.ID, gameNo, err)
	}

	winnerID := ""
	if w := r.Winner(); w != nil {
		winnerID = w.ID
	}
	m.Score.Record(winnerID)
	return nil
}

// Always lets mark start every game.
func Always(mark game.PlayerMark) FirstMoverFunc {
	return func(context.Context, int) (game.PlayerMark, error) {
		return mark, nil
	}
}

// NoOpening leaves every first move to the first mover's source.
func NoOpening(int) *game.Position {
	return nil
}

// RandomOpening places the first mover on a random cell in every game.
func RandomOpening(int) *game.Position {
	p := game.RandomPosition()
	return &p
}

// UpTo keeps playing until n games were recorded.
func UpTo(n int) AgainFunc {
	return func(_ context.Context, score *events.Scoreboard) (bool, error) {
		return score.Games < n, nil
	}
}

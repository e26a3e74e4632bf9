package bot

import (
	"context"
	"errors"
	"time"

	"ctchen222/Tic-Tac-Toe/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNoMoves     = errors.New("no moves available")
	ErrInvalidMark = errors.New("mark must be X or O")
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")

	searchNodes, _    = meter.Int64Counter("bot.search.nodes", metric.WithDescription("Positions visited by the minimax search"))
	searchDuration, _ = meter.Float64Histogram("bot.search.duration", metric.WithUnit("ms"), metric.WithDescription("Wall time of one best-move search"))
)

// Result is the outcome of a best-move search.
type Result struct {
	Position game.Position
	// Score is the value of Position for the searching side: 1 win, 0 draw, -1 loss.
	Score int
	Nodes int
}

type searcher struct {
	nodes int
}

// minimax scores board for mover, who is about to play.
func (s *searcher) minimax(board *game.Board, mover game.PlayerMark) int {
	s.nodes++

	if winner := game.CheckWinner(*board); winner != game.None {
		if winner == mover {
			return 1
		}
		return -1
	}

	best := -2
	for idx := range game.Cells {
		r, c := idx/game.Size, idx%game.Size
		if board[r][c] != game.None {
			continue
		}
		board[r][c] = mover
		val := -s.minimax(board, mover.Opponent())
		board[r][c] = game.None

		if val > best {
			best = val
		}
	}

	// Nothing to play and nobody won.
	if best == -2 {
		return 0
	}
	return best
}

// Minimax returns the value of board for mover assuming perfect play from both sides.
func Minimax(board game.Board, mover game.PlayerMark) int {
	s := &searcher{}
	return s.minimax(&board, mover)
}

// FindBestMove searches every empty cell for mark and returns the first one
// with the highest score.
func FindBestMove(board game.Board, mark game.PlayerMark) (Result, error) {
	return FindBestMoveContext(context.Background(), board, mark)
}

// FindBestMoveContext is FindBestMove with tracing and metrics attached to ctx.
func FindBestMoveContext(ctx context.Context, board game.Board, mark game.PlayerMark) (Result, error) {
	ctx, span := tracer.Start(ctx, "bot.FindBestMove", trace.WithAttributes(
		attribute.String("bot.mark", string(mark)),
	))
	defer span.End()

	if !mark.Valid() {
		span.RecordError(ErrInvalidMark)
		span.SetStatus(codes.Error, "Invalid mark")
		return Result{}, ErrInvalidMark
	}
	if game.CheckWinner(board) != game.None || game.IsBoardFull(board) {
		span.SetStatus(codes.Error, "No moves available")
		return Result{}, ErrNoMoves
	}

	start := time.Now()
	s := &searcher{}
	best := Result{Position: game.Position{Row: -1, Col: -1}, Score: -2}

	for _, p := range game.FreePositions(board) {
		board[p.Row][p.Col] = mark
		score := -s.minimax(&board, mark.Opponent())
		board[p.Row][p.Col] = game.None

		if score > best.Score {
			best.Score = score
			best.Position = p
		}
	}
	best.Nodes = s.nodes

	elapsed := time.Since(start)
	attrs := metric.WithAttributes(attribute.String("bot.mark", string(mark)))
	searchNodes.Add(ctx, int64(s.nodes), attrs)
	searchDuration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)

	span.SetAttributes(
		attribute.Int("search.nodes", best.Nodes),
		attribute.Int("search.score", best.Score),
		attribute.Int("move.row", best.Position.Row),
		attribute.Int("move.col", best.Position.Col),
	)
	return best, nil
}

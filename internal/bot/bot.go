package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ctchen222/Tic-Tac-Toe/internal/game"
	"ctchen222/Tic-Tac-Toe/internal/player"
)

// Bot plays the best move found by FindBestMove.
// It implements the player.MoveSource interface.
type Bot struct {
	playerID string
	delay    time.Duration // pause after each move so a watcher can follow along
}

// NewBot creates a bot move source that waits delay after every decision.
func NewBot(playerID string, delay time.Duration) *Bot {
	return &Bot{
		playerID: playerID,
		delay:    delay,
	}
}

// NextMove searches the board for mark and returns the chosen cell.
func (b *Bot) NextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (game.Position, error) {
	slog.DebugContext(ctx, "Bot is thinking...", "player.id", b.playerID, "mark", mark)

	res, err := FindBestMoveContext(ctx, board, mark)
	if err != nil {
		return game.Position{}, fmt.Errorf("bot %s: %w", b.playerID, err)
	}
	slog.DebugContext(ctx, "Bot chose move", "player.id", b.playerID, "row", res.Position.Row, "col", res.Position.Col, "score", res.Score, "nodes", res.Nodes)

	if b.delay > 0 {
		timer := time.NewTimer(b.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return game.Position{}, ctx.Err()
		case <-timer.C:
		}
	}
	return res.Position, nil
}

// NewBotPlayer creates a new player instance that is a bot.
func NewBotPlayer(name string, delay time.Duration) *player.Player {
	botID := player.NewID(player.KindBot)
	return player.NewPlayer(botID, name, player.KindBot, NewBot(botID, delay))
}

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"ctchen222/Tic-Tac-Toe/internal/bot"
	"ctchen222/Tic-Tac-Toe/internal/console"
	"ctchen222/Tic-Tac-Toe/internal/events"
	"ctchen222/Tic-Tac-Toe/internal/game"
	"ctchen222/Tic-Tac-Toe/internal/match"
	"ctchen222/Tic-Tac-Toe/internal/player"

	"github.com/spf13/cobra"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play against the bot",
		Long: `Play against a minimax bot on the terminal. Cells are numbered 1 to 9,
left to right and top to bottom. The bot cannot be beaten.`,
		Args: cobra.NoArgs,
		RunE: a.run(a.runPlay),
	}
	cmd.Flags().String("mark", "", "mark you play, X or O (env TICTACTOE_HUMAN_MARK)")
	cmd.Flags().Duration("delay", time.Second, "pause after each bot move (env TICTACTOE_BOT_DELAY)")
	return cmd
}

func (a *app) runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	// Keep stdout to one message per line in JSON mode.
	promptOut := out
	if a.cfg.Output == "json" {
		promptOut = cmd.ErrOrStderr()
	}
	prompter := console.NewPrompter(cmd.InOrStdin(), promptOut)

	humanMark := game.PlayerMark(a.cfg.HumanMark)
	human := player.NewPlayer("", "You", player.KindHuman, console.NewHuman(prompter))
	computer := bot.NewBotPlayer("Bot", a.cfg.BotDelay)

	playerX, playerO := computer, human
	if humanMark == game.PlayerX {
		playerX, playerO = human, computer
	}

	listener, text := a.listener(out, console.WithHuman(humanMark), console.WithPlayers(human, computer))
	if text != nil {
		if err := text.Welcome(); err != nil {
			return err
		}
	}

	m := match.NewMatch(playerX, playerO, listener)
	m.FirstMover = func(ctx context.Context, _ int) (game.PlayerMark, error) {
		first, err := prompter.AskYesNo(ctx, console.QuestionStartFirst)
		if err != nil {
			return game.None, err
		}
		if first {
			return humanMark, nil
		}
		return humanMark.Opponent(), nil
	}
	m.Again = func(ctx context.Context, _ *events.Scoreboard) (bool, error) {
		return prompter.AskYesNo(ctx, "\n"+console.QuestionPlayAgain)
	}

	_, err := m.Run(ctx)
	switch {
	case errors.Is(err, io.EOF):
		slog.InfoContext(ctx, "Input closed, leaving the game")
		return nil
	case errors.Is(err, context.Canceled):
		slog.InfoContext(ctx, "Interrupted, leaving the game")
		return nil
	}
	return err
}

package main

import (
	"time"

	"ctchen222/Tic-Tac-Toe/internal/bot"
	"ctchen222/Tic-Tac-Toe/internal/console"
	"ctchen222/Tic-Tac-Toe/internal/match"

	"github.com/spf13/cobra"
)

func newBotsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bots",
		Short: "Watch two bots play each other",
		Long: `Two minimax bots play a series of games. X opens on a random cell,
then both sides play perfectly, so every game ends in a draw.`,
		Args: cobra.NoArgs,
		RunE: a.run(a.runBots),
	}
	cmd.Flags().Int("games", 1, "number of games to play (env TICTACTOE_GAMES)")
	cmd.Flags().Duration("delay", time.Second, "pause after each bot move (env TICTACTOE_BOT_DELAY)")
	return cmd
}

func (a *app) runBots(cmd *cobra.Command) error {
	x := bot.NewBotPlayer("X bot", a.cfg.BotDelay)
	o := bot.NewBotPlayer("O bot", a.cfg.BotDelay)

	listener, text := a.listener(cmd.OutOrStdout(), console.WithPlayers(x, o))
	if text != nil {
		if err := text.Welcome(); err != nil {
			return err
		}
	}

	m := match.NewMatch(x, o, listener)
	m.Opening = match.RandomOpening
	m.Again = match.UpTo(a.cfg.Games)

	_, err := m.Run(cmd.Context())
	return err
}

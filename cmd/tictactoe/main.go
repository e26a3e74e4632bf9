package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ctchen222/Tic-Tac-Toe/internal/config"
	"ctchen222/Tic-Tac-Toe/internal/console"
	"ctchen222/Tic-Tac-Toe/internal/events"
	"ctchen222/Tic-Tac-Toe/internal/logger"
	"ctchen222/Tic-Tac-Toe/internal/telemetry"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// After the first signal the default handling comes back, so a second Ctrl-C kills the process.
	context.AfterFunc(ctx, stop)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries what the persistent pre-run sets up for every subcommand.
type app struct {
	cfg      config.Config
	shutdown telemetry.ShutdownFunc
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "tictactoe",
		Short:             "Tic-tac-toe against a minimax bot that never loses",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error (env TICTACTOE_LOG_LEVEL)")
	root.PersistentFlags().String("output", "", "output format: text or json (env TICTACTOE_OUTPUT)")

	root.AddCommand(newBotsCmd(a), newPlayCmd(a))
	return root
}

// setup loads the environment, applies the flags that were set and
// starts logging and telemetry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("games") {
		cfg.Games, _ = flags.GetInt("games")
	}
	if flags.Changed("delay") {
		cfg.BotDelay, _ = flags.GetDuration("delay")
	}
	if flags.Changed("mark") {
		cfg.HumanMark, _ = flags.GetString("mark")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger.Init(cfg.SlogLevel(), cmd.ErrOrStderr(), cfg.LogSource)

	shutdown, err := telemetry.InitOtel(cmd.Context(), cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	a.shutdown = shutdown

	slog.DebugContext(cmd.Context(), "Configuration loaded", "command", cmd.Name(), "output", cfg.Output, "games", cfg.Games, "delay", cfg.BotDelay)
	return nil
}

// run wraps a subcommand so telemetry is flushed however it ends.
func (a *app) run(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		defer func() {
			if a.shutdown == nil {
				return
			}
			ctx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), 5*time.Second)
			defer cancel()
			if err := a.shutdown(ctx); err != nil {
				slog.Error("Error shutting down telemetry", "error", err)
			}
		}()
		return fn(cmd)
	}
}

// listener picks the renderer for the configured output. The text renderer
// is also returned so the caller can print its banner.
func (a *app) listener(w io.Writer, opts ...console.TextOption) (events.Listener, *console.TextRenderer) {
	if a.cfg.Output == "json" {
		return console.NewJSONRenderer(w), nil
	}
	text := console.NewTextRenderer(w, opts...)
	return text, text
}

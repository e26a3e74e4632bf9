package config

import (
	"fmt"
	"log/slog"
	"time"

	"ctchen222/Tic-Tac-Toe/internal/validator"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the CLI reads from the environment.
// Command-line flags are applied on top of it.
type Config struct {
	LogLevel  string `env:"TICTACTOE_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	LogSource bool   `env:"TICTACTOE_LOG_SOURCE" envDefault:"false"`

	BotDelay  time.Duration `env:"TICTACTOE_BOT_DELAY" envDefault:"1s" validate:"gte=0s"`
	Games     int           `env:"TICTACTOE_GAMES" envDefault:"1" validate:"min=1"`
	Output    string        `env:"TICTACTOE_OUTPUT" envDefault:"text" validate:"oneof=text json"`
	HumanMark string        `env:"TICTACTOE_HUMAN_MARK" envDefault:"O" validate:"mark"`

	Telemetry Telemetry
}

// Telemetry configures the OpenTelemetry exporters.
type Telemetry struct {
	// Endpoint is the OTLP gRPC collector address. Empty disables export.
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"omitempty,hostname_port"`
	TraceStderr bool   `env:"TICTACTOE_TRACE_STDERR" envDefault:"false"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"tic-tac-toe" validate:"required"`
	Version     string `env:"TICTACTOE_VERSION" envDefault:"v0.1.0"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values, including ones changed by flags after Load.
func (c Config) Validate() error {
	if err := validator.GetValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel converts LogLevel for slog. Unknown values fall back to warn.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// Package config holds the runtime options of the game. Board and tile sizes
// are constants in package types and are deliberately not configurable here.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"gridsnake/game/types"
)

// Frontend names.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Config struct {
	Frontend string
	Tick     time.Duration
	Seed     uint64
	LogLevel string
	LogFile  string
}

func Default() Config {
	return Config{
		Frontend: FrontendWindow,
		Tick:     types.TickInterval,
		LogLevel: "info",
	}
}

// Validate normalises the frontend name and rejects unusable values.
func (c *Config) Validate() error {
	c.Frontend = strings.ToLower(strings.TrimSpace(c.Frontend))
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q (want %s or %s)", c.Frontend, FrontendWindow, FrontendTerminal)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.Tick)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Logger builds a logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

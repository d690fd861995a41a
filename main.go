package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"gridsnake/game"
	"gridsnake/game/config"
	"gridsnake/terminal"
	"gridsnake/ui"
)

const windowTitle = "Snake Game"

func main() {
	_ = godotenv.Load()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	def := config.Default()
	cmd := &cli.Command{
		Name:  "snake",
		Usage: "play Snake in a window or a terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "frontend",
				Value:   def.Frontend,
				Usage:   "window or terminal",
				Sources: cli.EnvVars("SNAKE_FRONTEND"),
			},
			&cli.DurationFlag{
				Name:    "tick",
				Value:   def.Tick,
				Usage:   "time between game updates",
				Sources: cli.EnvVars("SNAKE_TICK"),
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "seed for food placement, 0 seeds from the clock",
				Sources: cli.EnvVars("SNAKE_SEED"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   def.LogLevel,
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "log destination; the terminal frontend logs nowhere without it",
				Sources: cli.EnvVars("SNAKE_LOG_FILE"),
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("snake exited")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Config{
		Frontend: cmd.String("frontend"),
		Tick:     cmd.Duration("tick"),
		Seed:     cmd.Uint64("seed"),
		LogLevel: cmd.String("log-level"),
		LogFile:  cmd.String("log-file"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, closeLog, err := logOutput(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := cfg.Logger(out)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.NewGame(
		game.WithLogger(logger),
		game.WithSeed(cfg.Seed),
		game.WithTick(cfg.Tick),
	)
	logger.Info().Str("frontend", cfg.Frontend).Dur("tick", cfg.Tick).Msg("starting")

	switch cfg.Frontend {
	case config.FrontendTerminal:
		return runTerminal(ctx, g)
	default:
		return runWindow(ctx, g)
	}
}

// logOutput picks the log sink. The terminal frontend owns stdout and stderr,
// so without a log file its logs are discarded.
func logOutput(cfg config.Config) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	if cfg.Frontend == config.FrontendTerminal {
		return io.Discard, func() {}, nil
	}
	return zerolog.ConsoleWriter{Out: os.Stderr}, func() {}, nil
}

func runWindow(ctx context.Context, g *game.Game) error {
	r := ui.NewRenderer(windowTitle)
	defer r.Close()
	return ignoreCancel(g.Run(ctx, r))
}

func runTerminal(ctx context.Context, g *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	t := terminal.New(screen, terminal.DefaultFrame)
	t.Start()
	return ignoreCancel(g.Run(ctx, t))
}

// ignoreCancel treats an interrupt as a normal exit.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

package game

import (
	"time"

	"github.com/rs/zerolog"

	"gridsnake/game/input"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Game owns the session and everything that mutates it. All methods are meant
// to be called from the single loop goroutine.
type Game struct {
	session Session
	queue   *input.Queue
	driver  *Driver
	food    *manager.FoodManager
	stats   *manager.StateManager
	log     zerolog.Logger
	now     func() time.Time
}

type Option func(*Game)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithSeed makes target placement reproducible. Zero seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(g *Game) { g.food = manager.NewFoodManager(types.DefaultGrid, seed) }
}

// WithTick overrides the tick interval.
func WithTick(interval time.Duration) Option {
	return func(g *Game) { g.driver = NewDriver(interval) }
}

// NewGame prepares the first session. The tick driver stays stopped until a
// Play command arrives.
func NewGame(opts ...Option) *Game {
	g := &Game{
		queue:  input.NewQueue(),
		driver: NewDriver(types.TickInterval),
		stats:  manager.NewStateManager(),
		log:    zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.food == nil {
		g.food = manager.NewFoodManager(types.DefaultGrid, 0)
	}
	g.session = NewSession(types.DefaultGrid, g.food)
	return g
}

func (g *Game) Session() Session {
	return g.session
}

func (g *Game) Running() bool {
	return g.driver.Running()
}

func (g *Game) Stats() *manager.StateManager {
	return g.stats
}

// Dispatch applies a command coming from the input surface.
func (g *Game) Dispatch(cmd input.Command) {
	switch cmd {
	case input.Up, input.Down, input.Left, input.Right:
		if g.session.GameOver() {
			return
		}
		if !g.queue.Push(cmd) {
			g.log.Trace().Stringer("cmd", cmd).Msg("input queue full, dropping turn")
		}
	case input.Play:
		g.restart()
	case input.Restart:
		if !g.session.GameOver() {
			g.log.Debug().Msg("restart ignored while the round is in progress")
			return
		}
		g.restart()
	}
}

func (g *Game) restart() {
	g.driver.Stop()
	g.queue.Reset()
	g.session = NewSession(types.DefaultGrid, g.food)
	g.driver.Start(g.now())
	g.log.Info().
		Str("session", g.session.ID.String()).
		Dur("tick", g.driver.Interval()).
		Msg("round started")
}

// Poll runs a tick when one is due and reports whether the session advanced.
// After game over the schedule keeps running but nothing changes.
func (g *Game) Poll(now time.Time) bool {
	if !g.driver.Due(now) {
		return false
	}
	if g.session.GameOver() {
		return false
	}
	g.Tick()
	return true
}

// Tick consumes at most one queued turn and advances the session.
func (g *Game) Tick() {
	if g.session.GameOver() {
		return
	}

	for g.queue.Len() > 0 {
		cmd, _ := g.queue.Pop()
		dir, _ := cmd.Direction()
		if snake, ok := g.session.Snake.Turn(dir); ok {
			g.session.Snake = snake
			break
		}
	}

	next, ate := Update(g.session, g.food)
	g.session = next

	if ate {
		g.log.Debug().
			Int("score", next.Score()).
			Interface("target", next.Target).
			Msg("food eaten")
	}
	if next.GameOver() {
		g.finish()
	}
}

func (g *Game) finish() {
	s := g.session
	best := g.stats.AddRound(manager.Round{
		SessionID: s.ID.String(),
		Score:     s.Score(),
		Ticks:     s.Ticks,
		Cause:     s.Collision,
		EndedAt:   g.now(),
	})
	g.queue.Reset()
	g.log.Info().
		Str("session", s.ID.String()).
		Int("score", s.Score()).
		Int("ticks", s.Ticks).
		Stringer("cause", s.Collision).
		Bool("best", best).
		Int("rounds", g.stats.RoundsPlayed()).
		Msg("game over")
}

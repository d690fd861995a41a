package game

import (
	"context"

	"gridsnake/game/input"
)

// Frontend is a render and input surface. Commands returns the commands
// gathered since the previous call and may block for up to one frame.
type Frontend interface {
	Commands() []input.Command
	Draw(s Session, running bool)
	Closed() bool
}

// Run drives the game until the context is cancelled, the frontend closes or
// a Quit command arrives. Each frame drains input, runs a tick if one is due
// and redraws.
func (g *Game) Run(ctx context.Context, fe Frontend) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if fe.Closed() {
			return nil
		}

		for _, cmd := range fe.Commands() {
			if cmd == input.Quit {
				g.log.Info().Msg("quit requested")
				return nil
			}
			g.Dispatch(cmd)
		}

		g.Poll(g.now())
		fe.Draw(g.session, g.Running())
	}
}

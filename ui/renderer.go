package ui

import (
	"gridsnake/game"
	"gridsnake/game/input"
	"gridsnake/game/types"
	"gridsnake/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

// Renderer is the raylib window frontend. It must be created and used on the
// main goroutine.
type Renderer struct {
	layout render.Layout
	font   int32
}

// NewRenderer opens the window sized for the board plus the PLAY button.
func NewRenderer(title string) *Renderer {
	r := &Renderer{
		layout: render.NewLayout(types.DefaultGrid),
		font:   render.FontSize,
	}
	w, h := r.layout.WindowSize()
	rl.InitWindow(w, h, title)
	rl.SetTargetFPS(targetFPS)
	return r
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func (r *Renderer) Closed() bool {
	return rl.WindowShouldClose()
}

// Commands drains raylib's key-pressed queue, so only key-down events are
// seen and releases never produce a command.
func (r *Renderer) Commands() []input.Command {
	var cmds []input.Command
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if cmd := keyCommand(key); cmd != input.None {
			cmds = append(cmds, cmd)
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		if r.layout.Button().Contains(int32(pos.X), int32(pos.Y)) {
			cmds = append(cmds, input.Play)
		}
	}
	return cmds
}

func keyCommand(key int32) input.Command {
	switch key {
	case rl.KeyUp:
		return input.Up
	case rl.KeyDown:
		return input.Down
	case rl.KeyLeft:
		return input.Left
	case rl.KeyRight:
		return input.Right
	case rl.KeyEnter, rl.KeyKpEnter:
		return input.Restart
	}
	return input.None
}

func (r *Renderer) Draw(s game.Session, running bool) {
	sc := render.Compose(s, running)

	rl.BeginDrawing()
	rl.ClearBackground(color(render.Background))

	// Draw grid lines
	for _, ln := range r.layout.GridLines() {
		rl.DrawLine(ln.X1, ln.Y1, ln.X2, ln.Y2, color(render.GridLine))
	}

	for _, tile := range sc.Tiles {
		fill := render.SnakeFill
		if tile.Kind == render.TargetTile {
			fill = render.TargetFill
		}
		r.drawRaisedTile(r.layout.Cell(tile.Cell), fill)
	}

	if sc.GameOver {
		width := rl.MeasureText(sc.Text, r.font)
		x, y := r.layout.CenteredTextPos(width)
		rl.DrawText(sc.Text, x, y, r.font, color(render.TextColor))
	} else {
		x, y := r.layout.ScorePos()
		rl.DrawText(sc.Text, x, y, r.font, color(render.TextColor))
	}

	r.drawButton()
	rl.EndDrawing()
}

// drawRaisedTile fills the cell and adds a light top-left and dark
// bottom-right edge.
func (r *Renderer) drawRaisedTile(c render.Rect, fill render.RGB) {
	rl.DrawRectangle(c.X, c.Y, c.W, c.H, color(fill))
	light := rl.ColorBrightness(color(fill), 0.4)
	dark := rl.ColorBrightness(color(fill), -0.4)
	rl.DrawLine(c.X, c.Y, c.X+c.W-1, c.Y, light)
	rl.DrawLine(c.X, c.Y, c.X, c.Y+c.H-1, light)
	rl.DrawLine(c.X+c.W-1, c.Y, c.X+c.W-1, c.Y+c.H-1, dark)
	rl.DrawLine(c.X, c.Y+c.H-1, c.X+c.W-1, c.Y+c.H-1, dark)
}

func (r *Renderer) drawButton() {
	b := r.layout.Button()
	rl.DrawRectangle(b.X, b.Y, b.W, b.H, color(render.ButtonFill))
	rl.DrawRectangleLines(b.X, b.Y, b.W, b.H, color(render.GridLine))
	width := rl.MeasureText(render.ButtonLabel, r.font)
	rl.DrawText(render.ButtonLabel, b.X+(b.W-width)/2, b.Y+(b.H-r.font)/2, r.font, color(render.ButtonText))
}

func color(c render.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

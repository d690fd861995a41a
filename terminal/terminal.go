// Package terminal is a tcell frontend that plays the game inside a text
// terminal. Each board cell is two columns wide so cells look square.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/game"
	"gridsnake/game/input"
	"gridsnake/render"
)

// DefaultFrame is how long Commands waits for input before letting the loop
// redraw.
const DefaultFrame = time.Second / 60

const (
	hudRow    = 0
	boardTop  = 1
	cellWidth = 2
	gridDot   = '·'
	helpText  = "space: play  enter: restart  arrows/wasd: move  q: quit"
)

// Terminal implements game.Frontend on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	frame  time.Duration
	closed bool
	styles styles
}

type styles struct {
	base   tcell.Style
	grid   tcell.Style
	target tcell.Style
	snake  tcell.Style
	text   tcell.Style
}

func defaultStyles() styles {
	base := tcell.StyleDefault.Background(rgb(render.Background)).Foreground(tcell.ColorWhite)
	return styles{
		base:   base,
		grid:   base.Foreground(rgb(render.GridLine)),
		target: base.Background(rgb(render.TargetFill)),
		snake:  base.Background(rgb(render.SnakeFill)),
		text:   base.Foreground(rgb(render.TextColor)).Bold(true),
	}
}

func rgb(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// New wraps an initialised screen.
func New(screen tcell.Screen, frame time.Duration) *Terminal {
	if frame <= 0 {
		frame = DefaultFrame
	}
	screen.HideCursor()
	return &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 32),
		frame:  frame,
		styles: defaultStyles(),
	}
}

// Start begins reading screen events. The reader exits once the screen is
// finalised, which also marks the frontend closed.
func (t *Terminal) Start() {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			t.events <- ev
		}
	}()
}

func (t *Terminal) Closed() bool {
	return t.closed
}

// Commands waits up to one frame for the first event and then takes whatever
// else is already queued.
func (t *Terminal) Commands() []input.Command {
	var cmds []input.Command
	timer := time.NewTimer(t.frame)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			t.closed = true
			return nil
		}
		cmds = t.handle(ev, cmds)
	case <-timer.C:
		return nil
	}

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.closed = true
				return cmds
			}
			cmds = t.handle(ev, cmds)
		default:
			return cmds
		}
	}
}

func (t *Terminal) handle(ev tcell.Event, cmds []input.Command) []input.Command {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if cmd := KeyCommand(e); cmd != input.None {
			cmds = append(cmds, cmd)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return cmds
}

// KeyCommand maps a key press to a command. Unmapped keys yield input.None.
func KeyCommand(ev *tcell.EventKey) input.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Up
	case tcell.KeyDown:
		return input.Down
	case tcell.KeyLeft:
		return input.Left
	case tcell.KeyRight:
		return input.Right
	case tcell.KeyEnter:
		return input.Restart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return input.Up
		case 's', 'j':
			return input.Down
		case 'a', 'h':
			return input.Left
		case 'd', 'l':
			return input.Right
		case ' ', 'p':
			return input.Play
		case 'q':
			return input.Quit
		}
	}
	return input.None
}

// Draw paints the scene: HUD row, board, help line.
func (t *Terminal) Draw(s game.Session, running bool) {
	sc := render.Compose(s, running)
	st := t.styles

	t.screen.SetStyle(st.base)
	t.screen.Clear()

	boardCols := sc.Grid.Width * cellWidth
	for y := 0; y < sc.Grid.Height; y++ {
		for x := 0; x < sc.Grid.Width; x++ {
			col, row := x*cellWidth, boardTop+y
			t.screen.SetContent(col, row, gridDot, nil, st.grid)
			t.screen.SetContent(col+1, row, ' ', nil, st.base)
		}
	}

	for _, tile := range sc.Tiles {
		style := st.snake
		if tile.Kind == render.TargetTile {
			style = st.target
		}
		col, row := tile.Cell.X*cellWidth, boardTop+tile.Cell.Y
		t.screen.SetContent(col, row, ' ', nil, style)
		t.screen.SetContent(col+1, row, ' ', nil, style)
	}

	if sc.GameOver {
		col := (boardCols - len(sc.Text)) / 2
		if col < 0 {
			col = 0
		}
		t.drawText(col, boardTop+sc.Grid.Height/2, sc.Text, st.text)
	} else {
		t.drawText(0, hudRow, sc.Text, st.text)
	}
	t.drawText(0, boardTop+sc.Grid.Height, helpText, st.grid)

	t.screen.Show()
}

func (t *Terminal) drawText(col, row int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(col+i, row, r, nil, style)
	}
}

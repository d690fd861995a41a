package render

import "gridsnake/game/types"

// RGB is an opaque colour.
type RGB struct {
	R, G, B uint8
}

var (
	Background = RGB{0x00, 0x00, 0x00}
	GridLine   = RGB{0x33, 0x33, 0x33}
	TargetFill = RGB{0x00, 0x3D, 0xFA}
	SnakeFill  = RGB{0xFF, 0x00, 0xC9}
	TextColor  = RGB{0xFF, 0x00, 0xC9}
	ButtonFill = RGB{0xDD, 0xDD, 0xDD}
	ButtonText = RGB{0x00, 0x00, 0x00}
)

const (
	FontSize     = 16
	ButtonHeight = 40
	ButtonLabel  = "PLAY"
)

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y, W, H int32
}

func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Line is a pixel segment.
type Line struct {
	X1, Y1, X2, Y2 int32
}

// Layout maps grid cells to window pixels for a fixed tile size.
type Layout struct {
	Grid types.Grid
	Tile int32
}

func NewLayout(grid types.Grid) Layout {
	return Layout{Grid: grid, Tile: types.TileSize}
}

func (l Layout) BoardWidth() int32  { return int32(l.Grid.Width) * l.Tile }
func (l Layout) BoardHeight() int32 { return int32(l.Grid.Height) * l.Tile }

// WindowSize includes the PLAY button strip under the board.
func (l Layout) WindowSize() (int32, int32) {
	return l.BoardWidth(), l.BoardHeight() + ButtonHeight
}

func (l Layout) Cell(p types.Point) Rect {
	return Rect{X: int32(p.X) * l.Tile, Y: int32(p.Y) * l.Tile, W: l.Tile, H: l.Tile}
}

// GridLines returns one vertical and one horizontal line per column and row
// boundary, starting at zero.
func (l Layout) GridLines() []Line {
	lines := make([]Line, 0, l.Grid.Width+l.Grid.Height)
	for i := 0; i < l.Grid.Width; i++ {
		x := int32(i) * l.Tile
		lines = append(lines, Line{X1: x, Y1: 0, X2: x, Y2: l.BoardHeight()})
	}
	for i := 0; i < l.Grid.Height; i++ {
		y := int32(i) * l.Tile
		lines = append(lines, Line{X1: 0, Y1: y, X2: l.BoardWidth(), Y2: y})
	}
	return lines
}

// ScorePos is the top-left corner of the in-play score.
func (l Layout) ScorePos() (int32, int32) {
	return l.Tile - FontSize, l.Tile - FontSize
}

// CenteredTextPos centres text of the given pixel width on the board.
func (l Layout) CenteredTextPos(textWidth int32) (int32, int32) {
	return (l.BoardWidth() - textWidth) / 2, (l.BoardHeight() - FontSize) / 2
}

func (l Layout) Button() Rect {
	return Rect{X: 0, Y: l.BoardHeight(), W: l.BoardWidth(), H: ButtonHeight}
}

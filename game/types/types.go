package types

import "time"

// Point is a cell on the board grid.
type Point struct {
	X, Y int
}

// Add returns p moved by the vector d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0,Width) x [0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Unit direction vectors. Y grows downwards, matching screen coordinates.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Opposite reports whether a and b point in exactly opposite directions.
func Opposite(a, b Point) bool {
	if a == (Point{}) {
		return false
	}
	return a.X == -b.X && a.Y == -b.Y
}

// Game constants
const (
	BoardPixels  = 500 // Board edge in pixels
	TileSize     = 25  // Pixels per cell
	TickInterval = 85 * time.Millisecond
)

// DefaultGrid is the fixed 20x20 board.
var DefaultGrid = Grid{Width: BoardPixels / TileSize, Height: BoardPixels / TileSize}

// StartCell is where the head is placed on every (re)start.
var StartCell = Point{X: 5, Y: 5}

package entity

import (
	"slices"

	"gridsnake/game/types"
)

// Snake is an immutable value: every operation returns a new Snake and never
// shares its Body backing array with the receiver.
type Snake struct {
	Head      types.Point
	Body      []types.Point // nearest to the head first
	Direction types.Point
	Alive     bool
}

func NewSnake(start types.Point) Snake {
	return Snake{
		Head:      start,
		Body:      []types.Point{},
		Direction: types.Right, // Start moving right
		Alive:     true,
	}
}

// Length is the number of body segments, which is also the score.
func (s Snake) Length() int {
	return len(s.Body)
}

// Turn changes direction. A reversal or a turn onto the current heading is
// rejected and reported as false.
func (s Snake) Turn(dir types.Point) (Snake, bool) {
	// Prevent 180-degree turns
	if dir == s.Direction || types.Opposite(dir, s.Direction) {
		return s, false
	}
	s.Body = slices.Clone(s.Body)
	s.Direction = dir
	return s, true
}

// Grow appends a segment at the tail end.
func (s Snake) Grow(at types.Point) Snake {
	body := make([]types.Point, len(s.Body), len(s.Body)+1)
	copy(body, s.Body)
	s.Body = append(body, at)
	return s
}

// Shift drags the body one step behind the head: the head's current cell
// becomes the first segment and the last segment is dropped.
func (s Snake) Shift() Snake {
	if len(s.Body) == 0 {
		s.Body = []types.Point{}
		return s
	}
	body := make([]types.Point, 0, len(s.Body))
	body = append(body, s.Head)
	body = append(body, s.Body[:len(s.Body)-1]...)
	s.Body = body
	return s
}

// Advance moves the head one cell along Direction.
func (s Snake) Advance() Snake {
	s.Body = slices.Clone(s.Body)
	s.Head = s.Head.Add(s.Direction)
	return s
}

func (s Snake) Kill() Snake {
	s.Body = slices.Clone(s.Body)
	s.Alive = false
	return s
}

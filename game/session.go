package game

import (
	"github.com/google/uuid"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Placer picks the next target cell.
type Placer interface {
	PlaceTarget() types.Point
}

// Session is one round of play. It is treated as an immutable snapshot:
// Update returns a new Session and never modifies its argument.
type Session struct {
	ID        uuid.UUID
	Grid      types.Grid
	Snake     entity.Snake
	Target    types.Point
	Collision manager.CollisionType
	Ticks     int
}

func NewSession(grid types.Grid, placer Placer) Session {
	return Session{
		ID:     uuid.New(),
		Grid:   grid,
		Snake:  entity.NewSnake(types.StartCell),
		Target: placer.PlaceTarget(),
	}
}

// Score equals the number of body segments.
func (s Session) Score() int {
	return s.Snake.Length()
}

func (s Session) GameOver() bool {
	return !s.Snake.Alive
}

// Update advances the session by one tick and reports whether food was eaten.
//
// The target is tested against the head before it moves, so food is eaten on
// the tick after the head reaches it. The new segment is placed at the target
// cell, and only a body that existed before this tick is shifted.
func Update(s Session, placer Placer) (Session, bool) {
	if !s.Snake.Alive {
		return s, false
	}

	next := s
	next.Ticks++
	hadBody := s.Snake.Length() > 0

	cm := manager.NewCollisionManager(s.Grid)

	ate := cm.IsFoodCollision(s.Snake.Head, s.Target)
	if ate {
		next.Snake = next.Snake.Grow(s.Target)
		next.Target = placer.PlaceTarget()
	}

	if hadBody {
		next.Snake = next.Snake.Shift()
	}

	next.Snake = next.Snake.Advance()

	if c := cm.Check(next.Snake.Head, next.Snake.Body); c != manager.NoCollision {
		next.Snake = next.Snake.Kill()
		next.Collision = c
	}

	return next, ate
}

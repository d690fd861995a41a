package manager

import (
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	WallCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case WallCollision:
		return "wall"
	default:
		return "none"
	}
}

// Collides is the single equality test used for both eating and self hits.
func Collides(a, b types.Point) bool {
	return a.X == b.X && a.Y == b.Y
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check runs the self test before the wall test.
func (cm *CollisionManager) Check(head types.Point, body []types.Point) CollisionType {
	if cm.IsSelfCollision(head, body) {
		return SelfCollision
	}
	if cm.IsWallCollision(head) {
		return WallCollision
	}
	return NoCollision
}

// IsWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision checks the head against every body segment, stopping at the
// first match.
func (cm *CollisionManager) IsSelfCollision(head types.Point, body []types.Point) bool {
	for _, part := range body {
		if Collides(head, part) {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return Collides(pos, food)
}

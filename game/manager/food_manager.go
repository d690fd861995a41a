package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/game/types"
)

// FoodManager places the single target. Placement is uniform over the whole
// grid and does not avoid the snake, so food may appear under the body.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

// NewFoodManager seeds its generator with seed, or with the clock when seed is 0.
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (fm *FoodManager) PlaceTarget() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// Package render turns a game session into a frontend-neutral scene and
// provides the pixel layout shared by the window frontend.
package render

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"
)

type TileKind int

const (
	TargetTile TileKind = iota
	HeadTile
	BodyTile
)

type Tile struct {
	Cell types.Point
	Kind TileKind
}

// Scene is everything a frontend needs to paint one frame.
type Scene struct {
	Grid     types.Grid
	Tiles    []Tile // paint order: target, head, body
	Score    int
	GameOver bool
	Running  bool
	Text     string
}

func ScoreText(score int) string {
	return fmt.Sprintf("SCORE: %d", score)
}

func GameOverText(score int) string {
	return fmt.Sprintf("GAME OVER! SCORE: %d", score)
}

// Compose builds the scene for s. Cells off the board, such as a head that
// has just crossed the wall, are left out.
func Compose(s game.Session, running bool) Scene {
	sc := Scene{
		Grid:     s.Grid,
		Tiles:    make([]Tile, 0, len(s.Snake.Body)+2),
		Score:    s.Score(),
		GameOver: s.GameOver(),
		Running:  running,
	}

	add := func(p types.Point, k TileKind) {
		if s.Grid.Contains(p) {
			sc.Tiles = append(sc.Tiles, Tile{Cell: p, Kind: k})
		}
	}
	add(s.Target, TargetTile)
	add(s.Snake.Head, HeadTile)
	for _, p := range s.Snake.Body {
		add(p, BodyTile)
	}

	if sc.GameOver {
		sc.Text = GameOverText(sc.Score)
	} else {
		sc.Text = ScoreText(sc.Score)
	}
	return sc
}

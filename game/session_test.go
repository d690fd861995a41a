package game

import (
	"slices"
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// fixedPlacer hands out targets in order and repeats the last one.
type fixedPlacer struct {
	targets []types.Point
	calls   int
}

func (p *fixedPlacer) PlaceTarget() types.Point {
	i := p.calls
	if i >= len(p.targets) {
		i = len(p.targets) - 1
	}
	p.calls++
	return p.targets[i]
}

func newTestSession(head, dir types.Point, body []types.Point, target types.Point) Session {
	return Session{
		Grid: types.Grid{Width: 20, Height: 20},
		Snake: entity.Snake{
			Head:      head,
			Body:      body,
			Direction: dir,
			Alive:     true,
		},
		Target: target,
	}
}

func TestNewSession(t *testing.T) {
	p := &fixedPlacer{targets: []types.Point{{X: 12, Y: 3}}}
	s := NewSession(types.DefaultGrid, p)

	if s.Snake.Head != types.StartCell {
		t.Errorf("head = %v, want %v", s.Snake.Head, types.StartCell)
	}
	if s.Snake.Direction != types.Right {
		t.Errorf("direction = %v, want right", s.Snake.Direction)
	}
	if s.Score() != 0 || s.GameOver() {
		t.Errorf("score = %d, game over = %v; want fresh session", s.Score(), s.GameOver())
	}
	if s.Target != (types.Point{X: 12, Y: 3}) {
		t.Errorf("target = %v", s.Target)
	}
	if s.ID.String() == "" {
		t.Error("session id not assigned")
	}
}

func TestUpdate_PlainMove(t *testing.T) {
	body := []types.Point{{X: 4, Y: 5}, {X: 3, Y: 5}}
	s := newTestSession(types.Point{X: 5, Y: 5}, types.Right, body, types.Point{X: 15, Y: 15})
	p := &fixedPlacer{targets: []types.Point{{X: 0, Y: 0}}}

	next, ate := Update(s, p)

	if ate {
		t.Fatal("ate food that was not under the head")
	}
	if next.Snake.Head != (types.Point{X: 6, Y: 5}) {
		t.Errorf("head = %v, want (6,5)", next.Snake.Head)
	}
	want := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}
	if !slices.Equal(next.Snake.Body, want) {
		t.Errorf("body = %v, want %v", next.Snake.Body, want)
	}
	if next.Score() != s.Score() {
		t.Errorf("score changed from %d to %d", s.Score(), next.Score())
	}
	if p.calls != 0 {
		t.Errorf("target replaced %d times without eating", p.calls)
	}
	if next.Ticks != 1 {
		t.Errorf("ticks = %d, want 1", next.Ticks)
	}
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	body := []types.Point{{X: 4, Y: 5}, {X: 3, Y: 5}}
	s := newTestSession(types.Point{X: 5, Y: 5}, types.Right, body, types.Point{X: 5, Y: 5})
	before := slices.Clone(s.Snake.Body)

	next, _ := Update(s, &fixedPlacer{targets: []types.Point{{X: 9, Y: 9}}})

	if !slices.Equal(s.Snake.Body, before) {
		t.Errorf("input body mutated: %v, was %v", s.Snake.Body, before)
	}
	if s.Snake.Head != (types.Point{X: 5, Y: 5}) {
		t.Errorf("input head mutated: %v", s.Snake.Head)
	}
	next.Snake.Body[0] = types.Point{X: -9, Y: -9}
	if s.Snake.Body[0] == next.Snake.Body[0] {
		t.Error("returned body aliases the input body")
	}
}

func TestUpdate_HeadMovesByDirection(t *testing.T) {
	tests := []struct {
		name string
		dir  types.Point
		want types.Point
	}{
		{"up", types.Up, types.Point{X: 10, Y: 9}},
		{"down", types.Down, types.Point{X: 10, Y: 11}},
		{"left", types.Left, types.Point{X: 9, Y: 10}},
		{"right", types.Right, types.Point{X: 11, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(types.Point{X: 10, Y: 10}, tt.dir, nil, types.Point{X: 0, Y: 0})
			next, _ := Update(s, &fixedPlacer{targets: []types.Point{{X: 1, Y: 1}}})
			if next.Snake.Head != tt.want {
				t.Errorf("head = %v, want %v", next.Snake.Head, tt.want)
			}
			if next.GameOver() {
				t.Error("unexpected game over")
			}
		})
	}
}

func TestUpdate_EatWithEmptyBody(t *testing.T) {
	// Head starts on the target: the segment is added at the target cell and
	// the head moves on.
	s := newTestSession(types.Point{X: 6, Y: 5}, types.Right, nil, types.Point{X: 6, Y: 5})
	p := &fixedPlacer{targets: []types.Point{{X: 17, Y: 2}}}

	next, ate := Update(s, p)

	if !ate {
		t.Fatal("expected food to be eaten")
	}
	if next.Score() != 1 {
		t.Errorf("score = %d, want 1", next.Score())
	}
	if !slices.Equal(next.Snake.Body, []types.Point{{X: 6, Y: 5}}) {
		t.Errorf("body = %v, want [(6,5)]", next.Snake.Body)
	}
	if next.Snake.Head != (types.Point{X: 7, Y: 5}) {
		t.Errorf("head = %v, want (7,5)", next.Snake.Head)
	}
	if next.Target != (types.Point{X: 17, Y: 2}) {
		t.Errorf("target = %v, want relocated to (17,2)", next.Target)
	}
	if next.GameOver() {
		t.Error("eating must not end the game")
	}
}

func TestUpdate_EatWithBody(t *testing.T) {
	// Existing body shifts behind the head; the grown segment keeps the old
	// tail so the body is one longer.
	body := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}
	s := newTestSession(types.Point{X: 6, Y: 5}, types.Right, body, types.Point{X: 6, Y: 5})

	next, ate := Update(s, &fixedPlacer{targets: []types.Point{{X: 0, Y: 19}}})

	if !ate {
		t.Fatal("expected food to be eaten")
	}
	want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	if !slices.Equal(next.Snake.Body, want) {
		t.Errorf("body = %v, want %v", next.Snake.Body, want)
	}
	if next.Score() != s.Score()+1 {
		t.Errorf("score = %d, want %d", next.Score(), s.Score()+1)
	}
}

func TestUpdate_TargetMayLandOnSnake(t *testing.T) {
	body := []types.Point{{X: 5, Y: 5}}
	s := newTestSession(types.Point{X: 6, Y: 5}, types.Right, body, types.Point{X: 6, Y: 5})

	// The placer returns a cell that the body will occupy; it is accepted.
	next, _ := Update(s, &fixedPlacer{targets: []types.Point{{X: 6, Y: 5}}})

	if next.Target != (types.Point{X: 6, Y: 5}) {
		t.Errorf("target = %v, want (6,5) even though the snake covers it", next.Target)
	}
	if !slices.Contains(next.Snake.Body, next.Target) {
		t.Errorf("expected target under the body, body = %v", next.Snake.Body)
	}
}

func TestUpdate_ReachTargetThenScore(t *testing.T) {
	// 20x20 board, head (5,5) moving right, target (6,5).
	s := newTestSession(types.Point{X: 5, Y: 5}, types.Right, nil, types.Point{X: 6, Y: 5})
	p := &fixedPlacer{targets: []types.Point{{X: 13, Y: 8}}}

	s, ate := Update(s, p)
	if ate || s.Snake.Head != (types.Point{X: 6, Y: 5}) {
		t.Fatalf("after first tick: head = %v ate = %v; want head on target", s.Snake.Head, ate)
	}

	s, ate = Update(s, p)
	if !ate {
		t.Fatal("food under the head should be eaten on the next tick")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
	if !slices.Equal(s.Snake.Body, []types.Point{{X: 6, Y: 5}}) {
		t.Errorf("body = %v, want segment at (6,5)", s.Snake.Body)
	}
	if s.Target != (types.Point{X: 13, Y: 8}) {
		t.Errorf("target = %v, want (13,8)", s.Target)
	}
}

func TestUpdate_WallCollision(t *testing.T) {
	tests := []struct {
		name string
		head types.Point
		dir  types.Point
		want types.Point
	}{
		{"left edge", types.Point{X: 0, Y: 5}, types.Left, types.Point{X: -1, Y: 5}},
		{"right edge", types.Point{X: 19, Y: 5}, types.Right, types.Point{X: 20, Y: 5}},
		{"top edge", types.Point{X: 7, Y: 0}, types.Up, types.Point{X: 7, Y: -1}},
		{"bottom edge", types.Point{X: 7, Y: 19}, types.Down, types.Point{X: 7, Y: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(tt.head, tt.dir, nil, types.Point{X: 10, Y: 10})
			next, _ := Update(s, &fixedPlacer{targets: []types.Point{{X: 1, Y: 1}}})

			if next.Snake.Head != tt.want {
				t.Errorf("head = %v, want %v", next.Snake.Head, tt.want)
			}
			if !next.GameOver() {
				t.Error("expected game over")
			}
			if next.Collision != manager.WallCollision {
				t.Errorf("collision = %v, want wall", next.Collision)
			}
		})
	}
}

func TestUpdate_SelfCollision(t *testing.T) {
	// Head at (5,5) moving down into (5,6), which the body occupies after the
	// shift: body [(6,5),(6,6),(5,6),(4,6)] -> [(5,5),(6,5),(6,6),(5,6)].
	body := []types.Point{{X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}
	s := newTestSession(types.Point{X: 5, Y: 5}, types.Down, body, types.Point{X: 0, Y: 0})

	next, _ := Update(s, &fixedPlacer{targets: []types.Point{{X: 1, Y: 1}}})

	if !next.GameOver() {
		t.Fatal("expected self collision")
	}
	if next.Collision != manager.SelfCollision {
		t.Errorf("collision = %v, want self", next.Collision)
	}
}

func TestUpdate_NoMutationAfterGameOver(t *testing.T) {
	s := newTestSession(types.Point{X: 0, Y: 5}, types.Left, nil, types.Point{X: 3, Y: 3})
	p := &fixedPlacer{targets: []types.Point{{X: 1, Y: 1}}}

	dead, _ := Update(s, p)
	if !dead.GameOver() {
		t.Fatal("expected game over")
	}

	again, ate := Update(dead, p)
	if ate {
		t.Error("dead snake ate food")
	}
	if again.Snake.Head != dead.Snake.Head || again.Ticks != dead.Ticks || again.Target != dead.Target {
		t.Errorf("state changed after game over: %+v -> %+v", dead, again)
	}
}

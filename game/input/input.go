// Package input turns key presses into game commands and buffers the
// directional ones until the next tick consumes them.
package input

import "gridsnake/game/types"

// Command is a single player intent.
type Command int

const (
	None Command = iota
	Up
	Down
	Left
	Right
	Play    // start or restart at any time
	Restart // only honoured once the game is over
	Quit
)

func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Play:
		return "play"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Direction returns the vector for a directional command.
func (c Command) Direction() (types.Point, bool) {
	switch c {
	case Up:
		return types.Up, true
	case Down:
		return types.Down, true
	case Left:
		return types.Left, true
	case Right:
		return types.Right, true
	}
	return types.Point{}, false
}

// QueueSize bounds how many turns can be buffered between ticks.
const QueueSize = 3

// Queue is a bounded FIFO of directional commands.
type Queue struct {
	items []Command
}

func NewQueue() *Queue {
	return &Queue{items: make([]Command, 0, QueueSize)}
}

// Push adds a directional command. It reports false when the command is not
// directional or the queue is full.
func (q *Queue) Push(c Command) bool {
	if _, ok := c.Direction(); !ok {
		return false
	}
	if len(q.items) >= QueueSize {
		return false
	}
	q.items = append(q.items, c)
	return true
}

// Pop removes the oldest command.
func (q *Queue) Pop() (Command, bool) {
	if len(q.items) == 0 {
		return None, false
	}
	c := q.items[0]
	q.items = append(q.items[:0], q.items[1:]...)
	return c, true
}

func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) Reset() {
	q.items = q.items[:0]
}

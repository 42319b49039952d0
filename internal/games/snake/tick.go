package snake

import (
	"fmt"

	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/grid"
	"github.com/vovakirdan/spritesnake/internal/sprite"
)

// Tick advances the snake by one cell. It does nothing while paused or
// after game over. The only error is a wrapped ErrBoardFull when eaten food
// cannot be replaced; the session is over in that case.
func (e *Engine) Tick() error {
	if e.paused || e.gameOver {
		return nil
	}

	e.shift()

	e.head.Dir = e.heading
	e.head.Step()
	e.head.Tag = sprite.HeadTag(e.heading)

	hb := e.head.Bounds(e.cfg.CellSize)
	if e.hitsBorder(hb) {
		e.gameOver = true
		e.log.Debug("border collision", "head", e.head.Pos, "score", e.score)
	}
	if e.hitsSelf(hb) {
		e.gameOver = true
		e.log.Debug("self collision", "head", e.head.Pos, "score", e.score)
	}

	var err error
	if i := e.foodUnder(hb); i >= 0 {
		err = e.eat(i)
	}

	e.turnAck = true
	e.tick++
	return err
}

// shift drags the tail and body one step towards the head, tail first, so
// every segment reads its predecessor before the predecessor moves.
func (e *Engine) shift() {
	last := len(e.body) - 1

	e.tail.Follow(e.body[last])
	e.tail.Tag = sprite.TailTag(e.tail.Dir)

	for i := last; i > 0; i-- {
		seg, pred := &e.body[i], e.body[i-1]
		seg.Tag = sprite.Orientation(seg.Dir, pred.Dir)
		seg.Follow(pred)
	}

	first := &e.body[0]
	first.Tag = sprite.Orientation(first.Dir, e.heading)
	first.Pos = e.head.Pos
	first.Dir = e.heading
}

func (e *Engine) hitsBorder(r core.Rect) bool {
	for _, b := range e.borders {
		if r.Intersects(b) {
			return true
		}
	}
	return false
}

func (e *Engine) hitsSelf(r core.Rect) bool {
	cell := e.cfg.CellSize
	for _, seg := range e.body {
		if r.Intersects(seg.Bounds(cell)) {
			return true
		}
	}
	return r.Intersects(e.tail.Bounds(cell))
}

// foodUnder returns the index of the first food overlapping r, or -1.
func (e *Engine) foodUnder(r core.Rect) int {
	for i, f := range e.foods {
		if r.Intersects(f.Bounds(e.cfg.CellSize)) {
			return i
		}
	}
	return -1
}

func (e *Engine) eat(i int) error {
	eaten := e.foods[i]
	e.foods = append(e.foods[:i], e.foods[i+1:]...)

	e.grow()
	e.score++
	e.log.Debug("food eaten", "at", eaten.Pos, "score", e.score, "length", e.Length())
	e.reportScore()

	if err := e.spawnFood(); err != nil {
		e.gameOver = true
		return fmt.Errorf("snake: replace food eaten at %v: %w", eaten.Pos, err)
	}
	return nil
}

// grow inserts a straight segment where the tail is and pushes the tail one
// cell further back, leaving every other segment in place.
func (e *Engine) grow() {
	seg := grid.NewMover(e.tail.Pos, e.tail.Dir, sprite.Straight(e.tail.Dir))
	e.body = append(e.body, seg)
	e.tail.StepBack()
}

package snake

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/grid"
	"github.com/vovakirdan/spritesnake/internal/sprite"
)

// spawnFood places one food item on a random free cell.
func (e *Engine) spawnFood() error {
	free := e.FreeCells()
	if len(free) == 0 {
		return ErrBoardFull
	}

	p := free[e.rng.Intn(len(free))]
	e.foods = append(e.foods, grid.NewEntity(p, sprite.Food))
	e.log.Debug("food placed", "at", p, "candidates", len(free))
	return nil
}

// FreeCells lists the cells inside the food margin that hold neither a
// snake segment nor food, in row-major order.
func (e *Engine) FreeCells() []core.Point {
	occupied := e.occupied()

	m := e.cfg.FoodMargin
	free := make([]core.Point, 0, (e.cfg.Cols-2*m)*(e.cfg.Rows-2*m))
	for y := m; y < e.cfg.Rows-m; y++ {
		for x := m; x < e.cfg.Cols-m; x++ {
			if _, taken := occupied.Get(e.cellIndex(core.Pt(x, y))); taken {
				continue
			}
			free = append(free, core.Pt(x, y))
		}
	}
	return free
}

// occupied indexes every on-board cell covered by the snake or by food.
func (e *Engine) occupied() *intmap.Map[int, struct{}] {
	set := intmap.New[int, struct{}](len(e.body) + len(e.foods) + 2)
	mark := func(p core.Point) {
		if p.X < 0 || p.Y < 0 || p.X >= e.cfg.Cols || p.Y >= e.cfg.Rows {
			return
		}
		set.Put(e.cellIndex(p), struct{}{})
	}

	mark(e.head.Pos)
	for _, seg := range e.body {
		mark(seg.Pos)
	}
	mark(e.tail.Pos)
	for _, f := range e.foods {
		mark(f.Pos)
	}
	return set
}

func (e *Engine) cellIndex(p core.Point) int {
	return p.Y*e.cfg.Cols + p.X
}

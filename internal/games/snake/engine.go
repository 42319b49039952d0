// Package snake implements the snake engine: a chain of oriented segments
// that moves one cell per tick, grows on food and dies on borders or itself.
//
// The engine is not safe for concurrent use. Hosts call Tick from their
// timer and apply turns, pause and restart between ticks on the same goroutine.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/grid"
	"github.com/vovakirdan/spritesnake/internal/sprite"
)

// ErrBoardFull is returned when food has to be placed but no free cell is left.
var ErrBoardFull = errors.New("snake: no free cell left for food")

// Config describes the board and the starting snake.
type Config struct {
	Cols        int // Board width in cells
	Rows        int // Board height in cells
	CellSize    int // Edge of one cell in pixels
	InitialBody int // Body segments between head and tail at start
	FoodCount   int // Food items live at the same time
	FoodMargin  int // Cells kept free of food along every edge
}

// DefaultConfig returns a 20x15 board with a one-segment body and one food.
func DefaultConfig() Config {
	return Config{
		Cols:        20,
		Rows:        15,
		CellSize:    sprite.TileSize,
		InitialBody: 1,
		FoodCount:   1,
		FoodMargin:  2,
	}
}

// Validate checks that a snake and at least one food cell fit on the board.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("snake: cell size must be positive, got %d", c.CellSize)
	case c.InitialBody < 1:
		return fmt.Errorf("snake: initial body must have at least one segment, got %d", c.InitialBody)
	case c.FoodCount < 1:
		return fmt.Errorf("snake: food count must be at least 1, got %d", c.FoodCount)
	case c.FoodMargin < 0:
		return fmt.Errorf("snake: food margin must not be negative, got %d", c.FoodMargin)
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("snake: board %dx%d is empty", c.Cols, c.Rows)
	}

	// The snake starts centred: head right of the middle, tail to the left.
	if c.Cols/2+1 >= c.Cols || c.Cols/2-c.InitialBody < 0 {
		return fmt.Errorf("snake: board %d cells wide cannot hold a snake of length %d",
			c.Cols, c.InitialBody+2)
	}
	if c.Cols-2*c.FoodMargin < 1 || c.Rows-2*c.FoodMargin < 1 {
		return fmt.Errorf("snake: food margin %d leaves no room on a %dx%d board",
			c.FoodMargin, c.Cols, c.Rows)
	}
	return nil
}

// Option configures an Engine.
type Option func(*Engine)

// WithScoreReporter registers fn to receive the score at construction,
// on restart and whenever food is eaten.
func WithScoreReporter(fn func(score int)) Option {
	return func(e *Engine) {
		e.report = fn
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSeed makes food placement deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source used for food placement.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// Engine owns one snake session.
type Engine struct {
	cfg    Config
	rng    *rand.Rand
	log    *log.Logger
	report func(int)

	head    grid.Mover
	body    []grid.Mover // body[0] is next to the head
	tail    grid.Mover
	heading core.Direction
	foods   []grid.Entity
	borders [4]core.Rect

	gameOver bool
	paused   bool
	turnAck  bool
	score    int
	tick     uint64
}

// New creates an engine with a fresh snake and its food already placed.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if err := e.reset(); err != nil {
		return nil, err
	}
	e.reportScore()
	return e, nil
}

// Restart discards the session and starts over with a fresh snake.
func (e *Engine) Restart() error {
	if err := e.reset(); err != nil {
		return err
	}
	e.log.Debug("restart", "length", e.Length())
	e.reportScore()
	return nil
}

func (e *Engine) reset() error {
	n := e.cfg.InitialBody
	y := e.cfg.Rows / 2
	bodyX := e.cfg.Cols / 2

	e.heading = core.DirRight
	e.head = grid.NewMover(core.Pt(bodyX+1, y), core.DirRight, sprite.HeadTag(core.DirRight))
	e.body = make([]grid.Mover, n, n+16)
	for i := range e.body {
		e.body[i] = grid.NewMover(core.Pt(bodyX-i, y), core.DirRight, sprite.Straight(core.DirRight))
	}
	e.tail = grid.NewMover(core.Pt(bodyX-n, y), core.DirRight, sprite.TailTag(core.DirRight))

	e.borders = borderRects(e.cfg)
	e.foods = e.foods[:0]
	e.gameOver = false
	e.paused = false
	e.turnAck = true
	e.score = 0
	e.tick = 0

	for range e.cfg.FoodCount {
		if err := e.spawnFood(); err != nil {
			e.gameOver = true
			return fmt.Errorf("snake: place initial food: %w", err)
		}
	}
	return nil
}

// borderRects returns the four pixel rectangles hugging the board from outside.
func borderRects(cfg Config) [4]core.Rect {
	w := cfg.Cols * cfg.CellSize
	h := cfg.Rows * cfg.CellSize
	t := cfg.CellSize
	return [4]core.Rect{
		core.NewRect(0, -t, w, t), // top
		core.NewRect(0, h, w, t),  // bottom
		core.NewRect(-t, 0, t, h), // left
		core.NewRect(w, 0, t, h),  // right
	}
}

func (e *Engine) reportScore() {
	if e.report != nil {
		e.report(e.score)
	}
}

// Pause suspends ticking. Turns are refused until Resume.
func (e *Engine) Pause() {
	e.paused = true
	e.turnAck = true
}

// Resume continues from the state frozen by Pause.
func (e *Engine) Resume() {
	e.paused = false
	e.turnAck = true
}

// TogglePause flips between paused and running.
func (e *Engine) TogglePause() {
	if e.paused {
		e.Resume()
	} else {
		e.Pause()
	}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Head returns the head segment.
func (e *Engine) Head() grid.Mover { return e.head }

// Tail returns the tail segment.
func (e *Engine) Tail() grid.Mover { return e.tail }

// Body returns a copy of the body segments, nearest to the head first.
func (e *Engine) Body() []grid.Mover {
	out := make([]grid.Mover, len(e.body))
	copy(out, e.body)
	return out
}

// Foods returns a copy of the live food items in insertion order.
func (e *Engine) Foods() []grid.Entity {
	out := make([]grid.Entity, len(e.foods))
	copy(out, e.foods)
	return out
}

// Borders returns the collision rectangles around the board.
func (e *Engine) Borders() [4]core.Rect { return e.borders }

// Heading is the direction the head moves on the next tick.
func (e *Engine) Heading() core.Direction { return e.heading }

// Score is the number of food items eaten this session.
func (e *Engine) Score() int { return e.score }

// Length counts head, body and tail.
func (e *Engine) Length() int { return len(e.body) + 2 }

// Ticks is the number of ticks executed since the last restart.
func (e *Engine) Ticks() uint64 { return e.tick }

// IsGameOver reports whether the snake has crashed.
func (e *Engine) IsGameOver() bool { return e.gameOver }

// IsPaused reports whether ticking is suspended.
func (e *Engine) IsPaused() bool { return e.paused }

// CanTurn reports whether a turn request would currently be considered.
func (e *Engine) CanTurn() bool {
	return !e.gameOver && !e.paused && e.turnAck
}

// Cols returns the board width in cells.
func (e *Engine) Cols() int { return e.cfg.Cols }

// Rows returns the board height in cells.
func (e *Engine) Rows() int { return e.cfg.Rows }

// CellSize returns the edge of one cell in pixels.
func (e *Engine) CellSize() int { return e.cfg.CellSize }

// Entities lists everything drawable: head, body, tail, then food.
func (e *Engine) Entities() []grid.Entity {
	out := make([]grid.Entity, 0, len(e.body)+2+len(e.foods))
	out = append(out, e.head.Entity)
	for _, seg := range e.body {
		out = append(out, seg.Entity)
	}
	out = append(out, e.tail.Entity)
	out = append(out, e.foods...)
	return out
}

// State summarises the session for hosts.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		Length:   e.Length(),
		GameOver: e.gameOver,
		Paused:   e.paused,
	}
}

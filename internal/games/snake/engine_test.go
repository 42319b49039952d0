package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/grid"
	"github.com/vovakirdan/spritesnake/internal/sprite"
)

func newEngine(t *testing.T, cfg Config, opts ...Option) *Engine {
	t.Helper()
	e, err := New(cfg, append([]Option{WithSeed(1)}, opts...)...)
	require.NoError(t, err)
	return e
}

// placeFood replaces the live food with items at pts, in order.
func placeFood(e *Engine, pts ...core.Point) {
	e.foods = e.foods[:0]
	for _, p := range pts {
		e.foods = append(e.foods, grid.NewEntity(p, sprite.Food))
	}
}

func bodyPositions(e *Engine) []core.Point {
	var out []core.Point
	for _, seg := range e.Body() {
		out = append(out, seg.Pos)
	}
	return out
}

func smallConfig() Config {
	return Config{Cols: 8, Rows: 10, CellSize: 64, InitialBody: 1, FoodCount: 1, FoodMargin: 2}
}

func TestNewStartingSnake(t *testing.T) {
	var reported []int
	e := newEngine(t, DefaultConfig(), WithScoreReporter(func(s int) { reported = append(reported, s) }))

	assert.Equal(t, core.Pt(11, 7), e.Head().Pos)
	assert.Equal(t, sprite.HeadRight, e.Head().Tag)
	require.Len(t, e.Body(), 1)
	assert.Equal(t, core.Pt(10, 7), e.Body()[0].Pos)
	assert.Equal(t, sprite.BodyHorizontal, e.Body()[0].Tag)
	assert.Equal(t, core.Pt(9, 7), e.Tail().Pos)
	assert.Equal(t, sprite.TailRight, e.Tail().Tag)

	assert.Equal(t, core.DirRight, e.Heading())
	assert.Equal(t, 3, e.Length())
	assert.Equal(t, 0, e.Score())
	assert.False(t, e.IsGameOver())
	assert.False(t, e.IsPaused())
	assert.True(t, e.CanTurn())
	assert.Len(t, e.Foods(), 1)
	assert.Equal(t, []int{0}, reported, "score is reported once at construction")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"zero cell", func(c *Config) { c.CellSize = 0 }, false},
		{"no body", func(c *Config) { c.InitialBody = 0 }, false},
		{"no food", func(c *Config) { c.FoodCount = 0 }, false},
		{"negative margin", func(c *Config) { c.FoodMargin = -1 }, false},
		{"empty board", func(c *Config) { c.Rows = 0 }, false},
		{"snake too long", func(c *Config) { c.Cols = 6; c.InitialBody = 4; c.FoodMargin = 0 }, false},
		{"margin eats board", func(c *Config) { c.Rows = 4 }, false},
		{"tight but valid", func(c *Config) { c.Cols = 5; c.Rows = 5; c.FoodMargin = 2; c.InitialBody = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestBorders(t *testing.T) {
	e := newEngine(t, smallConfig())
	b := e.Borders()

	assert.Equal(t, core.NewRect(0, -64, 512, 64), b[0])
	assert.Equal(t, core.NewRect(0, 640, 512, 64), b[1])
	assert.Equal(t, core.NewRect(-64, 0, 64, 640), b[2])
	assert.Equal(t, core.NewRect(512, 0, 64, 640), b[3])

	// no board cell touches a border
	for y := range 10 {
		for x := range 8 {
			assert.False(t, e.hitsBorder(core.CellRect(core.Pt(x, y), 64)), "cell %d,%d", x, y)
		}
	}
}

func TestTickMovesWholeChain(t *testing.T) {
	e := newEngine(t, smallConfig())
	placeFood(e, core.Pt(2, 2))

	require.Equal(t, core.Pt(5, 5), e.Head().Pos)
	require.Equal(t, []core.Point{core.Pt(4, 5)}, bodyPositions(e))
	require.Equal(t, core.Pt(3, 5), e.Tail().Pos)

	require.NoError(t, e.Tick())

	assert.Equal(t, core.Pt(6, 5), e.Head().Pos)
	assert.Equal(t, []core.Point{core.Pt(5, 5)}, bodyPositions(e))
	assert.Equal(t, core.Pt(4, 5), e.Tail().Pos)
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 3, e.Length())
	assert.Equal(t, uint64(1), e.Ticks())
}

func TestTickLongBodyShiftsTailToHead(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialBody = 3
	e := newEngine(t, cfg)
	placeFood(e, core.Pt(2, 2))

	before := append([]core.Point{e.Head().Pos}, bodyPositions(e)...)
	require.True(t, e.Up())
	require.NoError(t, e.Tick())

	assert.Equal(t, before[0].Add(core.DirUp.Delta()), e.Head().Pos)
	assert.Equal(t, before[:3], bodyPositions(e), "every body segment takes its predecessor's cell")
	assert.Equal(t, before[3], e.Tail().Pos)

	body := e.Body()
	assert.Equal(t, sprite.BodyCornerNW, body[0].Tag, "right then up joins left and top")
	assert.Equal(t, sprite.BodyHorizontal, body[1].Tag)
	assert.Equal(t, sprite.HeadUp, e.Head().Tag)
}

func TestTurnGuard(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	placeFood(e, core.Pt(2, 2))

	assert.False(t, e.Left(), "reverse of right")
	assert.False(t, e.Right(), "same heading")
	assert.Equal(t, core.DirRight, e.Heading())
	assert.True(t, e.CanTurn(), "ignored requests keep the window open")

	assert.True(t, e.Up())
	assert.Equal(t, core.DirUp, e.Heading(), "accepted turn is stored immediately")
	assert.False(t, e.CanTurn())
	assert.False(t, e.Left(), "second turn before the tick")
	assert.False(t, e.Right())
	assert.Equal(t, core.DirUp, e.Heading())

	require.NoError(t, e.Tick())
	assert.True(t, e.CanTurn())
	assert.False(t, e.Down(), "reverse of up")
	assert.True(t, e.Left())
	assert.Equal(t, core.DirLeft, e.Heading())

	assert.False(t, e.Turn(core.Direction(42)))
}

func TestReverseTurnNeverChangesHeading(t *testing.T) {
	for _, heading := range core.Directions() {
		t.Run(heading.String(), func(t *testing.T) {
			e := newEngine(t, DefaultConfig())
			placeFood(e, core.Pt(2, 2))
			if heading != core.DirRight {
				if !e.Turn(heading) {
					// left is reached through up
					require.True(t, e.Up())
					require.NoError(t, e.Tick())
					require.True(t, e.Turn(heading))
				}
				require.NoError(t, e.Tick())
			}
			require.Equal(t, heading, e.Heading())

			assert.False(t, e.Turn(heading.Opposite()))
			assert.Equal(t, heading, e.Heading())
		})
	}
}

func TestPauseFreezesState(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	placeFood(e, core.Pt(2, 2))

	require.True(t, e.Up())
	e.Pause()
	assert.True(t, e.IsPaused())
	assert.False(t, e.Left(), "turns are refused while paused")

	before := e.Snapshot()
	for range 5 {
		require.NoError(t, e.Tick())
	}
	after := e.Snapshot()
	assert.Equal(t, before, after)
	assert.Equal(t, StatePaused, after.State)

	e.Resume()
	assert.True(t, e.CanTurn(), "resume re-opens the turn window")
	assert.True(t, e.Left())

	require.NoError(t, e.Tick())
	assert.Equal(t, uint64(1), e.Ticks())

	e.TogglePause()
	assert.True(t, e.IsPaused())
	e.TogglePause()
	assert.False(t, e.IsPaused())
}

func TestEatingGrowsAndScores(t *testing.T) {
	var reported []int
	e := newEngine(t, DefaultConfig(), WithScoreReporter(func(s int) { reported = append(reported, s) }))
	placeFood(e, core.Pt(12, 7))

	require.NoError(t, e.Tick())

	assert.Equal(t, 1, e.Score())
	assert.Equal(t, 4, e.Length())
	assert.Len(t, e.Foods(), 1, "one eaten, one spawned")
	assert.Equal(t, []int{0, 1}, reported)

	assert.Equal(t, core.Pt(12, 7), e.Head().Pos)
	assert.Equal(t, []core.Point{core.Pt(11, 7), core.Pt(10, 7)}, bodyPositions(e))
	assert.Equal(t, core.Pt(9, 7), e.Tail().Pos, "the tail is pushed back behind the new segment")

	grown := e.Body()[1]
	assert.Equal(t, core.DirRight, grown.Dir)
	assert.Equal(t, sprite.BodyHorizontal, grown.Tag)
	assert.Equal(t, sprite.TailRight, e.Tail().Tag)
}

func TestEatingFirstFoodOnly(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	placeFood(e, core.Pt(12, 7), core.Pt(12, 7))

	require.NoError(t, e.Tick())

	assert.Equal(t, 1, e.Score())
	foods := e.Foods()
	require.Len(t, foods, 2)
	assert.Equal(t, core.Pt(12, 7), foods[0].Pos, "the second item survives")
}

func TestFreeCellsExcludeOccupied(t *testing.T) {
	e := newEngine(t, smallConfig())
	placeFood(e, core.Pt(2, 2))

	free := e.FreeCells()
	// 4x6 cells inside the margin, minus head, body, tail and the food
	assert.Len(t, free, 20)

	taken := map[core.Point]bool{
		e.Head().Pos: true, e.Body()[0].Pos: true, e.Tail().Pos: true, core.Pt(2, 2): true,
	}
	for _, p := range free {
		assert.False(t, taken[p], "%v is occupied", p)
		assert.True(t, p.X >= 2 && p.X < 6 && p.Y >= 2 && p.Y < 8, "%v outside the margin", p)
	}
}

func TestBoardFullOnConstruction(t *testing.T) {
	cfg := Config{Cols: 5, Rows: 5, CellSize: 64, InitialBody: 1, FoodCount: 1, FoodMargin: 2}
	require.NoError(t, cfg.Validate())

	_, err := New(cfg, WithSeed(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBoardFull))
}

func TestBoardFullAfterEating(t *testing.T) {
	e := newEngine(t, smallConfig())
	e.cfg.FoodMargin = 3 // leaves columns 3-4 of rows 3-6
	placeFood(e, core.Pt(6, 5),
		core.Pt(3, 3), core.Pt(4, 3), core.Pt(3, 4), core.Pt(4, 4), core.Pt(3, 6), core.Pt(4, 6))

	err := e.Tick()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBoardFull)
	assert.True(t, e.IsGameOver())
	assert.Equal(t, 1, e.Score())
}

func TestBorderCollision(t *testing.T) {
	tests := []struct {
		name  string
		turns []core.Direction // applied one per tick before running straight
	}{
		{"top", []core.Direction{core.DirUp}},
		{"bottom", []core.Direction{core.DirDown}},
		{"right", nil},
		{"left", []core.Direction{core.DirUp, core.DirLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, smallConfig())
			placeFood(e)

			for _, d := range tt.turns {
				require.True(t, e.Turn(d))
				require.NoError(t, e.Tick())
			}
			for i := 0; i < 20 && !e.IsGameOver(); i++ {
				require.NoError(t, e.Tick())
			}
			require.True(t, e.IsGameOver())

			h := e.Head().Pos
			assert.True(t, h.X < 0 || h.Y < 0 || h.X >= 8 || h.Y >= 10, "head %v still on board", h)
		})
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	e := newEngine(t, smallConfig())
	placeFood(e)
	require.True(t, e.Up())
	for !e.IsGameOver() {
		require.NoError(t, e.Tick())
	}
	assert.Less(t, e.Head().Pos.Y, 0, "crossed the top border")

	before := e.Snapshot()
	assert.Equal(t, StateGameOver, before.State)

	require.NoError(t, e.Tick())
	assert.False(t, e.Left())
	assert.False(t, e.CanTurn())
	require.NoError(t, e.Tick())

	assert.Equal(t, before, e.Snapshot(), "ticks after game over change nothing")
	assert.True(t, e.IsGameOver())
}

func TestSelfCollision(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialBody = 3
	e := newEngine(t, cfg)
	placeFood(e, core.Pt(2, 2))

	for _, d := range []core.Direction{core.DirUp, core.DirLeft, core.DirDown} {
		require.False(t, e.IsGameOver())
		require.True(t, e.Turn(d))
		require.NoError(t, e.Tick())
	}

	assert.True(t, e.IsGameOver())
	assert.Equal(t, core.Pt(10, 7), e.Head().Pos)
}

func TestRestart(t *testing.T) {
	for _, body := range []int{1, 3} {
		var reported []int
		cfg := DefaultConfig()
		cfg.InitialBody = body
		e := newEngine(t, cfg, WithScoreReporter(func(s int) { reported = append(reported, s) }))

		placeFood(e, core.Pt(12, 7))
		require.NoError(t, e.Tick())
		placeFood(e)
		require.True(t, e.Up())
		for !e.IsGameOver() {
			require.NoError(t, e.Tick())
		}

		require.NoError(t, e.Restart())
		assert.False(t, e.IsGameOver())
		assert.False(t, e.IsPaused())
		assert.True(t, e.CanTurn())
		assert.Equal(t, 0, e.Score())
		assert.Equal(t, body+2, e.Length())
		assert.Equal(t, core.DirRight, e.Heading())
		assert.Equal(t, core.Pt(11, 7), e.Head().Pos)
		assert.Equal(t, uint64(0), e.Ticks())
		assert.Len(t, e.Foods(), 1)
		assert.Equal(t, []int{0, 1, 0}, reported)
	}
}

func TestApplyActions(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	placeFood(e, core.Pt(2, 2))

	require.NoError(t, e.Apply(core.ActionDown))
	assert.Equal(t, core.DirDown, e.Heading())

	require.NoError(t, e.Apply(core.ActionPause))
	assert.True(t, e.IsPaused())
	require.NoError(t, e.Apply(core.ActionPause))
	assert.False(t, e.IsPaused())

	require.NoError(t, e.Apply(core.ActionQuit), "host actions are ignored")
	require.NoError(t, e.Apply(core.ActionRestart))
	assert.Equal(t, core.DirRight, e.Heading())
}

func TestDeterminism(t *testing.T) {
	frames, err := core.ParseScript("..U...L....D......R..[UL]...D.....R....U..")
	require.NoError(t, err)

	run := func() Snapshot {
		e := newEngine(t, DefaultConfig(), WithSeed(12345))
		for _, f := range frames {
			for _, a := range f.Actions {
				require.NoError(t, e.Apply(a))
			}
			require.NoError(t, e.Tick())
		}
		return e.Snapshot()
	}

	assert.Equal(t, run(), run())
}

// dirTo returns the direction of the single step from a to b.
func dirTo(a, b core.Point) (core.Direction, bool) {
	for _, d := range core.Directions() {
		if a.Add(d.Delta()) == b {
			return d, true
		}
	}
	return 0, false
}

// bodyTagFor names the body piece linking the two given sides.
func bodyTagFor(a, b core.Direction) sprite.Tag {
	has := func(d core.Direction) bool { return a == d || b == d }
	switch {
	case has(core.DirUp) && has(core.DirDown):
		return sprite.BodyVertical
	case has(core.DirLeft) && has(core.DirRight):
		return sprite.BodyHorizontal
	case has(core.DirDown) && has(core.DirLeft):
		return sprite.BodyCornerSW
	case has(core.DirDown) && has(core.DirRight):
		return sprite.BodyCornerSE
	case has(core.DirUp) && has(core.DirRight):
		return sprite.BodyCornerNE
	default:
		return sprite.BodyCornerNW
	}
}

// requireChainConsistent checks that every piece is drawn linking exactly
// its two neighbours and points towards the head.
func requireChainConsistent(t *testing.T, e *Engine) {
	t.Helper()

	head, body, tail := e.Head(), e.Body(), e.Tail()
	chain := make([]grid.Mover, 0, len(body)+2)
	chain = append(chain, head)
	chain = append(chain, body...)
	chain = append(chain, tail)

	d, ok := dirTo(body[0].Pos, head.Pos)
	require.True(t, ok, "head %v not next to body %v", head.Pos, body[0].Pos)
	require.Equal(t, sprite.HeadTag(d), head.Tag)
	require.Equal(t, d, head.Dir)

	for i := 1; i < len(chain)-1; i++ {
		seg := chain[i]
		toHead, ok1 := dirTo(seg.Pos, chain[i-1].Pos)
		toTail, ok2 := dirTo(seg.Pos, chain[i+1].Pos)
		require.True(t, ok1 && ok2, "segment %d at %v is detached", i, seg.Pos)
		require.Equal(t, bodyTagFor(toHead, toTail), seg.Tag, "segment %d at %v", i, seg.Pos)
		require.Equal(t, toHead, seg.Dir, "segment %d faces away from the head", i)
	}

	toHead, ok := dirTo(tail.Pos, body[len(body)-1].Pos)
	require.True(t, ok, "tail %v detached", tail.Pos)
	require.Equal(t, sprite.TailTag(toHead), tail.Tag)
}

func TestChainStaysConsistent(t *testing.T) {
	e := newEngine(t, DefaultConfig(), WithSeed(99))
	requireChainConsistent(t, e)

	frames, err := core.ParseScript(".U..L.....D.....R.....U..L...D..R")
	require.NoError(t, err)

	for _, f := range frames {
		for _, a := range f.Actions {
			require.NoError(t, e.Apply(a))
		}
		require.NoError(t, e.Tick())
		if e.IsGameOver() {
			break
		}
		requireChainConsistent(t, e)
	}
}

// TestRandomPlay drives the engine with random turns and checks the
// per-tick invariants on every step.
func TestRandomPlay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows = 12, 10
	cfg.FoodCount = 3
	e := newEngine(t, cfg, WithSeed(7))
	rng := rand.New(rand.NewSource(7))

	ate, died := 0, 0
	for range 3000 {
		if e.IsGameOver() {
			died++
			require.NoError(t, e.Restart())
		}

		accepted := 0
		for range rng.Intn(3) {
			if e.Turn(core.Directions()[rng.Intn(4)]) {
				accepted++
			}
		}
		require.LessOrEqual(t, accepted, 1, "more than one turn between ticks")

		heading := e.Heading()
		length, score := e.Length(), e.Score()
		err := e.Tick()
		if errors.Is(err, ErrBoardFull) {
			require.True(t, e.IsGameOver())
			continue
		}
		require.NoError(t, err)

		assert.Equal(t, heading, e.Head().Dir)
		if e.Score() > score {
			ate++
			require.Equal(t, length+1, e.Length())
			require.Equal(t, score+1, e.Score())
		} else {
			require.Equal(t, length, e.Length())
		}

		if !e.IsGameOver() {
			requireChainConsistent(t, e)
		}

		occupied := map[core.Point]bool{e.Head().Pos: true, e.Tail().Pos: true}
		for _, seg := range e.Body() {
			occupied[seg.Pos] = true
		}
		seen := map[core.Point]bool{}
		for _, f := range e.Foods() {
			if !e.IsGameOver() {
				require.False(t, occupied[f.Pos], "food %v under the snake", f.Pos)
			}
			require.False(t, seen[f.Pos], "two foods at %v", f.Pos)
			seen[f.Pos] = true
		}
		require.Len(t, e.Foods(), cfg.FoodCount)
	}

	assert.Positive(t, ate, "the random walk should eat something")
	assert.Positive(t, died, "the random walk should crash at least once")
}

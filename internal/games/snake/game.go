package snake

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/registry"
	"github.com/vovakirdan/spritesnake/internal/render"
)

// Mode is a registered preset.
type Mode struct {
	ID          string
	Title       string
	InitialBody int
}

// Modes lists the registered presets.
var Modes = []Mode{
	{ID: "snake", Title: "Snake", InitialBody: 1},
	{ID: "snake_long", Title: "Snake (Long Start)", InitialBody: 3},
}

// Overrides replaces parts of a mode's board configuration.
// Zero fields keep the mode default. FoodMargin is a pointer because
// zero is a valid margin.
type Overrides struct {
	Cols        int
	Rows        int
	CellSize    int
	InitialBody int
	FoodCount   int
	FoodMargin  *int
}

// Package-level settings applied to every game created through the registry.
var (
	settingsMu sync.RWMutex
	overrides  Overrides
	logger     = log.New(io.Discard)
)

// SetOverrides changes the board configuration of games created afterwards.
func SetOverrides(o Overrides) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	overrides = o
}

// SetLogger sets the logger handed to engines created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

// ConfigFor returns the engine configuration of a mode with the current overrides.
func ConfigFor(id string) (Config, error) {
	for _, m := range Modes {
		if m.ID == id {
			settingsMu.RLock()
			defer settingsMu.RUnlock()
			return applyOverrides(m, overrides), nil
		}
	}
	return Config{}, fmt.Errorf("snake: unknown mode %q", id)
}

func applyOverrides(m Mode, o Overrides) Config {
	cfg := DefaultConfig()
	cfg.InitialBody = m.InitialBody
	if o.Cols > 0 {
		cfg.Cols = o.Cols
	}
	if o.Rows > 0 {
		cfg.Rows = o.Rows
	}
	if o.CellSize > 0 {
		cfg.CellSize = o.CellSize
	}
	if o.InitialBody > 0 {
		cfg.InitialBody = o.InitialBody
	}
	if o.FoodCount > 0 {
		cfg.FoodCount = o.FoodCount
	}
	if o.FoodMargin != nil {
		cfg.FoodMargin = *o.FoodMargin
	}
	return cfg
}

func init() {
	for _, m := range Modes {
		registry.Register(m.ID, func() registry.Game {
			return NewGame(m)
		})
	}
}

const hudHeight = 2

// Game adapts an Engine to the registry and draws it onto a character screen.
type Game struct {
	mode Mode

	engine  *Engine
	board   *render.Board
	frame   *core.Screen // board pixels, kept between renders
	surface *render.ScreenSurface
	score   int // last value from the score reporter

	screenW  int
	screenH  int
	tooSmall bool
}

// NewGame creates an unstarted game for mode. Call Reset before use.
func NewGame(m Mode) *Game {
	return &Game{mode: m}
}

// ID returns the mode identifier.
func (g *Game) ID() string { return g.mode.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.mode.Title }

// Engine returns the engine of the current session, nil before Reset.
func (g *Game) Engine() *Engine { return g.engine }

// Reset builds a fresh engine sized for the configured board.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	settingsMu.RLock()
	ecfg := applyOverrides(g.mode, overrides)
	l := logger.With("mode", g.mode.ID)
	settingsMu.RUnlock()

	e, err := New(ecfg,
		WithSeed(cfg.Seed),
		WithLogger(l),
		WithScoreReporter(func(score int) { g.score = score }),
	)
	if err != nil {
		return err
	}

	board, err := render.NewBoard(e, render.DefaultAtlas())
	if err != nil {
		return fmt.Errorf("snake: build board: %w", err)
	}

	g.engine = e
	g.board = board
	g.frame = core.NewScreen(ecfg.Cols*render.CellColumns, ecfg.Rows)
	g.surface = render.NewScreenSurface(g.frame, ecfg.CellSize, 0, 0, ecfg.Cols, ecfg.Rows)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Resize records a new terminal size.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.engine == nil {
		return
	}
	needW, needH := g.MinSize()
	g.tooSmall = w < needW || h < needH
}

// MinSize is the board plus its frame plus the HUD, in screen cells.
func (g *Game) MinSize() (int, int) {
	cfg := g.engine.Config()
	return cfg.Cols*render.CellColumns + 2, cfg.Rows + 2 + hudHeight
}

// Apply handles one action immediately. Restart only works after game over.
func (g *Game) Apply(a core.Action) error {
	if g.engine == nil {
		return nil
	}
	switch a {
	case core.ActionRestart:
		if !g.engine.IsGameOver() {
			return nil
		}
		g.board.Invalidate()
	case core.ActionPause:
		if g.engine.IsGameOver() {
			return nil
		}
	}
	return g.engine.Apply(a)
}

// Step applies the frame's actions in order and then runs one tick.
// Nothing moves while the screen is too small.
func (g *Game) Step(in core.InputFrame) (core.StepResult, error) {
	for _, a := range in.Actions {
		if err := g.Apply(a); err != nil {
			return core.StepResult{State: g.State()}, err
		}
	}
	if g.engine == nil || g.tooSmall {
		return core.StepResult{State: g.State()}, nil
	}

	score, over := g.engine.Score(), g.engine.IsGameOver()
	err := g.engine.Tick()
	return core.StepResult{
		State: g.State(),
		Ate:   g.engine.Score() > score,
		Died:  !over && g.engine.IsGameOver(),
	}, err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	st := g.engine.State()
	st.Score = g.score
	return st
}

// Render draws the HUD, the framed board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil {
		return
	}
	g.Resize(dst.Width(), dst.Height())
	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.MinSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.board.Draw(g.surface)

	fw, fh := g.frame.Width(), g.frame.Height()
	ox := (dst.Width() - fw) / 2
	oy := hudHeight + 1
	dst.DrawBox(core.NewRect(ox-1, oy-1, fw+2, fh+2))
	for y := range fh {
		for x := range fw {
			dst.SetCell(ox+x, oy+y, g.frame.GetCell(x, y))
		}
	}

	switch {
	case g.engine.IsGameOver():
		dst.DrawTextCentered(oy+fh, " Press R to restart ")
	case g.engine.IsPaused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Length: %d", g.mode.Title, g.score, g.engine.Length())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

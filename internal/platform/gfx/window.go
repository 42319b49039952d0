package gfx

import (
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/games/snake"
	"github.com/vovakirdan/spritesnake/internal/render"
	"github.com/vovakirdan/spritesnake/internal/storage"
)

// hudHeight is the strip above the board that shows the score.
const hudHeight = 24

// Options configures a window session.
type Options struct {
	Mode         string
	Sheet        image.Image // nil uses the generated default sheet
	TileSize     int
	TickInterval time.Duration
	Seed         int64
	Scale        float64 // window size relative to the board, 0 means 1
	Store        *storage.Store
	Logger       *log.Logger
}

// Window is an ebiten.Game running one snake session.
type Window struct {
	mode    string
	engine  *snake.Engine
	board   *render.Board
	surface *Surface
	clock   *clock
	store   *storage.Store
	logger  *log.Logger

	score      int
	scoreSaved bool
	width      int
	height     int
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow builds the engine and loads the sprite images.
// It fails when the sheet does not provide every piece.
func NewWindow(opts Options) (*Window, error) {
	cfg, err := snake.ConfigFor(opts.Mode)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	tile := opts.TileSize
	if tile <= 0 {
		tile = cfg.CellSize
	}

	sheet := opts.Sheet
	if sheet == nil {
		if sheet, err = LoadSheet("", tile); err != nil {
			return nil, err
		}
	}
	src, err := NewSheetSource(sheet, tile)
	if err != nil {
		return nil, err
	}

	w := &Window{
		mode:   opts.Mode,
		clock:  newClock(opts.TickInterval),
		store:  opts.Store,
		logger: logger.With("mode", opts.Mode),
	}

	w.engine, err = snake.New(cfg,
		snake.WithSeed(opts.Seed),
		snake.WithLogger(w.logger),
		snake.WithScoreReporter(func(score int) { w.score = score }),
	)
	if err != nil {
		return nil, err
	}

	w.board, err = render.NewBoard(w.engine, src)
	if err != nil {
		return nil, fmt.Errorf("gfx: %w", err)
	}

	bw, bh := w.board.Size()
	w.width, w.height = bw, bh+hudHeight
	w.surface = &Surface{OffsetY: hudHeight, TextScale: float64(cfg.CellSize) / glyphH}
	return w, nil
}

// Engine returns the running engine.
func (w *Window) Engine() *snake.Engine {
	return w.engine
}

// Update reads the keyboard and advances the engine by the ticks that
// fell due since the previous frame.
func (w *Window) Update() error {
	for _, a := range pressedActions(inpututil.IsKeyJustPressed) {
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		if err := w.apply(a); err != nil {
			return err
		}
	}

	for range w.clock.advance(time.Second / time.Duration(ebiten.TPS())) {
		if err := w.engine.Tick(); err != nil {
			w.logger.Error("session ended", "error", err)
			w.saveScore()
			return err
		}
	}
	if w.engine.IsGameOver() {
		w.saveScore()
	}
	return nil
}

// apply forwards one action. Restart only works after game over.
func (w *Window) apply(a core.Action) error {
	switch a {
	case core.ActionRestart:
		if !w.engine.IsGameOver() {
			return nil
		}
		w.logger.Debug("restart", "score", w.score)
		w.scoreSaved = false
		w.clock.reset()
		w.board.Invalidate()
	case core.ActionPause:
		if w.engine.IsGameOver() {
			return nil
		}
	}
	return w.engine.Apply(a)
}

func (w *Window) saveScore() {
	if w.scoreSaved {
		return
	}
	w.scoreSaved = true
	w.logger.Info("game over", "score", w.score, "length", w.engine.Length())
	if w.store == nil || w.score == 0 {
		return
	}
	if _, err := w.store.SaveScore(w.mode, w.score, w.engine.Length()); err != nil {
		w.logger.Warn("could not save score", "error", err)
	}
}

// Draw renders the HUD and the board. The screen is not cleared between
// frames, so a paused board stays on screen without redrawing.
func (w *Window) Draw(screen *ebiten.Image) {
	w.surface.Dst = screen
	w.board.Draw(w.surface)

	vector.DrawFilledRect(screen, 0, 0, float32(w.width), hudHeight, hudColor, false)
	hud := fmt.Sprintf("Score: %d  Length: %d", w.score, w.engine.Length())
	switch {
	case w.engine.IsGameOver():
		hud += "  |  R: restart  Q: quit"
	case w.engine.IsPaused():
		hud += "  |  Paused  P: continue"
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, (hudHeight-glyphH)/2)
}

// Layout keeps the logical screen at board size and lets Ebiten scale it.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// Size returns the logical screen size in pixels.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed or the session ends.
func Run(opts Options) error {
	w, err := NewWindow(opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w.width)*scale), int(float64(w.height)*scale))
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

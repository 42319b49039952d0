// Package render turns engine state into draw calls against a Surface.
// Bitmaps come from an ImageSource that must resolve every sprite tag before
// the first frame.
package render

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/spritesnake/internal/grid"
	"github.com/vovakirdan/spritesnake/internal/sprite"
)

// GameOverText is drawn over the board once the snake has crashed.
const GameOverText = "Game Over!"

// Bitmap is an opaque image handle owned by an ImageSource.
type Bitmap any

// ImageSource resolves a sprite tag to a bitmap. Lookups are synchronous.
type ImageSource interface {
	Image(tag sprite.Tag) Bitmap
}

// Surface is a pixel-addressed drawing target.
type Surface interface {
	DrawImage(b Bitmap, x, y, w, h int)
	ClearRect(x, y, w, h int)
	// DrawText draws s centred on the pixel (x, y).
	DrawText(x, y int, s string)
}

// Scene is the read-only view of a game the board draws.
type Scene interface {
	Entities() []grid.Entity
	Cols() int
	Rows() int
	CellSize() int
	IsGameOver() bool
	IsPaused() bool
}

// ErrMissingImage is wrapped by Warm for every tag the source cannot resolve.
var ErrMissingImage = errors.New("render: missing image")

// Warm checks that src resolves all sprite tags.
func Warm(src ImageSource) error {
	var errs []error
	for _, tag := range sprite.Tags() {
		if src.Image(tag) == nil {
			errs = append(errs, fmt.Errorf("%w for %s", ErrMissingImage, tag))
		}
	}
	return errors.Join(errs...)
}

// Board draws a Scene.
type Board struct {
	scene  Scene
	images ImageSource
	drawn  bool
}

// NewBoard creates a board after checking that images is fully warmed.
func NewBoard(scene Scene, images ImageSource) (*Board, error) {
	if err := Warm(images); err != nil {
		return nil, err
	}
	return &Board{scene: scene, images: images}, nil
}

// Size returns the board size in pixels.
func (b *Board) Size() (w, h int) {
	cell := b.scene.CellSize()
	return b.scene.Cols() * cell, b.scene.Rows() * cell
}

// Draw repaints the board. While the scene is paused nothing is drawn and
// the previous frame stays on the surface.
func (b *Board) Draw(dst Surface) {
	if b.scene.IsPaused() && b.drawn {
		return
	}

	w, h := b.Size()
	dst.ClearRect(0, 0, w, h)

	cell := b.scene.CellSize()
	for _, e := range b.scene.Entities() {
		r := e.Bounds(cell)
		dst.DrawImage(b.images.Image(e.Tag), r.X, r.Y, r.W, r.H)
	}

	if b.scene.IsGameOver() {
		dst.DrawText(w/2, h/2, GameOverText)
	}
	b.drawn = true
}

// Invalidate forces the next Draw to repaint even when paused.
func (b *Board) Invalidate() {
	b.drawn = false
}

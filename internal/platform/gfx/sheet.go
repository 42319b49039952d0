// Package gfx hosts a snake session in a desktop window with Ebiten.
// Pieces are drawn from a sprite sheet, either a PNG file or the
// generated default sheet.
package gfx

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/spritesnake/internal/render"
	"github.com/vovakirdan/spritesnake/internal/sprite"
)

// LoadSheet reads a PNG sprite sheet. An empty path returns the
// generated default sheet for the given tile size.
func LoadSheet(path string, tile int) (image.Image, error) {
	if path == "" {
		return sprite.DefaultSheet(tile), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gfx: open sheet: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gfx: decode sheet %s: %w", path, err)
	}
	return img, nil
}

// SheetSource serves one Ebiten image per tag, cut from a sheet.
// Images are uploaded to the GPU on first use.
type SheetSource struct {
	tiles  [sprite.Count]image.Image
	images [sprite.Count]*ebiten.Image
}

var _ render.ImageSource = (*SheetSource)(nil)

// NewSheetSource slices sheet into tiles of the given size.
func NewSheetSource(sheet image.Image, tile int) (*SheetSource, error) {
	tiles, err := sprite.Slice(sheet, tile)
	if err != nil {
		return nil, fmt.Errorf("gfx: %w", err)
	}
	return &SheetSource{tiles: tiles}, nil
}

// Tile returns the decoded tile for tag, or nil for an unknown tag.
func (s *SheetSource) Tile(tag sprite.Tag) image.Image {
	if !tag.Valid() {
		return nil
	}
	return s.tiles[tag]
}

// Image returns the GPU image for tag, or nil for an unknown tag.
func (s *SheetSource) Image(tag sprite.Tag) render.Bitmap {
	if !tag.Valid() || s.tiles[tag] == nil {
		return nil
	}
	if s.images[tag] == nil {
		s.images[tag] = ebiten.NewImageFromImage(s.tiles[tag])
	}
	return s.images[tag]
}

package render

import (
	"unicode/utf8"

	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/sprite"
)

// CellColumns is how many terminal columns one board cell takes.
// Terminal cells are about twice as tall as wide.
const CellColumns = 2

// Glyph is the terminal bitmap for one sprite: CellColumns runes and a color.
type Glyph struct {
	Text  string
	Color core.Color
}

// GlyphAtlas is an ImageSource for text terminals.
type GlyphAtlas [sprite.Count]Glyph

// DefaultAtlas draws the snake with box-drawing characters.
func DefaultAtlas() *GlyphAtlas {
	return &GlyphAtlas{
		sprite.HeadUp:         {"▲ ", core.ColorBrightGreen},
		sprite.HeadDown:       {"▼ ", core.ColorBrightGreen},
		sprite.HeadLeft:       {"◀━", core.ColorBrightGreen},
		sprite.HeadRight:      {"▶ ", core.ColorBrightGreen},
		sprite.TailUp:         {"╹ ", core.ColorGreen},
		sprite.TailDown:       {"╻ ", core.ColorGreen},
		sprite.TailLeft:       {"╸ ", core.ColorGreen},
		sprite.TailRight:      {"╺━", core.ColorGreen},
		sprite.BodyHorizontal: {"━━", core.ColorGreen},
		sprite.BodyVertical:   {"┃ ", core.ColorGreen},
		sprite.BodyCornerSW:   {"┓ ", core.ColorGreen},
		sprite.BodyCornerSE:   {"┏━", core.ColorGreen},
		sprite.BodyCornerNE:   {"┗━", core.ColorGreen},
		sprite.BodyCornerNW:   {"┛ ", core.ColorGreen},
		sprite.Food:           {"● ", core.ColorBrightRed},
	}
}

// Image implements ImageSource. Tags without a glyph resolve to nil.
func (a *GlyphAtlas) Image(tag sprite.Tag) Bitmap {
	if !tag.Valid() || a[tag].Text == "" {
		return nil
	}
	return a[tag]
}

// ScreenSurface draws onto a core.Screen. One board cell of cellSize pixels
// becomes CellColumns columns by one row, starting at the screen offset.
// Images outside Clip are dropped.
type ScreenSurface struct {
	Screen   *core.Screen
	CellSize int
	OffsetX  int
	OffsetY  int
	Clip     core.Rect
}

// NewScreenSurface creates a surface over dst for a board of cols x rows
// cells whose top-left corner sits at (offsetX, offsetY).
func NewScreenSurface(dst *core.Screen, cellSize, offsetX, offsetY, cols, rows int) *ScreenSurface {
	return &ScreenSurface{
		Screen:   dst,
		CellSize: cellSize,
		OffsetX:  offsetX,
		OffsetY:  offsetY,
		Clip:     core.NewRect(offsetX, offsetY, cols*CellColumns, rows),
	}
}

// cell converts a pixel position to a screen position.
// Pixels left of or above the board map to negative cells.
func (s *ScreenSurface) cell(px, py int) (int, int) {
	cx, cy := floorDiv(px, s.CellSize), floorDiv(py, s.CellSize)
	return s.OffsetX + cx*CellColumns, s.OffsetY + cy
}

// DrawImage implements Surface. Bitmaps other than Glyph are ignored.
func (s *ScreenSurface) DrawImage(b Bitmap, x, y, w, h int) {
	g, ok := b.(Glyph)
	if !ok {
		return
	}
	sx, sy := s.cell(x, y)
	if !s.Clip.Contains(sx, sy) {
		return
	}
	col := 0
	for _, r := range g.Text {
		s.Screen.SetColored(sx+col, sy, r, g.Color)
		col++
	}
}

// ClearRect implements Surface.
func (s *ScreenSurface) ClearRect(x, y, w, h int) {
	sx, sy := s.cell(x, y)
	cols := ceilDiv(w, s.CellSize) * CellColumns
	rows := ceilDiv(h, s.CellSize)
	s.Screen.ClearRect(core.NewRect(sx, sy, cols, rows))
}

// DrawText implements Surface.
func (s *ScreenSurface) DrawText(x, y int, text string) {
	sx, sy := s.cell(x, y)
	sx -= utf8.RuneCountInString(text) / 2
	s.Screen.DrawText(sx, sy, text)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/spritesnake/internal/render"
)

// Debug font cell size of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

var (
	background = color.RGBA{0x1b, 0x1f, 0x1b, 0xff}
	hudColor   = color.RGBA{0x10, 0x12, 0x10, 0xff}
)

// Surface draws board pixels onto an Ebiten image, shifted by an offset.
type Surface struct {
	Dst       *ebiten.Image
	OffsetX   int
	OffsetY   int
	TextScale float64

	labels map[string]*ebiten.Image
}

var _ render.Surface = (*Surface)(nil)

// DrawImage scales b into the w×h rectangle at (x, y).
// Bitmaps that are not Ebiten images are ignored.
func (s *Surface) DrawImage(b render.Bitmap, x, y, w, h int) {
	img, ok := b.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	bw, bh := img.Bounds().Dx(), img.Bounds().Dy()
	if bw == 0 || bh == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(bw), float64(h)/float64(bh))
	op.GeoM.Translate(float64(x+s.OffsetX), float64(y+s.OffsetY))
	op.Filter = ebiten.FilterNearest
	s.Dst.DrawImage(img, op)
}

// ClearRect fills the rectangle with the background color.
func (s *Surface) ClearRect(x, y, w, h int) {
	vector.DrawFilledRect(s.Dst,
		float32(x+s.OffsetX), float32(y+s.OffsetY), float32(w), float32(h),
		background, false)
}

// DrawText prints text centered on (x, y), enlarged by TextScale.
func (s *Surface) DrawText(x, y int, text string) {
	scale := s.TextScale
	if scale <= 0 {
		scale = 1
	}
	n := len([]rune(text))
	if n == 0 {
		return
	}

	label := s.label(text, n)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		float64(x+s.OffsetX)-float64(n*glyphW)*scale/2,
		float64(y+s.OffsetY)-float64(glyphH)*scale/2,
	)
	op.Filter = ebiten.FilterNearest
	s.Dst.DrawImage(label, op)
}

// label returns the cached unscaled rendering of text.
func (s *Surface) label(text string, n int) *ebiten.Image {
	if img, ok := s.labels[text]; ok {
		return img
	}
	if s.labels == nil {
		s.labels = make(map[string]*ebiten.Image)
	}
	img := ebiten.NewImage(n*glyphW, glyphH)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	s.labels[text] = img
	return img
}

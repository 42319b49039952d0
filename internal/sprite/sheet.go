package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// TileSize is the edge of one piece on the reference sheet, in pixels.
const TileSize = 64

// Sheet geometry: 5 columns by 4 rows of tiles.
const (
	SheetCols = 5
	SheetRows = 4
)

// Cell is a tile position on the sheet.
type Cell struct {
	Row, Col int
}

// Layout maps every tag to its tile on the reference sheet.
var Layout = [tagCount]Cell{
	HeadUp:         {Row: 0, Col: 3},
	HeadRight:      {Row: 0, Col: 4},
	HeadDown:       {Row: 1, Col: 4},
	HeadLeft:       {Row: 1, Col: 3},
	TailUp:         {Row: 2, Col: 3},
	TailRight:      {Row: 2, Col: 4},
	TailDown:       {Row: 3, Col: 4},
	TailLeft:       {Row: 3, Col: 3},
	BodyCornerSE:   {Row: 0, Col: 0},
	BodyCornerSW:   {Row: 0, Col: 2},
	BodyCornerNW:   {Row: 2, Col: 2},
	BodyCornerNE:   {Row: 1, Col: 0},
	BodyHorizontal: {Row: 0, Col: 1},
	BodyVertical:   {Row: 1, Col: 2},
	Food:           {Row: 3, Col: 0},
}

// Bounds returns the pixel rectangle of t on a sheet whose tiles are tile pixels wide.
func Bounds(t Tag, tile int) image.Rectangle {
	c := Layout[t]
	x, y := c.Col*tile, c.Row*tile
	return image.Rect(x, y, x+tile, y+tile)
}

// ErrNotSliceable is returned for images that cannot produce sub-images.
var ErrNotSliceable = errors.New("sprite: image does not support SubImage")

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Slice cuts a sheet into one image per tag. The sheet must be at least
// SheetCols x SheetRows tiles large.
func Slice(sheet image.Image, tile int) ([Count]image.Image, error) {
	var out [Count]image.Image

	if tile <= 0 {
		return out, fmt.Errorf("sprite: invalid tile size %d", tile)
	}
	sub, ok := sheet.(subImager)
	if !ok {
		return out, ErrNotSliceable
	}

	b := sheet.Bounds()
	if b.Dx() < SheetCols*tile || b.Dy() < SheetRows*tile {
		return out, fmt.Errorf("sprite: sheet is %dx%d, need at least %dx%d",
			b.Dx(), b.Dy(), SheetCols*tile, SheetRows*tile)
	}

	for _, t := range Tags() {
		r := Bounds(t, tile).Add(b.Min)
		out[t] = sub.SubImage(r)
	}
	return out, nil
}

// side bits for procedurally drawn pieces
const (
	sideN = 1 << iota
	sideE
	sideS
	sideW
)

var links = [tagCount]int{
	HeadUp:         sideS,
	HeadDown:       sideN,
	HeadLeft:       sideE,
	HeadRight:      sideW,
	TailUp:         sideN,
	TailDown:       sideS,
	TailLeft:       sideW,
	TailRight:      sideE,
	BodyHorizontal: sideW | sideE,
	BodyVertical:   sideN | sideS,
	BodyCornerSW:   sideS | sideW,
	BodyCornerSE:   sideS | sideE,
	BodyCornerNE:   sideN | sideE,
	BodyCornerNW:   sideN | sideW,
}

var (
	bodyColor = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	headColor = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	eyeColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	foodColor = color.RGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
	stemColor = color.RGBA{R: 0x6d, G: 0x4c, B: 0x41, A: 0xff}
)

// DefaultSheet draws a flat-colored sheet with the same layout as the
// reference artwork. It is used when no sheet file is configured.
func DefaultSheet(tile int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SheetCols*tile, SheetRows*tile))
	for _, t := range Tags() {
		drawPiece(img, t, Bounds(t, tile))
	}
	return img
}

func drawPiece(dst draw.Image, t Tag, r image.Rectangle) {
	tile := r.Dx()
	q := tile / 4

	switch {
	case t == Food:
		cx, cy := r.Min.X+tile/2, r.Min.Y+tile/2+q/4
		rad := tile/2 - q/2
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				dx, dy := x-cx, y-cy
				if dx*dx+dy*dy <= rad*rad {
					dst.Set(x, y, foodColor)
				}
			}
		}
		fill(dst, image.Rect(cx-q/8-1, r.Min.Y+q/4, cx+q/8+1, cy-rad+q/4), stemColor)

	case t.IsTail():
		thin := q / 2
		center := image.Rect(r.Min.X+2*q-thin, r.Min.Y+2*q-thin, r.Min.X+2*q+thin, r.Min.Y+2*q+thin)
		fill(dst, center, bodyColor)
		drawArms(dst, r, center, links[t], bodyColor)

	case t.IsHead():
		center := image.Rect(r.Min.X+q/2, r.Min.Y+q/2, r.Max.X-q/2, r.Max.Y-q/2)
		fill(dst, center, headColor)
		drawArms(dst, r, image.Rect(r.Min.X+q, r.Min.Y+q, r.Max.X-q, r.Max.Y-q), links[t], headColor)
		drawEyes(dst, t, r)

	default:
		center := image.Rect(r.Min.X+q, r.Min.Y+q, r.Max.X-q, r.Max.Y-q)
		fill(dst, center, bodyColor)
		drawArms(dst, r, center, links[t], bodyColor)
	}
}

// drawArms extends center to every linked side of r.
func drawArms(dst draw.Image, r, center image.Rectangle, sides int, c color.Color) {
	if sides&sideN != 0 {
		fill(dst, image.Rect(center.Min.X, r.Min.Y, center.Max.X, center.Min.Y), c)
	}
	if sides&sideS != 0 {
		fill(dst, image.Rect(center.Min.X, center.Max.Y, center.Max.X, r.Max.Y), c)
	}
	if sides&sideW != 0 {
		fill(dst, image.Rect(r.Min.X, center.Min.Y, center.Min.X, center.Max.Y), c)
	}
	if sides&sideE != 0 {
		fill(dst, image.Rect(center.Max.X, center.Min.Y, r.Max.X, center.Max.Y), c)
	}
}

func drawEyes(dst draw.Image, t Tag, r image.Rectangle) {
	tile := r.Dx()
	e := tile / 8
	near, far := tile/4, tile-tile/4-e

	var eyes [2]image.Point
	switch t {
	case HeadUp:
		eyes = [2]image.Point{{near, near}, {far, near}}
	case HeadDown:
		eyes = [2]image.Point{{near, far}, {far, far}}
	case HeadLeft:
		eyes = [2]image.Point{{near, near}, {near, far}}
	case HeadRight:
		eyes = [2]image.Point{{far, near}, {far, far}}
	}
	for _, p := range eyes {
		min := r.Min.Add(p)
		fill(dst, image.Rectangle{Min: min, Max: min.Add(image.Pt(e, e))}, eyeColor)
	}
}

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Package sprite selects which of the 15 snake pieces represents a segment
// and knows how those pieces are laid out on a sprite sheet.
package sprite

// Tag identifies one visual piece.
type Tag int

const (
	HeadUp Tag = iota
	HeadDown
	HeadLeft
	HeadRight
	TailUp
	TailDown
	TailLeft
	TailRight
	BodyHorizontal
	BodyVertical
	BodyCornerSW // joins the bottom and left sides
	BodyCornerSE // joins the bottom and right sides
	BodyCornerNE // joins the top and right sides
	BodyCornerNW // joins the top and left sides
	Food

	tagCount
)

// Count is the number of distinct tags.
const Count = int(tagCount)

var tagNames = [tagCount]string{
	HeadUp:         "head-up",
	HeadDown:       "head-down",
	HeadLeft:       "head-left",
	HeadRight:      "head-right",
	TailUp:         "tail-up",
	TailDown:       "tail-down",
	TailLeft:       "tail-left",
	TailRight:      "tail-right",
	BodyHorizontal: "body-horizontal",
	BodyVertical:   "body-vertical",
	BodyCornerSW:   "body-corner-sw",
	BodyCornerSE:   "body-corner-se",
	BodyCornerNE:   "body-corner-ne",
	BodyCornerNW:   "body-corner-nw",
	Food:           "food",
}

// Tags returns every tag in declaration order.
func Tags() []Tag {
	tags := make([]Tag, Count)
	for i := range tags {
		tags[i] = Tag(i)
	}
	return tags
}

// Valid reports whether t is one of the 15 tags.
func (t Tag) Valid() bool {
	return t >= 0 && t < tagCount
}

func (t Tag) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return tagNames[t]
}

// IsHead reports whether t is one of the head pieces.
func (t Tag) IsHead() bool {
	return t >= HeadUp && t <= HeadRight
}

// IsTail reports whether t is one of the tail pieces.
func (t Tag) IsTail() bool {
	return t >= TailUp && t <= TailRight
}

// IsBody reports whether t is a straight or corner body piece.
func (t Tag) IsBody() bool {
	return t >= BodyHorizontal && t <= BodyCornerNW
}

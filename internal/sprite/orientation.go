package sprite

import "github.com/vovakirdan/spritesnake/internal/core"

// bodyTable is indexed by [prev][next]. A reversal keeps the straight
// piece of the axis it came from.
var bodyTable = [4][4]Tag{
	core.DirUp: {
		core.DirUp:    BodyVertical,
		core.DirDown:  BodyVertical,
		core.DirLeft:  BodyCornerSW,
		core.DirRight: BodyCornerSE,
	},
	core.DirDown: {
		core.DirUp:    BodyVertical,
		core.DirDown:  BodyVertical,
		core.DirLeft:  BodyCornerNW,
		core.DirRight: BodyCornerNE,
	},
	core.DirLeft: {
		core.DirUp:    BodyCornerNE,
		core.DirDown:  BodyCornerSE,
		core.DirLeft:  BodyHorizontal,
		core.DirRight: BodyHorizontal,
	},
	core.DirRight: {
		core.DirUp:    BodyCornerNW,
		core.DirDown:  BodyCornerSW,
		core.DirLeft:  BodyHorizontal,
		core.DirRight: BodyHorizontal,
	},
}

var headTable = [4]Tag{
	core.DirUp:    HeadUp,
	core.DirDown:  HeadDown,
	core.DirLeft:  HeadLeft,
	core.DirRight: HeadRight,
}

var tailTable = [4]Tag{
	core.DirUp:    TailUp,
	core.DirDown:  TailDown,
	core.DirLeft:  TailLeft,
	core.DirRight: TailRight,
}

// Orientation returns the body piece for a segment that was entered moving
// prev and is left moving next.
func Orientation(prev, next core.Direction) Tag {
	return bodyTable[prev][next]
}

// HeadTag returns the head piece for the current heading.
func HeadTag(d core.Direction) Tag {
	return headTable[d]
}

// TailTag returns the tail piece for the direction of the last body segment.
func TailTag(d core.Direction) Tag {
	return tailTable[d]
}

// Straight returns the straight body piece running along d.
func Straight(d core.Direction) Tag {
	return bodyTable[d][d]
}

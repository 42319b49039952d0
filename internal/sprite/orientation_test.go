package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/spritesnake/internal/core"
)

// nestedOrientation is the branch-per-direction form of the selector.
// The lookup table must agree with it on every pair.
func nestedOrientation(prev, next core.Direction) Tag {
	switch prev {
	case core.DirUp:
		switch next {
		case core.DirLeft:
			return BodyCornerSW
		case core.DirRight:
			return BodyCornerSE
		default:
			return BodyVertical
		}
	case core.DirDown:
		switch next {
		case core.DirLeft:
			return BodyCornerNW
		case core.DirRight:
			return BodyCornerNE
		default:
			return BodyVertical
		}
	case core.DirLeft:
		switch next {
		case core.DirUp:
			return BodyCornerNE
		case core.DirDown:
			return BodyCornerSE
		default:
			return BodyHorizontal
		}
	default:
		switch next {
		case core.DirUp:
			return BodyCornerNW
		case core.DirDown:
			return BodyCornerSW
		default:
			return BodyHorizontal
		}
	}
}

func TestOrientationCoversAllPairs(t *testing.T) {
	seen := 0
	for _, prev := range core.Directions() {
		for _, next := range core.Directions() {
			got := Orientation(prev, next)
			assert.True(t, got.IsBody(), "%v->%v gave non-body tag %v", prev, next, got)
			assert.Equal(t, nestedOrientation(prev, next), got, "%v->%v", prev, next)
			seen++
		}
	}
	assert.Equal(t, 16, seen)
}

func TestOrientationStraightPieces(t *testing.T) {
	for _, d := range core.Directions() {
		want := BodyHorizontal
		if d.Vertical() {
			want = BodyVertical
		}
		assert.Equal(t, want, Orientation(d, d), "diagonal entry for %v", d)
		assert.Equal(t, want, Orientation(d, d.Opposite()), "reversal entry for %v", d)
		assert.Equal(t, want, Straight(d))
	}
}

func TestOrientationCorners(t *testing.T) {
	tests := []struct {
		prev, next core.Direction
		want       Tag
	}{
		{core.DirUp, core.DirLeft, BodyCornerSW},
		{core.DirRight, core.DirDown, BodyCornerSW},
		{core.DirUp, core.DirRight, BodyCornerSE},
		{core.DirLeft, core.DirDown, BodyCornerSE},
		{core.DirDown, core.DirRight, BodyCornerNE},
		{core.DirLeft, core.DirUp, BodyCornerNE},
		{core.DirDown, core.DirLeft, BodyCornerNW},
		{core.DirRight, core.DirUp, BodyCornerNW},
	}

	corners := map[Tag]int{}
	for _, tc := range tests {
		got := Orientation(tc.prev, tc.next)
		assert.Equal(t, tc.want, got, "%v->%v", tc.prev, tc.next)
		corners[got]++
	}

	// 8 ordered pairs collapse onto 4 corner shapes, two pairs each
	require.Len(t, corners, 4)
	for tag, n := range corners {
		assert.Equal(t, 2, n, "corner %v", tag)
	}
}

func TestCornerJoinsEntryAndExitSides(t *testing.T) {
	// A segment entered moving prev is joined on the side opposite to prev;
	// it is left through the side named by next.
	sideOf := map[core.Direction]int{
		core.DirUp:    sideN,
		core.DirDown:  sideS,
		core.DirLeft:  sideW,
		core.DirRight: sideE,
	}
	for _, prev := range core.Directions() {
		for _, next := range core.Directions() {
			if prev == next || prev.IsOpposite(next) {
				continue
			}
			want := sideOf[prev.Opposite()] | sideOf[next]
			tag := Orientation(prev, next)
			assert.Equal(t, want, links[tag], "%v->%v gave %v", prev, next, tag)
		}
	}
}

func TestHeadAndTailTags(t *testing.T) {
	heads := map[Tag]bool{}
	tails := map[Tag]bool{}
	for _, d := range core.Directions() {
		h, tl := HeadTag(d), TailTag(d)
		assert.True(t, h.IsHead(), "HeadTag(%v) = %v", d, h)
		assert.True(t, tl.IsTail(), "TailTag(%v) = %v", d, tl)
		heads[h] = true
		tails[tl] = true
	}
	assert.Len(t, heads, 4)
	assert.Len(t, tails, 4)

	assert.Equal(t, HeadRight, HeadTag(core.DirRight))
	assert.Equal(t, TailUp, TailTag(core.DirUp))
}

func TestTagNames(t *testing.T) {
	names := map[string]bool{}
	for _, tag := range Tags() {
		require.True(t, tag.Valid())
		names[tag.String()] = true
	}
	assert.Len(t, names, Count)
	assert.Equal(t, 15, Count)
	assert.Equal(t, "unknown", Tag(99).String())
	assert.False(t, Food.IsBody())
	assert.False(t, Food.IsHead())
	assert.False(t, Food.IsTail())
}

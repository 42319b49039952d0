package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/sprite"
)

// StateType is the coarse session state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StatePaused   StateType = "paused"
	StateGameOver StateType = "game_over"
)

// Segment is one snake piece as recorded in a snapshot.
type Segment struct {
	Pos core.Point
	Dir core.Direction
	Tag sprite.Tag
}

// Snapshot captures the complete engine state for determinism tests and replays.
type Snapshot struct {
	Tick    uint64
	Score   int
	Length  int
	Heading core.Direction
	Head    Segment
	Body    []Segment
	Tail    Segment
	Foods   []core.Point
	State   StateType
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case e.gameOver:
		state = StateGameOver
	case e.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:    e.tick,
		Score:   e.score,
		Length:  e.Length(),
		Heading: e.heading,
		Head:    Segment{Pos: e.head.Pos, Dir: e.head.Dir, Tag: e.head.Tag},
		Body:    make([]Segment, len(e.body)),
		Tail:    Segment{Pos: e.tail.Pos, Dir: e.tail.Dir, Tag: e.tail.Tag},
		Foods:   make([]core.Point, len(e.foods)),
		State:   state,
	}
	for i, seg := range e.body {
		s.Body[i] = Segment{Pos: seg.Pos, Dir: seg.Dir, Tag: seg.Tag}
	}
	for i, f := range e.foods {
		s.Foods[i] = f.Pos
	}
	return s
}

// String renders the snapshot as a short multi-line report.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Length: %d, State: %s\n", s.Tick, s.Score, s.Length, s.State)
	fmt.Fprintf(&b, "Heading: %s, Head: %v %s\n", s.Heading, s.Head.Pos, s.Head.Tag)

	b.WriteString("Body:")
	for _, seg := range s.Body {
		fmt.Fprintf(&b, " %v %s", seg.Pos, seg.Tag)
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "Tail: %v %s\n", s.Tail.Pos, s.Tail.Tag)
	b.WriteString("Food:")
	for _, p := range s.Foods {
		fmt.Fprintf(&b, " %v", p)
	}
	b.WriteByte('\n')
	return b.String()
}

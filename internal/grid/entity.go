// Package grid holds the cell-aligned objects the snake engine moves around:
// plain entities such as food and directional movers for snake segments.
package grid

import (
	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/sprite"
)

// Entity is a drawable object pinned to one board cell.
// Tag names the bitmap the render boundary draws for it.
type Entity struct {
	Pos core.Point
	Tag sprite.Tag
}

// NewEntity creates an entity at p.
func NewEntity(p core.Point, tag sprite.Tag) Entity {
	return Entity{Pos: p, Tag: tag}
}

// Bounds returns the pixel rectangle covered by the entity for the given cell size.
func (e Entity) Bounds(cell int) core.Rect {
	return core.CellRect(e.Pos, cell)
}

// Intersects reports whether the two entities overlap at the given cell size.
func (e Entity) Intersects(other Entity, cell int) bool {
	return e.Bounds(cell).Intersects(other.Bounds(cell))
}

// Mover is an entity with a facing direction.
type Mover struct {
	Entity
	Dir core.Direction
}

// NewMover creates a mover at p facing d.
func NewMover(p core.Point, d core.Direction, tag sprite.Tag) Mover {
	return Mover{Entity: Entity{Pos: p, Tag: tag}, Dir: d}
}

// Step moves the mover one cell along its direction.
func (m *Mover) Step() {
	m.Pos = m.Pos.Add(m.Dir.Delta())
}

// StepBack moves the mover one cell against its direction.
func (m *Mover) StepBack() {
	m.Pos = m.Pos.Add(m.Dir.Opposite().Delta())
}

// Follow copies position and direction from leader. The tag is left alone.
func (m *Mover) Follow(leader Mover) {
	m.Pos = leader.Pos
	m.Dir = leader.Dir
}

package snake

import "github.com/toroarcade/torosnake/internal/core"

// Entity is a positioned, sized, colored axis-aligned square: the atomic
// drawable unit for both snake segments and food. Position is the top-left
// corner in pixel space; width and height are always equal.
type Entity struct {
	position core.Vec2
	size     float64
	color    core.Color
}

// NewEntity creates an entity with the given size, position, and color.
func NewEntity(size float64, position core.Vec2, color core.Color) *Entity {
	return &Entity{
		position: position,
		size:     size,
		color:    color,
	}
}

// Position returns the top-left corner of the entity.
func (e *Entity) Position() core.Vec2 {
	return e.position
}

// SetPosition moves the entity. This is the only mutator.
func (e *Entity) SetPosition(position core.Vec2) {
	e.position = position
}

// Size returns the side length of the entity's square.
func (e *Entity) Size() float64 {
	return e.size
}

// Color returns the entity's fill color.
func (e *Entity) Color() core.Color {
	return e.color
}

// Area returns the entity's axis-aligned bounding rectangle.
func (e *Entity) Area() core.RectF {
	return core.NewRectF(e.position.X, e.position.Y, e.size, e.size)
}

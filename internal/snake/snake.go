package snake

import (
	"github.com/gammazero/deque"

	"github.com/toroarcade/torosnake/internal/core"
)

// Snake is an ordered double-ended sequence of entities, head at the front.
// The sequence is never empty: construction and Reset always retain the
// head. All segments share the same size and color.
//
// Movement recycles the tail entity as the new head instead of allocating a
// fresh segment each step, so segment identity, not content, is what moves.
type Snake struct {
	segments      deque.Deque[*Entity]
	direction     Direction // direction applied on the most recent advance
	nextDirection Direction // direction requested by input, applied next advance
}

// NewSnake creates a one-segment snake (the head) at the given position.
func NewSnake(position core.Vec2, size float64, color core.Color) *Snake {
	s := &Snake{}
	s.segments.PushBack(NewEntity(size, position, color))
	return s
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.segments.Len()
}

// HeadPosition returns the position of the head segment.
func (s *Snake) HeadPosition() core.Vec2 {
	return s.segments.Front().Position()
}

// Size returns the side length of each segment.
func (s *Snake) Size() float64 {
	return s.segments.Front().Size()
}

// Color returns the fill color of each segment.
func (s *Snake) Color() core.Color {
	return s.segments.Front().Color()
}

// Area returns the bounding rectangle of the head segment.
func (s *Snake) Area() core.RectF {
	return s.segments.Front().Area()
}

// Direction returns the direction applied on the most recent advance.
func (s *Snake) Direction() Direction {
	return s.direction
}

// NextDirection returns the pending direction for the next advance.
func (s *Snake) NextDirection() Direction {
	return s.nextDirection
}

// SetNextDirection stores the direction to apply on the next advance.
func (s *Snake) SetNextDirection(d Direction) {
	s.nextDirection = d
}

// ClearNextDirection drops any pending direction change.
func (s *Snake) ClearNextDirection() {
	s.nextDirection = DirNone
}

// Segment returns the entity at the given index, head at index 0.
func (s *Snake) Segment(i int) *Entity {
	return s.segments.At(i)
}

// SelfCollision returns true if the head overlaps any of the following
// segments.
func (s *Snake) SelfCollision() bool {
	return s.Collision(s.Area(), 1)
}

// Collision returns true only if the probe area overlaps any segment at or
// after index skip. Segment areas are taken at each segment's position with
// the probe's width and height; the test is exact rectangle intersection.
func (s *Snake) Collision(area core.RectF, skip int) bool {
	for i := skip; i < s.segments.Len(); i++ {
		p := s.segments.At(i).Position()
		if area.Intersects(core.NewRectF(p.X, p.Y, area.W, area.H)) {
			return true
		}
	}
	return false
}

// Grow appends a new segment at the current head position. It overlaps the
// head until the next advance moves it into place; growth happens at most
// once per step so the overlap is never visible as garbage.
func (s *Snake) Grow() {
	s.segments.PushBack(NewEntity(s.Size(), s.HeadPosition(), s.Color()))
}

// Reset truncates the snake to the single head segment and clears both
// direction fields.
func (s *Snake) Reset() {
	for s.segments.Len() > 1 {
		s.segments.PopBack()
	}
	s.direction = DirNone
	s.nextDirection = DirNone
}

// Advance moves the snake one step within the viewport. The pending
// direction is committed exactly once per step. The tail segment is removed,
// repositioned one segment-size from the head in the direction of travel
// (wrapping toroidally within the viewport), and reinserted as the new head.
// With no direction set the detached tail keeps its old position, so the
// snake does not move.
func (s *Snake) Advance(viewport core.RectF) {
	s.direction = s.nextDirection

	head := s.HeadPosition()
	size := s.Size()
	last := s.segments.PopBack()

	switch s.direction {
	case DirLeft:
		last.SetPosition(core.Vec2{X: core.Wrap(head.X-size, viewport.X, viewport.W), Y: head.Y})
	case DirUp:
		last.SetPosition(core.Vec2{X: head.X, Y: core.Wrap(head.Y-size, viewport.Y, viewport.H)})
	case DirRight:
		last.SetPosition(core.Vec2{X: core.Wrap(head.X+size, viewport.X, viewport.W), Y: head.Y})
	case DirDown:
		last.SetPosition(core.Vec2{X: head.X, Y: core.Wrap(head.Y+size, viewport.Y, viewport.H)})
	}

	s.segments.PushFront(last)
}

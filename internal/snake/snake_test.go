package snake

import (
	"testing"

	"github.com/toroarcade/torosnake/internal/core"
)

func testViewport() core.RectF {
	return core.NewRectF(0, 0, 400, 400)
}

func TestAdvanceWithoutDirectionDoesNotMove(t *testing.T) {
	s := NewSnake(core.Vec2{X: 120, Y: 80}, 40, core.ColorGreen)
	s.Grow()
	s.Grow()

	before := make([]core.Vec2, s.Len())
	for i := range before {
		before[i] = s.Segment(i).Position()
	}

	s.Advance(testViewport())

	if s.Len() != len(before) {
		t.Fatalf("segment count changed: %d -> %d", len(before), s.Len())
	}
	for i := range before {
		if got := s.Segment(i).Position(); got != before[i] {
			t.Errorf("segment %d moved from %v to %v with unset direction", i, before[i], got)
		}
	}
}

func TestAdvanceMovesHeadBySegmentSize(t *testing.T) {
	s := NewSnake(core.Vec2{X: 0, Y: 0}, 40, core.ColorGreen)
	s.SetNextDirection(DirRight)

	s.Advance(testViewport())

	if got := s.HeadPosition(); got != (core.Vec2{X: 40, Y: 0}) {
		t.Errorf("head at %v, want (40,0)", got)
	}
	if s.Len() != 1 {
		t.Errorf("segment count = %d, want 1", s.Len())
	}
	if s.Direction() != DirRight {
		t.Errorf("direction = %v, want right", s.Direction())
	}
}

func TestAdvanceWrapsToroidally(t *testing.T) {
	// Rightmost column in a 400-wide viewport: next step wraps to x=20.
	s := NewSnake(core.Vec2{X: 380, Y: 0}, 40, core.ColorGreen)
	s.SetNextDirection(DirRight)

	s.Advance(testViewport())

	if got := s.HeadPosition(); got != (core.Vec2{X: 20, Y: 0}) {
		t.Errorf("head at %v, want (20,0)", got)
	}
}

func TestAdvanceWrapsWithNonZeroOrigin(t *testing.T) {
	// A viewport offset by a header strip must wrap relative to its own
	// origin, not the window edge.
	vp := core.NewRectF(40, 80, 400, 400)
	s := NewSnake(core.Vec2{X: 40, Y: 80}, 40, core.ColorGreen)
	s.SetNextDirection(DirUp)

	s.Advance(vp)

	if got := s.HeadPosition(); got != (core.Vec2{X: 40, Y: 440}) {
		t.Errorf("head at %v, want (40,440)", got)
	}

	s.SetNextDirection(DirLeft)
	s.Advance(vp)
	if got := s.HeadPosition(); got != (core.Vec2{X: 400, Y: 440}) {
		t.Errorf("head at %v, want (400,440)", got)
	}
}

func TestAdvanceRecyclesTailAsHead(t *testing.T) {
	s := NewSnake(core.Vec2{X: 0, Y: 0}, 40, core.ColorGreen)
	s.Grow()
	s.Grow()
	s.SetNextDirection(DirDown)

	tail := s.Segment(s.Len() - 1)
	s.Advance(testViewport())

	if s.Segment(0) != tail {
		t.Error("former tail entity should become the new head (identity, not copy)")
	}
	if s.Len() != 3 {
		t.Errorf("segment count = %d, want 3", s.Len())
	}
}

func TestSelfCollisionFalseForSingleSegment(t *testing.T) {
	s := NewSnake(core.Vec2{X: 100, Y: 100}, 40, core.ColorGreen)

	if s.SelfCollision() {
		t.Error("single-segment snake can never self-collide")
	}

	s.SetNextDirection(DirLeft)
	s.Advance(testViewport())
	if s.SelfCollision() {
		t.Error("single-segment snake can never self-collide after moving")
	}
}

func TestSelfCollisionDetectsOverlap(t *testing.T) {
	s := NewSnake(core.Vec2{X: 200, Y: 200}, 40, core.ColorGreen)
	s.Grow()
	s.Grow()
	s.Grow()
	// Fold a segment back onto the head.
	s.Segment(1).SetPosition(core.Vec2{X: 200, Y: 240})
	s.Segment(2).SetPosition(core.Vec2{X: 240, Y: 240})
	s.Segment(3).SetPosition(core.Vec2{X: 200, Y: 200})

	if !s.SelfCollision() {
		t.Error("head overlapping a body segment should self-collide")
	}
}

func TestGrowAppendsAtHeadPosition(t *testing.T) {
	s := NewSnake(core.Vec2{X: 80, Y: 120}, 40, core.ColorGreen)

	s.Grow()

	if s.Len() != 2 {
		t.Fatalf("segment count = %d, want 2", s.Len())
	}
	if got := s.Segment(1).Position(); got != (core.Vec2{X: 80, Y: 120}) {
		t.Errorf("new segment at %v, want pre-growth head position (80,120)", got)
	}
	if s.Segment(1).Size() != 40 || s.Segment(1).Color() != core.ColorGreen {
		t.Error("new segment must share the snake's size and color")
	}
}

func TestResetKeepsOnlyHeadAndClearsDirections(t *testing.T) {
	s := NewSnake(core.Vec2{X: 0, Y: 0}, 40, core.ColorGreen)
	for i := 0; i < 7; i++ {
		s.Grow()
	}
	s.SetNextDirection(DirDown)
	s.Advance(testViewport())

	s.Reset()

	if s.Len() != 1 {
		t.Errorf("segment count after reset = %d, want 1", s.Len())
	}
	if s.Direction() != DirNone || s.NextDirection() != DirNone {
		t.Errorf("directions after reset = %v/%v, want none/none", s.Direction(), s.NextDirection())
	}
}

func TestCollisionSkip(t *testing.T) {
	s := NewSnake(core.Vec2{X: 0, Y: 0}, 40, core.ColorGreen)
	s.Grow()
	s.Segment(1).SetPosition(core.Vec2{X: 40, Y: 0})

	probe := core.NewRectF(0, 0, 40, 40)
	if !s.Collision(probe, 0) {
		t.Error("probe over the head should collide with skip=0")
	}
	if s.Collision(probe, 1) {
		t.Error("probe over only the head should not collide with skip=1")
	}

	probe = core.NewRectF(40, 0, 40, 40)
	if !s.Collision(probe, 1) {
		t.Error("probe over a body segment should collide with skip=1")
	}
}

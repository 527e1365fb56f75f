package snake

import (
	"math"
	"strings"
	"testing"

	"github.com/toroarcade/torosnake/internal/core"
)

func testOptions() Options {
	return Options{
		PixelW:      400,
		PixelH:      400,
		EntitySize:  40,
		SnakeColor:  core.ColorGreen,
		FoodColor:   core.ColorRed,
		TextColor:   core.ColorWhite,
		BorderColor: core.ColorGray,
	}
}

func newTestGame(seed int64) *Game {
	g := New(testOptions())
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 20, FPS: 10, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestOptionsValidate(t *testing.T) {
	if err := testOptions().Validate(); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}

	bad := testOptions()
	bad.EntitySize = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero entity size should be rejected")
	}

	bad = testOptions()
	bad.PixelW = 40
	if err := bad.Validate(); err == nil {
		t.Error("playfield narrower than two cells should be rejected")
	}
}

func TestStartsPaused(t *testing.T) {
	g := newTestGame(1)

	if g.State().Phase != core.PhasePaused {
		t.Fatalf("initial phase = %v, want paused", g.State().Phase)
	}

	head := g.player.HeadPosition()
	g.Step(frame())
	if g.player.HeadPosition() != head {
		t.Error("snake must not move while paused")
	}
}

func TestDirectionalInputStartsPlay(t *testing.T) {
	g := newTestGame(1)
	head := g.player.HeadPosition()

	res := g.Step(frame(core.ActionRight))

	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, want playing", res.State.Phase)
	}
	want := core.Vec2{X: core.Wrap(head.X+40, g.viewport.X, g.viewport.W), Y: head.Y}
	if got := g.player.HeadPosition(); got != want {
		t.Errorf("head at %v, want %v", got, want)
	}
}

func TestPauseClearsPendingDirectionAndFreezes(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionRight))

	g.Step(frame(core.ActionPause))

	if g.State().Phase != core.PhasePaused {
		t.Fatalf("phase = %v, want paused", g.State().Phase)
	}
	if g.player.NextDirection() != DirNone {
		t.Error("pausing must clear the pending direction")
	}

	head := g.player.HeadPosition()
	for i := 0; i < 5; i++ {
		g.Step(frame())
	}
	if g.player.HeadPosition() != head {
		t.Error("snake must not move while paused")
	}

	// Pause key resumes; the snake holds until a new direction arrives.
	g.Step(frame(core.ActionPause))
	if g.State().Phase != core.PhasePlaying {
		t.Errorf("phase = %v, want playing after resume", g.State().Phase)
	}
}

func TestReversalRejectedWithBody(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionRight))
	g.player.Grow()

	g.Step(frame(core.ActionLeft))

	if g.player.NextDirection() != DirRight {
		t.Errorf("nextDirection = %v, want right (reversal must be rejected)", g.player.NextDirection())
	}
	if g.player.Direction() != DirRight {
		t.Errorf("direction = %v, want right", g.player.Direction())
	}
}

func TestReversalAllowedForSingleSegment(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionRight))

	// One segment: no neck to run into, reversal is harmless.
	g.Step(frame(core.ActionLeft))

	if g.player.Direction() != DirLeft {
		t.Errorf("direction = %v, want left", g.player.Direction())
	}
}

func TestEatingGrowsScoresAndRelocatesFood(t *testing.T) {
	g := newTestGame(7)
	g.phase = core.PhasePlaying

	vp := g.viewport
	g.player.Segment(0).SetPosition(core.Vec2{X: vp.X, Y: vp.Y})
	g.player.SetNextDirection(DirRight)
	g.food.SetPosition(core.Vec2{X: vp.X + 40, Y: vp.Y})

	res := g.Step(frame())

	if g.player.Len() != 2 {
		t.Errorf("snake length = %d, want 2 after eating", g.player.Len())
	}
	if res.State.Score != ScorePerFood {
		t.Errorf("score = %d, want %d", res.State.Score, ScorePerFood)
	}
	if len(res.Events) != 1 || res.Events[0] != core.EventAteFood {
		t.Errorf("events = %v, want [EventAteFood]", res.Events)
	}

	// Relocated food must be grid-aligned, inside the viewport, and off the snake.
	food := g.food.Position()
	if math.Mod(food.X-vp.X, 40) != 0 || math.Mod(food.Y-vp.Y, 40) != 0 {
		t.Errorf("food at %v is not grid-aligned to the viewport origin", food)
	}
	if !vp.Contains(food.X, food.Y) {
		t.Errorf("food at %v is outside the viewport %v", food, vp)
	}
	if g.player.Collision(g.food.Area(), 0) {
		t.Errorf("food at %v overlaps the snake", food)
	}
}

func TestSelfCollisionEntersGameOver(t *testing.T) {
	g := newTestGame(3)
	g.phase = core.PhasePlaying
	g.score = 30

	// Spiral that closes on itself when the head moves right.
	g.player = NewSnake(core.Vec2{X: 200, Y: 200}, 40, core.ColorGreen)
	for i := 0; i < 4; i++ {
		g.player.Grow()
	}
	g.player.Segment(1).SetPosition(core.Vec2{X: 200, Y: 240})
	g.player.Segment(2).SetPosition(core.Vec2{X: 240, Y: 240})
	g.player.Segment(3).SetPosition(core.Vec2{X: 240, Y: 200})
	g.player.Segment(4).SetPosition(core.Vec2{X: 240, Y: 160})
	g.player.SetNextDirection(DirRight)
	// Keep the food out of the way.
	g.food.SetPosition(core.Vec2{X: g.viewport.X, Y: g.viewport.Y})

	res := g.Step(frame())

	if res.State.Phase != core.PhaseGameOver {
		t.Fatalf("phase = %v, want game-over", res.State.Phase)
	}
	if len(res.Events) != 1 || res.Events[0] != core.EventGameOver {
		t.Errorf("events = %v, want [EventGameOver]", res.Events)
	}
	if res.State.Score != 30 {
		t.Errorf("score = %d, game over must not clear the score by itself", res.State.Score)
	}
}

func TestGameOverIsTerminalWithoutInput(t *testing.T) {
	g := newTestGame(3)
	g.phase = core.PhaseGameOver

	head := g.player.HeadPosition()
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}

	if g.State().Phase != core.PhaseGameOver {
		t.Error("game over must persist until directional input")
	}
	if g.player.HeadPosition() != head {
		t.Error("snake must not move while in game over")
	}
}

func TestDirectionalInputRecoversFromGameOver(t *testing.T) {
	g := newTestGame(3)
	g.phase = core.PhaseGameOver
	g.score = 120
	for i := 0; i < 4; i++ {
		g.player.Grow()
	}
	// Keep the food away from the recovering snake's path.
	head := g.player.HeadPosition()
	g.food.SetPosition(core.Vec2{
		X: core.Wrap(head.X+200, g.viewport.X, g.viewport.W),
		Y: core.Wrap(head.Y+200, g.viewport.Y, g.viewport.H),
	})

	res := g.Step(frame(core.ActionDown))

	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, want playing", res.State.Phase)
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d, want 0 after recovery", res.State.Score)
	}
	if g.player.Len() != 1 {
		t.Errorf("snake length = %d, want 1 after recovery", g.player.Len())
	}
	if g.player.Direction() != DirDown {
		t.Errorf("direction = %v, want down (new direction armed on recovery)", g.player.Direction())
	}
}

func TestRestartKeyResetsToPaused(t *testing.T) {
	g := newTestGame(3)
	g.phase = core.PhaseGameOver
	g.score = 50
	g.player.Grow()

	g.Step(frame(core.ActionRestart))

	if g.State().Phase != core.PhasePaused {
		t.Errorf("phase = %v, want paused", g.State().Phase)
	}
	if g.State().Score != 0 || g.player.Len() != 1 {
		t.Error("restart must reset score and snake length")
	}
}

func TestFoodNeverPlacedOnSnake(t *testing.T) {
	g := newTestGame(11)
	vp := g.viewport

	// Occupy most of the 10x10 grid with snake segments.
	g.player = NewSnake(core.Vec2{X: vp.X, Y: vp.Y}, 40, core.ColorGreen)
	for i := 1; i < 80; i++ {
		g.player.Grow()
		g.player.Segment(i).SetPosition(core.Vec2{
			X: vp.X + float64(i%10)*40,
			Y: vp.Y + float64(i/10)*40,
		})
	}

	for i := 0; i < 200; i++ {
		g.placeFood()
		if g.player.Collision(g.food.Area(), 0) {
			t.Fatalf("iteration %d: food at %v overlaps the snake", i, g.food.Position())
		}
		pos := g.food.Position()
		if !vp.Contains(pos.X, pos.Y) {
			t.Fatalf("iteration %d: food at %v outside viewport", i, pos)
		}
	}
}

func TestRandomPositionGridAligned(t *testing.T) {
	g := newTestGame(5)
	vp := g.viewport

	for i := 0; i < 500; i++ {
		p := g.randomPosition()
		if !vp.Contains(p.X, p.Y) {
			t.Fatalf("position %v outside viewport %v", p, vp)
		}
		if math.Mod(p.X-vp.X, 40) != 0 || math.Mod(p.Y-vp.Y, 40) != 0 {
			t.Fatalf("position %v not aligned to the viewport grid", p)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(12345)
		for i := 0; i < 100; i++ {
			in := frame()
			switch i {
			case 0:
				in.Set(core.ActionRight)
			case 20:
				in.Set(core.ActionDown)
			case 40:
				in.Set(core.ActionLeft)
			case 60:
				in.Set(core.ActionUp)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()
	if s1 != s2 {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestRenderFrame(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(40, 20)

	g.Render(screen)
	content := screen.String()

	if !strings.Contains(content, "TOROSNAKE") {
		t.Error("header title missing")
	}
	if got := screen.Get(0, 1); got != '┌' {
		t.Errorf("border corner = %q, want ┌", got)
	}
	if !strings.Contains(content, "Paused") {
		t.Error("pause overlay missing while paused")
	}

	g.phase = core.PhaseGameOver
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("game over text missing")
	}
}

func TestScoreRightAligned(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(40, 20)

	g.score = 120
	g.Render(screen)

	// Playfield box is gridCols+2 = 12 cells wide; three digits end one
	// cell short of the right edge.
	row := screen.Row(0)
	if row[8:11] != "120" {
		t.Errorf("header row = %q, score not right-aligned", row)
	}
}

func TestTooSmallScreenShowsOverlayAndFreezes(t *testing.T) {
	g := New(testOptions())
	g.Reset(core.RuntimeConfig{ScreenW: 8, ScreenH: 5, FPS: 10, Seed: 1})

	if !g.tooSmall {
		t.Fatal("small screen should be detected")
	}

	head := g.player.HeadPosition()
	g.Step(frame(core.ActionRight))
	if g.player.HeadPosition() != head {
		t.Error("simulation must not advance while the window is too small")
	}

	screen := core.NewScreen(8, 5)
	g.Render(screen)
	if screen.String() == "" {
		t.Error("render should still produce output")
	}
}

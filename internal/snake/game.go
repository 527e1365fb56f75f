package snake

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/toroarcade/torosnake/internal/core"
)

// ScorePerFood is the score awarded for each piece of food eaten.
const ScorePerFood = 10

// Options are the fixed gameplay parameters, resolved from CLI arguments and
// the config file before the game is created.
type Options struct {
	PixelW, PixelH float64 // requested playfield size in pixels
	EntitySize     float64 // side length of every entity square
	SnakeColor     core.Color
	FoodColor      core.Color
	TextColor      core.Color
	BorderColor    core.Color
}

// Validate reports unusable option values. Called before any UI is created
// so bad startup arguments fail fast with a descriptive message.
func (o Options) Validate() error {
	if o.EntitySize <= 0 {
		return fmt.Errorf("snake: entity size must be positive, got %v", o.EntitySize)
	}
	if o.PixelW < 2*o.EntitySize || o.PixelH < 2*o.EntitySize {
		return fmt.Errorf("snake: playfield %vx%v is too small for entity size %v (need at least %vx%v)",
			o.PixelW, o.PixelH, o.EntitySize, 2*o.EntitySize, 2*o.EntitySize)
	}
	return nil
}

// Game orchestrates the snake, the food, the score, and the three-state
// machine. All geometry lives in continuous pixel space; one grid cell maps
// to one terminal cell at render time.
//
// The playfield is a torus: the viewport excludes the header row and the
// border frame, and wrap arithmetic is relative to the viewport origin.
type Game struct {
	opts Options
	rng  *rand.Rand
	tick uint64

	phase  core.Phase
	player *Snake
	food   *Entity
	score  int

	viewport core.RectF // pixel-space play area, origin offset by header+border

	gridCols, gridRows int
	screenW, screenH   int
	tooSmall           bool
}

// New creates a game with the given options. Reset must be called before
// the first Step.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// Reset initializes or restarts the game from scratch: seeds the RNG,
// derives the viewport, and places a fresh one-segment snake and food.
// The game starts paused, waiting for the first directional input.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.phase = core.PhasePaused
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	size := g.opts.EntitySize

	// Truncate the playfield to whole grid cells.
	playW := g.opts.PixelW - math.Mod(g.opts.PixelW, size)
	playH := g.opts.PixelH - math.Mod(g.opts.PixelH, size)
	g.gridCols = int(playW / size)
	g.gridRows = int(playH / size)

	// The viewport origin sits one cell right of the border column and two
	// cells below the top: row 0 is the score header, row 1 the top border.
	g.viewport = core.NewRectF(size, 2*size, playW, playH)

	// One border column each side, header row plus top and bottom border rows.
	g.tooSmall = cfg.ScreenW < g.gridCols+2 || cfg.ScreenH < g.gridRows+3

	g.player = NewSnake(g.randomPosition(), size, g.opts.SnakeColor)
	g.food = NewEntity(size, core.Vec2{}, g.opts.FoodColor)
	g.placeFood()
}

// Step advances the game by one fixed simulation tick: pending input is
// applied first, then the playing-state update runs. Returns the resulting
// state and any events (food eaten, game over) for the platform to act on.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var res core.StepResult
	g.handleInput(in)

	if g.phase == core.PhasePlaying && !g.tooSmall {
		g.update(&res)
	}

	res.State = g.State()
	return res
}

// handleInput applies one frame of input to the state machine and the
// snake's pending direction.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		switch g.phase {
		case core.PhasePlaying:
			g.phase = core.PhasePaused
			g.player.ClearNextDirection()
		case core.PhasePaused:
			g.phase = core.PhasePlaying
		}
	}

	if in.Has(core.ActionRestart) && g.phase == core.PhaseGameOver {
		g.resetRound()
		g.phase = core.PhasePaused
	}

	d := DirNone
	switch {
	case in.Has(core.ActionLeft):
		d = DirLeft
	case in.Has(core.ActionUp):
		d = DirUp
	case in.Has(core.ActionRight):
		d = DirRight
	case in.Has(core.ActionDown):
		d = DirDown
	}
	if d == DirNone {
		return
	}

	switch g.phase {
	case core.PhaseGameOver:
		// Directional input recovers from game over: the round resets
		// before the new direction is armed.
		g.resetRound()
		g.phase = core.PhasePlaying
	case core.PhasePaused:
		g.phase = core.PhasePlaying
	}

	// Reversal into the neck is forbidden; with a single segment there is
	// no neck, so any direction is allowed.
	if g.player.Len() == 1 || !d.IsOppositeTo(g.player.Direction()) {
		g.player.SetNextDirection(d)
	}
}

// resetRound restores the snake and score after a game over. Positions are
// kept; only length, direction, and score reset.
func (g *Game) resetRound() {
	g.player.Reset()
	g.score = 0
}

// update runs one playing-state simulation step.
func (g *Game) update(res *core.StepResult) {
	g.player.Advance(g.viewport)

	if g.player.SelfCollision() {
		g.phase = core.PhaseGameOver
		res.Events = append(res.Events, core.EventGameOver)
		return
	}

	if g.player.Area().Intersects(g.food.Area()) {
		g.player.Grow()
		g.score += ScorePerFood
		g.placeFood()
		res.Events = append(res.Events, core.EventAteFood)
	}
}

// placeFood relocates the food to a random grid-aligned position that does
// not overlap any snake segment. Rejection sampling with no retry bound:
// free-cell density always vastly exceeds snake length at supported sizes.
func (g *Game) placeFood() {
	size := g.opts.EntitySize
	pos := g.randomPosition()
	area := core.NewRectF(pos.X, pos.Y, size, size)
	for g.player.Collision(area, 0) {
		pos = g.randomPosition()
		area.X, area.Y = pos.X, pos.Y
	}
	g.food.SetPosition(pos)
}

// randomPosition draws independent uniform coordinates within the viewport
// and truncates each to the nearest lower multiple of the entity size
// relative to the viewport origin, guaranteeing grid alignment.
func (g *Game) randomPosition() core.Vec2 {
	size := g.opts.EntitySize
	ux := g.rng.Float64() * g.viewport.W
	uy := g.rng.Float64() * g.viewport.H
	return core.Vec2{
		X: g.viewport.X + ux - math.Mod(ux, size),
		Y: g.viewport.Y + uy - math.Mod(uy, size),
	}
}

// Resize records a new terminal size. The playfield geometry is fixed at
// Reset; only the too-small check is recomputed, so an in-flight round
// survives a window resize.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.gridCols+2 || h < g.gridRows+3
}

// State returns the current score and phase.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
	}
}

// Viewport returns the pixel-space play area.
func (g *Game) Viewport() core.RectF {
	return g.viewport
}

// Tick returns the number of simulation steps run since the last Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

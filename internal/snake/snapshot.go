package snake

import "github.com/toroarcade/torosnake/internal/core"

// Snapshot captures the complete observable game state for determinism
// testing and replay verification.
type Snapshot struct {
	Tick     uint64
	Score    int
	Phase    core.Phase
	SnakeLen int
	HeadX    float64
	HeadY    float64
	Dir      Direction
	NextDir  Direction
	FoodX    float64
	FoodY    float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.player.HeadPosition()
	food := g.food.Position()

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Phase:    g.phase,
		SnakeLen: g.player.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.player.Direction(),
		NextDir:  g.player.NextDirection(),
		FoodX:    food.X,
		FoodY:    food.Y,
	}
}

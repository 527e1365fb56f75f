// Package snake implements the toroidal-grid snake game: movement with
// wraparound, self-collision, food placement, scoring, and the
// pause/play/game-over state machine. It contains pure logic with no
// terminal or audio dependencies.
package snake

import "github.com/toroarcade/torosnake/internal/core"

// Direction is the snake's movement direction. DirNone means no move has
// been issued yet: the snake stays in place until the first directional
// input.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// Opposite returns the cardinal opposite of a direction. DirNone has no
// opposite and is returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// IsOppositeTo returns true only if other is set and is the cardinal
// opposite of d. Used to forbid a direction change that would reverse the
// snake into its own neck.
func (d Direction) IsOppositeTo(other Direction) bool {
	if d == DirNone || other == DirNone {
		return false
	}
	return d.Opposite() == other
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// directionFor maps a platform action to a direction. Non-directional
// actions map to DirNone.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionLeft:
		return DirLeft
	case core.ActionUp:
		return DirUp
	case core.ActionRight:
		return DirRight
	case core.ActionDown:
		return DirDown
	default:
		return DirNone
	}
}
